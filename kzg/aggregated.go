package kzg

import (
	"crypto/sha256"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"
)

// challenge label, domain-separating the aggregation transcript
const aggregationChallenge = "kzg-aggregation"

// AggregatedKZG combines several (commitment, point, value) openings into a
// single commitment/witness/value triple, together with the challenge used
// to combine them.
type AggregatedKZG struct {
	Commitment KZGCommitment
	Witness    bls12381.G1Affine
	Value      fr.Element
	Challenge  fr.Element
}

// deriveChallenge binds every commitment, quotient, point and value into a
// Fiat-Shamir transcript and squeezes the combination challenge.
func deriveChallenge(commitments []KZGCommitment, witnesses []KZGWitness, points []fr.Element) (fr.Element, error) {
	fs := fiatshamir.NewTranscript(sha256.New(), aggregationChallenge)

	var r fr.Element
	for i := range commitments {
		buf := commitments[i].Bytes()
		if err := fs.Bind(aggregationChallenge, buf[:]); err != nil {
			return r, err
		}
	}
	for i := range witnesses {
		buf := witnesses[i].QuotientComm.Bytes()
		if err := fs.Bind(aggregationChallenge, buf[:]); err != nil {
			return r, err
		}
		if err := fs.Bind(aggregationChallenge, witnesses[i].ClaimedValue.Marshal()); err != nil {
			return r, err
		}
	}
	for i := range points {
		if err := fs.Bind(aggregationChallenge, points[i].Marshal()); err != nil {
			return r, err
		}
	}

	b, err := fs.ComputeChallenge(aggregationChallenge)
	if err != nil {
		return r, err
	}
	r.SetBytes(b)
	return r, nil
}

// AggregateSamePoint batches proofs that all open at the same point z:
// aggregated commitment Σ rⁱ·Cᵢ, witness Σ rⁱ·πᵢ and value Σ rⁱ·yᵢ for the
// transcript-derived challenge r.
func AggregateSamePoint(commitments []KZGCommitment, z fr.Element, witnesses []KZGWitness) (*AggregatedKZG, error) {
	if len(commitments) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(commitments) != len(witnesses) {
		return nil, ErrLengthMismatch
	}

	r, err := deriveChallenge(commitments, witnesses, []fr.Element{z})
	if err != nil {
		return nil, err
	}
	return AggregateSamePointWithChallenge(commitments, witnesses, r)
}

// AggregateSamePointWithChallenge is AggregateSamePoint with a caller
// supplied challenge, for interactive settings.
func AggregateSamePointWithChallenge(commitments []KZGCommitment, witnesses []KZGWitness, r fr.Element) (*AggregatedKZG, error) {
	if len(commitments) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(commitments) != len(witnesses) {
		return nil, ErrLengthMismatch
	}

	rPowers := powersOf(r, len(commitments))

	quotients := make([]bls12381.G1Affine, len(witnesses))
	var value, tmp fr.Element
	for i := range witnesses {
		quotients[i] = witnesses[i].QuotientComm
		tmp.Mul(&witnesses[i].ClaimedValue, &rPowers[i])
		value.Add(&value, &tmp)
	}

	commitment, err := G1Lincomb(commitments, rPowers)
	if err != nil {
		return nil, err
	}
	witness, err := G1Lincomb(quotients, rPowers)
	if err != nil {
		return nil, err
	}

	return &AggregatedKZG{
		Commitment: commitment,
		Witness:    witness,
		Value:      value,
		Challenge:  r,
	}, nil
}

// Verify checks the aggregate against the shared opening point with a single
// pairing check; it succeeds iff every folded opening was valid.
func (a *AggregatedKZG) Verify(z fr.Element, pp *PublicParameters) error {
	witness := KZGWitness{
		ClaimedValue: a.Value,
		QuotientComm: a.Witness,
	}
	return Verify(&a.Commitment, z, &witness, pp)
}

// BatchVerifyMultiPoints verifies openings at pairwise distinct points with
// one pairing check. A shared divisor no longer applies, so the quotient
// commitments are combined by the random linear combination at the witness
// level while the subtracted evaluation term rᵢ·zᵢ·πᵢ is tracked per proof:
//
//	e(Σrᵢ(Cᵢ - yᵢ·G1) + Σrᵢ·zᵢ·πᵢ, G2) · e(-Σrᵢ·πᵢ, τ·G2) == 1
func BatchVerifyMultiPoints(commitments []KZGCommitment, points []fr.Element, witnesses []KZGWitness, pp *PublicParameters) error {
	if len(commitments) == 0 {
		return ErrEmptyBatch
	}
	if len(commitments) != len(points) || len(commitments) != len(witnesses) {
		return ErrLengthMismatch
	}

	if len(commitments) == 1 {
		return Verify(&commitments[0], points[0], &witnesses[0], pp)
	}

	r, err := deriveChallenge(commitments, witnesses, points)
	if err != nil {
		return err
	}
	rPowers := powersOf(r, len(commitments))

	// fold the quotients
	quotients := make([]bls12381.G1Affine, len(witnesses))
	for i := range witnesses {
		quotients[i] = witnesses[i].QuotientComm
	}
	foldedQuotients, err := G1Lincomb(quotients, rPowers)
	if err != nil {
		return err
	}

	// fold the commitments and the claimed values
	foldedCommitments, err := G1Lincomb(commitments, rPowers)
	if err != nil {
		return err
	}
	var foldedEvals, tmp fr.Element
	for i := range witnesses {
		tmp.Mul(&witnesses[i].ClaimedValue, &rPowers[i])
		foldedEvals.Add(&foldedEvals, &tmp)
	}

	var foldedEvalsBigInt big.Int
	foldedEvals.BigInt(&foldedEvalsBigInt)
	var foldedEvalsCommit bls12381.G1Affine
	foldedEvalsCommit.ScalarMultiplication(&pp.OpeningKey.GenG1, &foldedEvalsBigInt)
	foldedCommitments.Sub(&foldedCommitments, &foldedEvalsCommit)

	// per-proof subtracted evaluation terms rᵢ·zᵢ·πᵢ
	scaledPoints := make([]fr.Element, len(points))
	for i := range points {
		scaledPoints[i].Mul(&rPowers[i], &points[i])
	}
	foldedPointsQuotients, err := G1Lincomb(quotients, scaledPoints)
	if err != nil {
		return err
	}

	foldedCommitments.Add(&foldedCommitments, &foldedPointsQuotients)
	foldedQuotients.Neg(&foldedQuotients)

	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{foldedCommitments, foldedQuotients},
		[]bls12381.G2Affine{pp.OpeningKey.GenG2, pp.OpeningKey.AlphaG2},
	)
	if err != nil {
		return err
	}
	if !check {
		return ErrVerifyOpeningProof
	}

	return nil
}
