package kzg

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// KZGWitness proves the evaluation of one committed polynomial at one point:
// the claimed value y = p(z) and the commitment π to the quotient polynomial
// (p(X) - y)/(X - z).
type KZGWitness struct {
	ClaimedValue fr.Element        // y
	QuotientComm bls12381.G1Affine // π
}

// Open creates a proof that p evaluated at z equals p(z). The quotient is
// exact because z is by construction a root of p(X) - p(z).
func Open(domain *Domain, p Polynomial, z fr.Element, ck *CommitKeyLagrange) (KZGWitness, error) {
	y, indexInDomain, err := domain.EvaluateLagrangePolynomial(p, z)
	if err != nil {
		return KZGWitness{}, err
	}

	quotient, err := dividePolyByXMinusZ(domain, p, indexInDomain, *y, z)
	if err != nil {
		return KZGWitness{}, err
	}

	quotientComm, err := ck.Commit(quotient)
	if err != nil {
		return KZGWitness{}, err
	}

	return KZGWitness{
		ClaimedValue: *y,
		QuotientComm: quotientComm,
	}, nil
}

// Verify checks the pairing identity
//
//	e(C - y·G1, -G2) · e(π, τ·G2 - z·G2) == 1
//
// confirming p(z) = y without revealing p. Any mismatch is an unconditional
// ErrVerifyOpeningProof.
func Verify(commitment *KZGCommitment, z fr.Element, witness *KZGWitness, pp *PublicParameters) error {
	openKey := &pp.OpeningKey

	// [-1]G₂
	var negG2 bls12381.G2Affine
	negG2.Neg(&openKey.GenG2)

	// [τ - z]G₂
	var genG2Jac, zG2Jac, alphaMinusZG2Jac bls12381.G2Jac
	genG2Jac.FromAffine(&openKey.GenG2)
	var zBigInt big.Int
	z.BigInt(&zBigInt)
	zG2Jac.ScalarMultiplication(&genG2Jac, &zBigInt)
	alphaMinusZG2Jac.FromAffine(&openKey.AlphaG2)
	alphaMinusZG2Jac.SubAssign(&zG2Jac)

	var alphaMinusZG2 bls12381.G2Affine
	alphaMinusZG2.FromJacobian(&alphaMinusZG2Jac)

	// [f(τ) - y]G₁
	var yG1Jac, genG1Jac, cMinusYG1Jac bls12381.G1Jac
	var yBigInt big.Int
	witness.ClaimedValue.BigInt(&yBigInt)
	genG1Jac.FromAffine(&openKey.GenG1)
	yG1Jac.ScalarMultiplication(&genG1Jac, &yBigInt)
	cMinusYG1Jac.FromAffine(commitment)
	cMinusYG1Jac.SubAssign(&yG1Jac)

	var cMinusYG1 bls12381.G1Affine
	cMinusYG1.FromJacobian(&cMinusYG1Jac)

	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{cMinusYG1, witness.QuotientComm},
		[]bls12381.G2Affine{negG2, alphaMinusZG2},
	)
	if err != nil {
		return err
	}
	if !check {
		return ErrVerifyOpeningProof
	}

	return nil
}
