package kzg

import (
	"io"
	"math/big"
	"time"

	"github.com/LiveDuo/go-protodanksharding/logger"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// OpeningKey holds the G2 side of the SRS needed for pairing verification,
// together with the G1 generator.
type OpeningKey struct {
	GenG1   bls12381.G1Affine
	GenG2   bls12381.G2Affine
	AlphaG2 bls12381.G2Affine // τ·G2
}

// PublicParameters bundles the Lagrange commit key with the minimal G2 SRS.
//
// It is immutable after construction and safe for concurrent readers; share
// a single instance by pointer across any number of proof operations. The
// secret τ behind the SRS is not retrievable from it.
type PublicParameters struct {
	CommitKey  CommitKeyLagrange
	OpeningKey OpeningKey
}

// NewPublicParametersInsecure derives public parameters from a supplied
// secret τ. The monomial SRS {τⁱ·G1} is converted to the Lagrange basis of
// the domain with the inverse FFT over G1; τ is discarded as soon as the
// derived points exist.
//
// Testing only: a production SRS comes from a trusted setup ceremony and is
// loaded with ReadFrom.
func NewPublicParametersInsecure(domain *Domain, tau *big.Int) (*PublicParameters, error) {
	log := logger.Logger().With().Str("curve", "bls12-381").Logger()
	start := time.Now()

	size := domain.Cardinality
	if size < 2 {
		return nil, ErrMinCommitKeySize
	}

	_, _, gen1Aff, gen2Aff := bls12381.Generators()

	var pp PublicParameters
	pp.OpeningKey.GenG1 = gen1Aff
	pp.OpeningKey.GenG2 = gen2Aff
	pp.OpeningKey.AlphaG2.ScalarMultiplication(&gen2Aff, tau)

	var alpha fr.Element
	alpha.SetBigInt(tau)

	// powers [τ, τ², ..., τ^{n-1}]; the first SRS point is G1 itself
	alphas := make([]fr.Element, size-1)
	alphas[0] = alpha
	for i := 1; i < len(alphas); i++ {
		alphas[i].Mul(&alphas[i-1], &alpha)
	}

	monomialPoints := make([]bls12381.G1Affine, size)
	monomialPoints[0] = gen1Aff
	copy(monomialPoints[1:], bls12381.BatchScalarMultiplicationG1(&gen1Aff, alphas))

	monomialKey, err := NewCommitKey(monomialPoints)
	if err != nil {
		return nil, err
	}
	lagrangeKey, err := monomialKey.IntoLagrange(domain)
	if err != nil {
		return nil, err
	}
	pp.CommitKey = *lagrangeKey

	log.Debug().Uint64("size", size).Dur("took", time.Since(start)).Msg("insecure SRS generated")
	return &pp, nil
}

// WriteTo writes the SRS blob: the Lagrange G1 points followed by the G2
// elements, compressed.
func (pp *PublicParameters) WriteTo(w io.Writer) (int64, error) {
	enc := bls12381.NewEncoder(w)

	toEncode := []interface{}{
		pp.CommitKey.points,
		&pp.OpeningKey.GenG1,
		&pp.OpeningKey.GenG2,
		&pp.OpeningKey.AlphaG2,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}

	return enc.BytesWritten(), nil
}

// ReadFrom reads an SRS blob produced by WriteTo.
func (pp *PublicParameters) ReadFrom(r io.Reader) (int64, error) {
	dec := bls12381.NewDecoder(r)

	toDecode := []interface{}{
		&pp.CommitKey.points,
		&pp.OpeningKey.GenG1,
		&pp.OpeningKey.GenG2,
		&pp.OpeningKey.AlphaG2,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}

	if len(pp.CommitKey.points) < 2 {
		return dec.BytesRead(), ErrMinCommitKeySize
	}

	return dec.BytesRead(), nil
}
