package kzg

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewDomain(t *testing.T) {
	domain, err := NewDomain(10)
	require.NoError(t, err)
	require.Equal(t, uint64(16), domain.Cardinality)
	require.Len(t, domain.Roots, 16)

	one := fr.One()
	require.True(t, domain.Roots[0].Equal(&one))
	require.True(t, domain.Roots[1].Equal(&domain.Generator))

	// ω^n == 1 and ω^(n/2) != 1, so ω is a primitive n-th root
	var last fr.Element
	last.Mul(&domain.Roots[15], &domain.Generator)
	require.True(t, last.Equal(&one))
	require.False(t, domain.Roots[8].Equal(&one))
}

func TestNewDomainDeterministic(t *testing.T) {
	a, err := NewDomain(64)
	require.NoError(t, err)
	b, err := NewDomain(64)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(a.Roots, b.Roots))
	require.Empty(t, cmp.Diff(a.Generator, b.Generator))
}

func TestNewDomainUnsupportedSize(t *testing.T) {
	// the scalar field has two-adicity 32
	_, err := NewDomain(1 << 40)
	require.ErrorIs(t, err, ErrInvalidDomainSize)
}

func TestFftMatchesDirectEvaluation(t *testing.T) {
	domain, err := NewDomain(16)
	require.NoError(t, err)

	coeffs := make([]fr.Element, 16)
	for i := range coeffs {
		_, err := coeffs[i].SetRandom()
		require.NoError(t, err)
	}

	evals, err := domain.FftFr(coeffs)
	require.NoError(t, err)

	for i := range evals {
		expected := EvalCoeffPoly(coeffs, domain.Roots[i])
		require.True(t, expected.Equal(&evals[i]), "mismatch at root %d", i)
	}
}

func TestFftIfftRoundTrip(t *testing.T) {
	domain, err := NewDomain(32)
	require.NoError(t, err)

	coeffs := make([]fr.Element, 32)
	for i := range coeffs {
		_, err := coeffs[i].SetRandom()
		require.NoError(t, err)
	}

	evals, err := domain.FftFr(coeffs)
	require.NoError(t, err)
	back, err := domain.IfftFr(evals)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(coeffs, back))
}

func TestFftPadsNeverTruncates(t *testing.T) {
	domain, err := NewDomain(8)
	require.NoError(t, err)

	short := make([]fr.Element, 3)
	for i := range short {
		short[i].SetUint64(uint64(i + 1))
	}
	evals, err := domain.FftFr(short)
	require.NoError(t, err)
	require.Len(t, evals, 8)

	long := make([]fr.Element, 9)
	_, err = domain.FftFr(long)
	require.ErrorIs(t, err, ErrPolynomialMismatchedSizeDomain)
}

// Checks the G1 inverse FFT against Lagrange coefficients computed directly
// in the scalar field with a known secret.
func TestIfftG1MatchesLagrangeCoefficients(t *testing.T) {
	const n = 8
	domain, err := NewDomain(n)
	require.NoError(t, err)

	var tau fr.Element
	tau.SetUint64(1234567)
	tauPowers := powersOf(tau, n)

	_, _, gen1Aff, _ := bls12381.Generators()
	monomial := make([]bls12381.G1Affine, n)
	for i := range monomial {
		var s big.Int
		tauPowers[i].BigInt(&s)
		monomial[i].ScalarMultiplication(&gen1Aff, &s)
	}

	lagrange, err := domain.IfftG1(monomial)
	require.NoError(t, err)

	// L_i(τ) = (1/n)·Σ_j τ^j·ω^{-ij}
	for i := 0; i < n; i++ {
		var li fr.Element
		for j := 0; j < n; j++ {
			var term fr.Element
			term.Exp(domain.GeneratorInv, big.NewInt(int64(i*j)))
			term.Mul(&term, &tauPowers[j])
			li.Add(&li, &term)
		}
		li.Mul(&li, &domain.CardinalityInv)

		var s big.Int
		li.BigInt(&s)
		var expected bls12381.G1Affine
		expected.ScalarMultiplication(&gen1Aff, &s)
		require.True(t, expected.Equal(&lagrange[i]), "mismatch at index %d", i)
	}
}

func TestIfftG1SizeMismatch(t *testing.T) {
	domain, err := NewDomain(8)
	require.NoError(t, err)

	points := randomG1Points(t, 4)
	_, err = domain.IfftG1(points)
	require.ErrorIs(t, err, ErrPolynomialMismatchedSizeDomain)
}
