package kzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func randomPolynomial(t *testing.T, n int) Polynomial {
	t.Helper()
	p := make(Polynomial, n)
	for i := range p {
		_, err := p[i].SetRandom()
		require.NoError(t, err)
	}
	return p
}

func TestBarycentricMatchesCoefficientEvaluation(t *testing.T) {
	domain, err := NewDomain(32)
	require.NoError(t, err)

	coeffs := make([]fr.Element, 32)
	for i := range coeffs {
		_, err := coeffs[i].SetRandom()
		require.NoError(t, err)
	}
	evals, err := domain.FftFr(coeffs)
	require.NoError(t, err)

	var z fr.Element
	_, err = z.SetRandom()
	require.NoError(t, err)

	got, index, err := domain.EvaluateLagrangePolynomial(evals, z)
	require.NoError(t, err)
	require.Equal(t, -1, index)

	expected := EvalCoeffPoly(coeffs, z)
	require.True(t, expected.Equal(got))
}

func TestEvaluateAtDomainPointReturnsStoredValue(t *testing.T) {
	domain, err := NewDomain(16)
	require.NoError(t, err)
	p := randomPolynomial(t, 16)

	got, index, err := domain.EvaluateLagrangePolynomial(p, domain.Roots[7])
	require.NoError(t, err)
	require.Equal(t, 7, index)
	require.True(t, p[7].Equal(got))
}

func TestEvaluateSizeMismatch(t *testing.T) {
	domain, err := NewDomain(16)
	require.NoError(t, err)
	p := randomPolynomial(t, 8)

	var z fr.Element
	_, _, err = domain.EvaluateLagrangePolynomial(p, z)
	require.ErrorIs(t, err, ErrPolynomialMismatchedSizeDomain)
}

func TestSyntheticDivisionIsExact(t *testing.T) {
	coeffs := make([]fr.Element, 10)
	for i := range coeffs {
		_, err := coeffs[i].SetRandom()
		require.NoError(t, err)
	}
	var z fr.Element
	_, err := z.SetRandom()
	require.NoError(t, err)

	quotient := DivideCoeffPolyByXMinusZ(coeffs, z)
	require.Len(t, quotient, len(coeffs)-1)

	// reconstruct (X - z)·q(X) + p(z) and compare coefficients
	recon := make([]fr.Element, len(coeffs))
	for i := range quotient {
		recon[i+1].Add(&recon[i+1], &quotient[i])
		var tmp fr.Element
		tmp.Mul(&z, &quotient[i])
		recon[i].Sub(&recon[i], &tmp)
	}
	y := EvalCoeffPoly(coeffs, z)
	recon[0].Add(&recon[0], &y)

	for i := range coeffs {
		require.True(t, coeffs[i].Equal(&recon[i]), "coefficient %d", i)
	}
}

// Checks q(X)·(X - z) == p(X) - p(z) at a random point, for z outside and
// inside the domain. The in-domain case exercises the limit identity at the
// index where the naive formula divides by zero.
func TestQuotientIdentity(t *testing.T) {
	domain, err := NewDomain(16)
	require.NoError(t, err)
	p := randomPolynomial(t, 16)

	var probe fr.Element
	_, err = probe.SetRandom()
	require.NoError(t, err)

	check := func(z fr.Element) {
		y, index, err := domain.EvaluateLagrangePolynomial(p, z)
		require.NoError(t, err)

		q, err := dividePolyByXMinusZ(domain, p, index, *y, z)
		require.NoError(t, err)

		qAtProbe, _, err := domain.EvaluateLagrangePolynomial(q, probe)
		require.NoError(t, err)
		pAtProbe, _, err := domain.EvaluateLagrangePolynomial(p, probe)
		require.NoError(t, err)

		var lhs, rhs fr.Element
		lhs.Sub(&probe, &z)
		lhs.Mul(&lhs, qAtProbe)
		rhs.Sub(pAtProbe, y)
		require.True(t, lhs.Equal(&rhs))
	}

	var outside fr.Element
	_, err = outside.SetRandom()
	require.NoError(t, err)
	check(outside)

	check(domain.Roots[0])
	check(domain.Roots[5])
}
