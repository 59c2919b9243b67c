package kzg

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func randomG1Points(t *testing.T, n int) []bls12381.G1Affine {
	t.Helper()
	_, _, gen1Aff, _ := bls12381.Generators()

	exponents := make([]fr.Element, n)
	for i := range exponents {
		_, err := exponents[i].SetRandom()
		require.NoError(t, err)
	}
	return bls12381.BatchScalarMultiplicationG1(&gen1Aff, exponents)
}

func TestG1LincombMatchesNaiveSum(t *testing.T) {
	const n = 16
	points := randomG1Points(t, n)
	scalars := make([]fr.Element, n)
	for i := range scalars {
		_, err := scalars[i].SetRandom()
		require.NoError(t, err)
	}

	got, err := G1Lincomb(points, scalars)
	require.NoError(t, err)

	var accJac bls12381.G1Jac
	for i := range points {
		var term bls12381.G1Affine
		var s big.Int
		scalars[i].BigInt(&s)
		term.ScalarMultiplication(&points[i], &s)
		accJac.AddMixed(&term)
	}
	var expected bls12381.G1Affine
	expected.FromJacobian(&accJac)

	require.True(t, expected.Equal(&got))
}

func TestG1LincombLengthMismatch(t *testing.T) {
	points := randomG1Points(t, 4)
	scalars := make([]fr.Element, 3)

	// the mismatch is rejected on every call, never silently truncated
	for i := 0; i < 3; i++ {
		_, err := G1Lincomb(points, scalars)
		require.ErrorIs(t, err, ErrLengthMismatch)
	}
}
