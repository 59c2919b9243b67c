package kzg

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1Lincomb computes the multi-scalar multiplication Σ scalars[i]·points[i].
//
// A length mismatch is rejected before any curve arithmetic; inputs are never
// truncated or padded. The weighted sum itself is delegated to gnark-crypto's
// multi-exponentiation, which owns the affine to extended conversion and its
// internal parallelism (tunable through nbTasks; nbTasks <= 0 lets the
// primitive decide).
func G1Lincomb(points []bls12381.G1Affine, scalars []fr.Element, nbTasks ...int) (bls12381.G1Affine, error) {
	var res bls12381.G1Affine
	if len(points) != len(scalars) {
		return res, ErrLengthMismatch
	}

	config := ecc.MultiExpConfig{}
	if len(nbTasks) == 1 && nbTasks[0] > 0 {
		config.NbTasks = nbTasks[0]
	}

	if _, err := res.MultiExp(points, scalars, config); err != nil {
		return res, err
	}
	return res, nil
}
