// Package kzg implements the KZG (Kate-Zaverucha-Goldberg) polynomial
// commitment scheme over BLS12-381.
//
// Polynomials are committed in Lagrange form against a structured reference
// string (SRS) converted once to the Lagrange basis, and openings are proved
// with a single G1 point verified by one pairing check. The package also
// provides aggregation of several openings into one proof.
//
// The underlying group arithmetic, pairing and multi-exponentiation come from
// github.com/consensys/gnark-crypto; everything above that (batch inversion,
// domains and FFTs, polynomial arithmetic, commit keys, proofs) lives here.
package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// KZGCommitment is the committed value for one polynomial.
type KZGCommitment = bls12381.G1Affine

const (
	// SerializedScalarSize is the number of bytes needed to represent a scalar.
	SerializedScalarSize = fr.Bytes
	// SerializedG1Size is the number of bytes needed to represent a compressed G1 point.
	SerializedG1Size = bls12381.SizeOfG1AffineCompressed
)
