package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// CommitKey holds the SRS in monomial form: group elements {τⁱ·G} for the
// secret τ, i ranging from 0 to the maximum degree.
//
// There is deliberately no commit operation on the monomial key; committed
// polynomials are produced in evaluation form, so all commitments go through
// CommitKeyLagrange.
type CommitKey struct {
	points []bls12381.G1Affine
}

// NewCommitKey wraps a non-empty monomial point sequence.
func NewCommitKey(points []bls12381.G1Affine) (*CommitKey, error) {
	if len(points) == 0 {
		return nil, ErrEmptyCommitKey
	}
	return &CommitKey{points: points}, nil
}

// IntoLagrange converts the key to the Lagrange basis {Lᵢ(τ)·G} of the given
// domain via the inverse FFT over G1.
func (ck *CommitKey) IntoLagrange(domain *Domain) (*CommitKeyLagrange, error) {
	lagrangePoints, err := domain.IfftG1(ck.points)
	if err != nil {
		return nil, err
	}
	return NewCommitKeyLagrange(lagrangePoints)
}

// CommitKeyLagrange holds the SRS in Lagrange form: group elements {Lᵢ(τ)·G}
// where Lᵢ is the i-th Lagrange basis polynomial of a domain.
type CommitKeyLagrange struct {
	points []bls12381.G1Affine
}

// NewCommitKeyLagrange wraps a Lagrange point sequence. A single-point key
// cannot meaningfully commit, so length must be greater than one.
func NewCommitKeyLagrange(points []bls12381.G1Affine) (*CommitKeyLagrange, error) {
	if len(points) < 2 {
		return nil, ErrMinCommitKeySize
	}
	return &CommitKeyLagrange{points: points}, nil
}

// Commit commits to a polynomial in Lagrange form: one MSM of the SRS points
// weighted by the polynomial's values at each domain point.
func (ck *CommitKeyLagrange) Commit(p Polynomial) (KZGCommitment, error) {
	return G1Lincomb(ck.points, p)
}

// MaxDegree returns the maximum degree polynomial the key can commit to.
// In Lagrange basis this is the number of evaluation points minus one:
// f(z) = z² needs 3 evaluation points but has degree 2.
func (ck *CommitKeyLagrange) MaxDegree() int {
	return len(ck.points) - 1
}
