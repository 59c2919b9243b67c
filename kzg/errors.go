package kzg

import "errors"

var (
	// construction errors
	ErrEmptyCommitKey    = errors.New("kzg: cannot initialize a commit key with no points")
	ErrMinCommitKeySize  = errors.New("kzg: a lagrange commit key needs at least two points")
	ErrInvalidDomainSize = errors.New("kzg: domain size is not supported by the scalar field")

	// shape errors, detected before any curve arithmetic
	ErrLengthMismatch                 = errors.New("kzg: number of points does not equal number of scalars")
	ErrPolynomialMismatchedSizeDomain = errors.New("kzg: polynomial length does not equal domain size")
	ErrEmptyBatch                     = errors.New("kzg: batch contains no proofs")

	// ErrVerifyOpeningProof signals that a pairing check came out false.
	// It is a final semantic answer, not a transient fault.
	ErrVerifyOpeningProof = errors.New("kzg: opening proof verification failed")
)
