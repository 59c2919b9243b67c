package kzg

import (
	"runtime"

	"github.com/LiveDuo/go-protodanksharding/internal/parallel"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Inverse returns x⁻¹, or zero if x is zero.
//
// Zero has no inverse; returning the zero sentinel instead of failing matches
// the graceful degeneracy convention used throughout the scheme.
func Inverse(x fr.Element) fr.Element {
	var res fr.Element
	if x.IsZero() {
		return res
	}
	res.Inverse(&x)
	return res
}

// BatchInvert inverts the elements of v in place using Montgomery's trick,
// reducing n field inversions to one inversion and O(n) multiplications.
// Zero elements are left untouched.
func BatchInvert(v []fr.Element) {
	// Montgomery's Trick and Fast Implementation of Masked AES
	// Genelle, Prouff and Quisquater
	// Section 3.2

	// first pass: compute [a, ab, abc, ...] over the non-zero elements
	prod := make([]fr.Element, 0, len(v))
	var tmp fr.Element
	tmp.SetOne()
	for i := range v {
		if v[i].IsZero() {
			continue
		}
		tmp.Mul(&tmp, &v[i])
		prod = append(prod, tmp)
	}

	if len(prod) == 0 {
		return
	}

	// one inversion of the running product; guaranteed non-zero
	tmp.Inverse(&tmp)

	// second pass: walk backwards recovering each inverse from the running
	// inverse and the stored partial products
	k := len(prod) - 1
	for i := len(v) - 1; i >= 0; i-- {
		if v[i].IsZero() {
			continue
		}
		var newTmp fr.Element
		newTmp.Mul(&tmp, &v[i])
		if k == 0 {
			v[i] = tmp
		} else {
			v[i].Mul(&tmp, &prod[k-1])
		}
		tmp = newTmp
		k--
	}
}

// BatchInvertParallel is BatchInvert fanned out over contiguous chunks of v,
// one chunk per task. Batch inversion over disjoint ranges is independent per
// range, so the result is bit-identical to the serial version regardless of
// nbTasks. nbTasks <= 0 uses one task per available CPU.
func BatchInvertParallel(v []fr.Element, nbTasks int) {
	if nbTasks <= 0 {
		nbTasks = runtime.NumCPU()
	}
	parallel.Execute(len(v), func(start, end int) {
		BatchInvert(v[start:end])
	}, nbTasks)
}
