package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Polynomial is a polynomial in Lagrange (evaluation) form: element i is the
// value at the i-th root of the paired domain. It is meaningless without
// that domain.
type Polynomial []fr.Element

// EvaluateLagrangePolynomial evaluates p at an arbitrary point using the
// barycentric interpolation formula
//
//	p(z) = (z^n - 1)/n · Σᵢ p[i]·ωⁱ/(z - ωⁱ)
//
// The formula is singular when z is itself a domain root, so that case
// returns the stored value directly, along with the root index (-1
// otherwise).
func (d *Domain) EvaluateLagrangePolynomial(p Polynomial, z fr.Element) (*fr.Element, int, error) {
	if d.Cardinality != uint64(len(p)) {
		return nil, -1, ErrPolynomialMismatchedSizeDomain
	}

	if idx := d.findRootIndex(z); idx != -1 {
		eval := p[idx]
		return &eval, idx, nil
	}

	denom := make([]fr.Element, d.Cardinality)
	for i := range denom {
		denom[i].Sub(&z, &d.Roots[i])
	}
	BatchInvert(denom)

	var result fr.Element
	for i := 0; i < int(d.Cardinality); i++ {
		var term fr.Element
		term.Mul(&p[i], &d.Roots[i])
		term.Mul(&term, &denom[i])
		result.Add(&result, &term)
	}

	// result *= (z^n - 1)/n
	one := fr.One()
	var zPowN fr.Element
	zPowN.Exp(z, new(big.Int).SetUint64(d.Cardinality))
	zPowN.Sub(&zPowN, &one)
	zPowN.Mul(&zPowN, &d.CardinalityInv)
	result.Mul(&result, &zPowN)

	return &result, -1, nil
}

// EvalCoeffPoly evaluates a coefficient-form polynomial at z by Horner
// accumulation.
func EvalCoeffPoly(coeffs []fr.Element, z fr.Element) fr.Element {
	var res fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		res.Mul(&res, &z)
		res.Add(&res, &coeffs[i])
	}
	return res
}

// DivideCoeffPolyByXMinusZ computes the quotient (p(X) - p(z)) / (X - z) of a
// coefficient-form polynomial by synthetic division. The division is exact
// because z is a root of p(X) - p(z); the dropped remainder is p(z).
func DivideCoeffPolyByXMinusZ(coeffs []fr.Element, z fr.Element) []fr.Element {
	if len(coeffs) == 0 {
		return nil
	}
	quotient := make([]fr.Element, len(coeffs)-1)
	var acc fr.Element
	for i := len(coeffs) - 1; i > 0; i-- {
		acc.Mul(&acc, &z)
		acc.Add(&acc, &coeffs[i])
		quotient[i-1] = acc
	}
	return quotient
}

// dividePolyByXMinusZ computes the quotient q(X) = (p(X) - y) / (X - z) in
// evaluation form, where y = p(z). indexInDomain is the root index of z, or
// -1 when z lies outside the domain.
func dividePolyByXMinusZ(d *Domain, p Polynomial, indexInDomain int, y, z fr.Element) (Polynomial, error) {
	if d.Cardinality != uint64(len(p)) {
		return nil, ErrPolynomialMismatchedSizeDomain
	}

	if indexInDomain != -1 {
		return dividePolyByXMinusZOnDomain(d, p, indexInDomain)
	}

	return dividePolyByXMinusZOutsideDomain(d, p, y, z)
}

func dividePolyByXMinusZOutsideDomain(d *Domain, p Polynomial, y, z fr.Element) (Polynomial, error) {
	quotient := make(Polynomial, d.Cardinality)
	for i := range quotient {
		quotient[i].Sub(&d.Roots[i], &z)
	}
	BatchInvert(quotient)

	var numer fr.Element
	for i := range quotient {
		numer.Sub(&p[i], &y)
		quotient[i].Mul(&quotient[i], &numer)
	}

	return quotient, nil
}

// dividePolyByXMinusZOnDomain handles the case z = ω^m where the naive
// formula divides by zero at index m. The quotient value there follows from
// the limit identity
//
//	q[m] = Σ_{j≠m} -q[j]·ω^j·ω^{-m}
//
// which keeps q consistent with its values at all other domain points.
func dividePolyByXMinusZOnDomain(d *Domain, p Polynomial, index int) (Polynomial, error) {
	y := p[index]
	z := d.Roots[index]
	invZ := d.rootsInv[index]

	rootsMinusZ := make([]fr.Element, d.Cardinality)
	for i := range rootsMinusZ {
		rootsMinusZ[i].Sub(&d.Roots[i], &z)
	}
	BatchInvert(rootsMinusZ)

	quotient := make(Polynomial, d.Cardinality)
	for j := 0; j < int(d.Cardinality); j++ {
		if j == index {
			continue
		}

		// q[j] = (p[j] - y) / (ω^j - ω^m)
		var qj fr.Element
		qj.Sub(&p[j], &y)
		qj.Mul(&qj, &rootsMinusZ[j])
		quotient[j] = qj

		var qmj fr.Element
		qmj.Neg(&qj)
		qmj.Mul(&qmj, &d.Roots[j])
		qmj.Mul(&qmj, &invZ)

		quotient[index].Add(&quotient[index], &qmj)
	}

	return quotient, nil
}
