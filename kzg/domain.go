package kzg

import (
	"fmt"
	"math/big"
	"math/bits"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// Domain is a multiplicative subgroup of roots of unity of the scalar field,
// used as the evaluation points of Lagrange-form polynomials.
type Domain struct {
	// Cardinality is the size n of the subgroup, a power of two.
	Cardinality    uint64
	CardinalityInv fr.Element

	// Generator is a primitive n-th root of unity ω; GeneratorInv is ω⁻¹.
	Generator    fr.Element
	GeneratorInv fr.Element

	// Roots is the ordered root list [ω⁰, ω¹, ..., ω^{n-1}]. Index i is the
	// evaluation point for position i of any Lagrange-form polynomial tied
	// to this domain.
	Roots []fr.Element

	// rootsInv[i] = Roots[i]⁻¹, used by the on-domain quotient computation.
	rootsInv []fr.Element

	// per-stage FFT twiddles: twiddles[s][j] = ω^(2^s·j)
	twiddles    [][]fr.Element
	twiddlesInv [][]fr.Element
}

// NewDomain returns the smallest domain able to hold `size` evaluation
// points, i.e. the subgroup whose order is the next power of two >= size.
// A size exceeding the two-adicity of the scalar field is a construction
// error.
func NewDomain(size uint64) (*Domain, error) {
	cardinality := ecc.NextPowerOfTwo(size)

	generator, err := fft.Generator(cardinality)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDomainSize, size)
	}

	d := &Domain{
		Cardinality: cardinality,
		Generator:   generator,
	}
	d.CardinalityInv.SetUint64(cardinality).Inverse(&d.CardinalityInv)
	d.GeneratorInv.Inverse(&d.Generator)

	d.Roots = powersOf(d.Generator, int(cardinality))

	d.rootsInv = make([]fr.Element, cardinality)
	copy(d.rootsInv, d.Roots)
	BatchInvert(d.rootsInv)

	d.twiddles = buildTwiddles(d.Generator, cardinality)
	d.twiddlesInv = buildTwiddles(d.GeneratorInv, cardinality)

	return d, nil
}

// powersOf returns [1, x, x², ..., x^{n-1}].
func powersOf(x fr.Element, n int) []fr.Element {
	res := make([]fr.Element, n)
	if n == 0 {
		return res
	}
	res[0].SetOne()
	for i := 1; i < n; i++ {
		res[i].Mul(&res[i-1], &x)
	}
	return res
}

func buildTwiddles(w fr.Element, cardinality uint64) [][]fr.Element {
	nbStages := bits.TrailingZeros64(cardinality)
	twiddles := make([][]fr.Element, nbStages)
	for s := 0; s < nbStages; s++ {
		twiddles[s] = powersOf(w, int(cardinality>>(s+1)))
		w.Square(&w)
	}
	return twiddles
}

// findRootIndex returns the index of z in the root list, or -1 if z is not a
// domain point.
func (d *Domain) findRootIndex(z fr.Element) int {
	for i := range d.Roots {
		if z.Equal(&d.Roots[i]) {
			return i
		}
	}
	return -1
}

// FftFr converts a polynomial from coefficient form to evaluation form over
// the domain. Coefficient vectors shorter than the domain are zero-padded,
// never truncated; longer vectors are an error.
func (d *Domain) FftFr(coeffs []fr.Element) ([]fr.Element, error) {
	if uint64(len(coeffs)) > d.Cardinality {
		return nil, ErrPolynomialMismatchedSizeDomain
	}

	a := make([]fr.Element, d.Cardinality)
	copy(a, coeffs)

	difFFTFr(a, d.twiddles, 0)
	bitReverse(a)

	return a, nil
}

// IfftFr converts a polynomial from evaluation form over the domain to
// coefficient form, applying the 1/n normalization.
func (d *Domain) IfftFr(evals []fr.Element) ([]fr.Element, error) {
	if uint64(len(evals)) != d.Cardinality {
		return nil, ErrPolynomialMismatchedSizeDomain
	}

	a := make([]fr.Element, len(evals))
	copy(a, evals)

	difFFTFr(a, d.twiddlesInv, 0)
	bitReverse(a)

	for i := range a {
		a[i].Mul(&a[i], &d.CardinalityInv)
	}

	return a, nil
}

// IfftG1 is the inverse FFT generalized to G1, substituting group addition
// and scalar multiplication for field addition and multiplication. Applied to
// a monomial SRS {τ^i·G} it yields the Lagrange SRS {L_i(τ)·G} without ever
// reconstructing τ.
func (d *Domain) IfftG1(points []bls12381.G1Affine) ([]bls12381.G1Affine, error) {
	if uint64(len(points)) != d.Cardinality {
		return nil, ErrPolynomialMismatchedSizeDomain
	}

	a := make([]bls12381.G1Affine, len(points))
	copy(a, points)

	numCPU := uint64(runtime.NumCPU())
	maxSplits := bits.TrailingZeros64(ecc.NextPowerOfTwo(numCPU))

	difFFTG1(a, d.twiddlesInv, 0, maxSplits, nil)
	bitReverse(a)

	var nInv big.Int
	d.CardinalityInv.BigInt(&nInv)
	for i := range a {
		a[i].ScalarMultiplication(&a[i], &nInv)
	}

	return a, nil
}

func butterflyFr(a, b *fr.Element) {
	t := *a
	a.Add(a, b)
	b.Sub(&t, b)
}

func butterflyG1(a, b *bls12381.G1Affine) {
	t := *a
	a.Add(a, b)
	b.Sub(&t, b)
}

// radix-2 decimation-in-frequency transform; output is bit-reversed.
func difFFTFr(a []fr.Element, twiddles [][]fr.Element, stage int) {
	n := len(a)
	if n == 1 {
		return
	}
	m := n >> 1

	butterflyFr(&a[0], &a[m])
	for i := 1; i < m; i++ {
		butterflyFr(&a[i], &a[i+m])
		a[i+m].Mul(&a[i+m], &twiddles[stage][i])
	}

	if m == 1 {
		return
	}

	difFFTFr(a[0:m], twiddles, stage+1)
	difFFTFr(a[m:n], twiddles, stage+1)
}

// Same butterfly structure as difFFTFr over group elements. The two halves
// are independent, so the top stages fan out on goroutines; chunk layout does
// not affect the result.
func difFFTG1(a []bls12381.G1Affine, twiddles [][]fr.Element, stage, maxSplits int, chDone chan struct{}) {
	if chDone != nil {
		defer close(chDone)
	}

	n := len(a)
	if n == 1 {
		return
	}
	m := n >> 1

	butterflyG1(&a[0], &a[m])

	var twiddle big.Int
	for i := 1; i < m; i++ {
		butterflyG1(&a[i], &a[i+m])
		twiddles[stage][i].BigInt(&twiddle)
		a[i+m].ScalarMultiplication(&a[i+m], &twiddle)
	}

	if m == 1 {
		return
	}

	nextStage := stage + 1
	if stage < maxSplits {
		chDone := make(chan struct{}, 1)
		go difFFTG1(a[m:n], twiddles, nextStage, maxSplits, chDone)
		difFFTG1(a[0:m], twiddles, nextStage, maxSplits, nil)
		<-chDone
	} else {
		difFFTG1(a[0:m], twiddles, nextStage, maxSplits, nil)
		difFFTG1(a[m:n], twiddles, nextStage, maxSplits, nil)
	}
}

func bitReverse[T any](a []T) {
	n := uint64(len(a))
	nn := uint64(64 - bits.TrailingZeros64(n))

	for i := uint64(0); i < n; i++ {
		irev := bits.Reverse64(i) >> nn
		if irev > i {
			a[i], a[irev] = a[irev], a[i]
		}
	}
}
