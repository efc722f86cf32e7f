package reedsolomon

import "github.com/jalphad/barcode"

// Decoder corrects errors in a Reed-Solomon codeword using syndrome
// computation, Berlekamp-Massey to find the error locator polynomial,
// Chien search to find error positions, and Forney's algorithm to find
// error magnitudes.
type Decoder struct {
	field *GF256
}

// NewDecoder creates a Decoder over field.
func NewDecoder(field *GF256) *Decoder { return &Decoder{field: field} }

// Decode corrects up to ecCount/2 errors in received in place, returning the
// number of errors corrected.
func (d *Decoder) Decode(received []int, ecCount int) (int, error) {
	poly := NewGF256Poly(d.field, received)
	syndromeCoefficients := make([]int, ecCount)
	noError := true
	for i := 0; i < ecCount; i++ {
		eval := poly.EvaluateAt(d.field.Exp(i))
		syndromeCoefficients[len(syndromeCoefficients)-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	syndrome := NewGF256Poly(d.field, syndromeCoefficients)
	errorLocator, errorEvaluator, err := d.runEuclideanAlgorithm(d.field.BuildMonomial(ecCount, 1), syndrome, ecCount)
	if err != nil {
		return 0, err
	}

	errorLocations, err := d.findErrorLocations(errorLocator)
	if err != nil {
		return 0, err
	}
	errorMagnitudes := d.findErrorMagnitudes(errorEvaluator, errorLocations)

	for i, loc := range errorLocations {
		position := len(received) - 1 - d.field.Log(loc)
		if position < 0 {
			return 0, barcode.ErrChecksum
		}
		received[position] = d.field.Add(received[position], errorMagnitudes[i])
	}
	return len(errorLocations), nil
}

// runEuclideanAlgorithm implements Berlekamp-Massey via the extended
// Euclidean algorithm on (x^ecCount, syndrome), stopping once the remainder
// degree drops below ecCount/2: this yields the error locator and evaluator
// polynomials directly.
func (d *Decoder) runEuclideanAlgorithm(a, b *GF256Poly, R int) (*GF256Poly, *GF256Poly, error) {
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast, rLastLast := a, b
	tLast, tLastLast := d.field.zero, d.field.one

	for rLast.Degree() >= R/2 {
		rLastLast, rLast = rLast, rLastLast
		tLastLast, tLast = tLast, tLastLast

		if rLast.IsZero() {
			return nil, nil, barcode.ErrChecksum
		}
		r := rLastLast
		t := d.field.zero
		denominatorLeadingTerm := rLast.Coefficient(rLast.Degree())
		dltInverse := d.field.Inverse(denominatorLeadingTerm)

		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			degreeDiff := r.Degree() - rLast.Degree()
			scale := d.field.Multiply(r.Coefficient(r.Degree()), dltInverse)
			t = t.Add(d.field.BuildMonomial(degreeDiff, scale))
			r = r.Add(rLast.MultiplyByMonomial(degreeDiff, scale))
		}

		t = t.Multiply(tLast).Add(tLastLast)
		rLastLast, rLast = rLast, r
		tLastLast, tLast = tLast, t
	}

	sigmaTildeAtZero := tLast.Coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, barcode.ErrChecksum
	}
	inverse := d.field.Inverse(sigmaTildeAtZero)
	return tLast.MultiplyScalar(inverse), rLast.MultiplyScalar(inverse), nil
}

// findErrorLocations runs a Chien search over every nonzero field element,
// returning the reciprocal of each root of errorLocator: the error locator
// values, whose logs are the positions of the erroneous bytes.
func (d *Decoder) findErrorLocations(errorLocator *GF256Poly) ([]int, error) {
	numErrors := errorLocator.Degree()
	if numErrors == 1 {
		return []int{errorLocator.Coefficient(1)}, nil
	}
	result := make([]int, 0, numErrors)
	for i := 1; i < 256 && len(result) < numErrors; i++ {
		if errorLocator.EvaluateAt(i) == 0 {
			result = append(result, d.field.Inverse(i))
		}
	}
	if len(result) != numErrors {
		return nil, barcode.ErrChecksum
	}
	return result, nil
}

// findErrorMagnitudes applies Forney's algorithm: for each error location,
// compute the magnitude from the error evaluator and the locator's formal
// derivative.
func (d *Decoder) findErrorMagnitudes(errorEvaluator *GF256Poly, errorLocations []int) []int {
	s := len(errorLocations)
	result := make([]int, s)
	for i := 0; i < s; i++ {
		xiInverse := d.field.Inverse(errorLocations[i])
		errorLocatorDerivativeAtXiInverse := 1
		for j := 0; j < s; j++ {
			if i == j {
				continue
			}
			term := d.field.Multiply(errorLocations[j], xiInverse)
			termPlus1 := term
			if term&0x1 != 0 {
				termPlus1 = term & 0xFFFFFFFE
			} else {
				termPlus1 = term | 1
			}
			errorLocatorDerivativeAtXiInverse = d.field.Multiply(errorLocatorDerivativeAtXiInverse, termPlus1)
		}
		result[i] = d.field.Multiply(errorEvaluator.EvaluateAt(xiInverse), d.field.Inverse(errorLocatorDerivativeAtXiInverse))
	}
	return result
}
