package reedsolomon

// GF256Poly is a polynomial over GF(256), coefficients stored highest
// degree first at index 0 (matching how codeword streams are ordered).
type GF256Poly struct {
	field        *GF256
	coefficients []int
}

// NewGF256Poly builds a polynomial from coefficients, stripping any leading
// zero coefficients (except for the zero polynomial itself).
func NewGF256Poly(field *GF256, coefficients []int) *GF256Poly {
	firstNonZero := 0
	for firstNonZero < len(coefficients)-1 && coefficients[firstNonZero] == 0 {
		firstNonZero++
	}
	return &GF256Poly{field: field, coefficients: coefficients[firstNonZero:]}
}

// Degree returns the polynomial's degree.
func (p *GF256Poly) Degree() int { return len(p.coefficients) - 1 }

// IsZero reports whether the polynomial is identically zero.
func (p *GF256Poly) IsZero() bool { return p.coefficients[0] == 0 }

// Coefficient returns the coefficient of x^degree.
func (p *GF256Poly) Coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates the polynomial at a using Horner's method.
func (p *GF256Poly) EvaluateAt(a int) int {
	if a == 0 {
		return p.Coefficient(0)
	}
	result := p.coefficients[0]
	for i := 1; i < len(p.coefficients); i++ {
		result = p.field.Multiply(a, result) ^ p.coefficients[i]
	}
	return result
}

// Add adds two polynomials.
func (p *GF256Poly) Add(other *GF256Poly) *GF256Poly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}
	smaller, larger := p.coefficients, other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}
	sumDiff := make([]int, len(larger))
	lengthDiff := len(larger) - len(smaller)
	copy(sumDiff, larger[:lengthDiff])
	for i := lengthDiff; i < len(larger); i++ {
		sumDiff[i] = larger[i] ^ smaller[i-lengthDiff]
	}
	return NewGF256Poly(p.field, sumDiff)
}

// Multiply multiplies two polynomials.
func (p *GF256Poly) Multiply(other *GF256Poly) *GF256Poly {
	if p.IsZero() || other.IsZero() {
		return p.field.zero
	}
	aCoeff := p.coefficients
	bCoeff := other.coefficients
	product := make([]int, len(aCoeff)+len(bCoeff)-1)
	for i, a := range aCoeff {
		if a == 0 {
			continue
		}
		for j, b := range bCoeff {
			if b != 0 {
				product[i+j] ^= p.field.Multiply(a, b)
			}
		}
	}
	return NewGF256Poly(p.field, product)
}

// MultiplyScalar multiplies the polynomial by a single scalar element.
func (p *GF256Poly) MultiplyScalar(scalar int) *GF256Poly {
	if scalar == 0 {
		return p.field.zero
	}
	if scalar == 1 {
		return p
	}
	product := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, scalar)
	}
	return NewGF256Poly(p.field, product)
}

// MultiplyByMonomial multiplies the polynomial by coefficient*x^degree.
func (p *GF256Poly) MultiplyByMonomial(degree, coefficient int) *GF256Poly {
	if coefficient == 0 {
		return p.field.zero
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return NewGF256Poly(p.field, product)
}

// Divide divides p by other, returning (quotient, remainder).
func (p *GF256Poly) Divide(other *GF256Poly) (*GF256Poly, *GF256Poly) {
	quotient := p.field.zero
	remainder := p
	denominatorLeadingTerm := other.Coefficient(other.Degree())
	inverseDenominatorLeadingTerm := p.field.Inverse(denominatorLeadingTerm)

	for remainder.Degree() >= other.Degree() && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := p.field.Multiply(remainder.Coefficient(remainder.Degree()), inverseDenominatorLeadingTerm)
		term := other.MultiplyByMonomial(degreeDiff, scale)
		iterationQuotient := p.field.BuildMonomial(degreeDiff, scale)
		quotient = quotient.Add(iterationQuotient)
		remainder = remainder.Add(term)
	}
	return quotient, remainder
}
