package reedsolomon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGenerator(field *GF256, ecCount int) *GF256Poly {
	generator := field.One()
	for i := 0; i < ecCount; i++ {
		term := NewGF256Poly(field, []int{1, field.Exp(i)})
		generator = generator.Multiply(term)
	}
	return generator
}

func encode(field *GF256, data []int, ecCount int) []int {
	generator := buildGenerator(field, ecCount)
	infoCoefficients := make([]int, len(data)+ecCount)
	copy(infoCoefficients, data)
	infoPoly := NewGF256Poly(field, infoCoefficients)
	_, remainder := infoPoly.Divide(generator)

	ecBytes := make([]int, ecCount)
	numRem := len(remainder.coefficients)
	copy(ecBytes[ecCount-numRem:], remainder.coefficients)

	received := make([]int, 0, len(data)+ecCount)
	received = append(received, data...)
	received = append(received, ecBytes...)
	return received
}

func TestDecoder_CorrectsSingleByteError(t *testing.T) {
	field := NewGF256(QRCodeField256)
	data := []int{1, 2, 3, 4, 5, 6, 7, 8}
	ecCount := 4

	received := encode(field, data, ecCount)
	received[2] ^= 0xFF

	decoder := NewDecoder(field)
	corrected, err := decoder.Decode(received, ecCount)
	require.NoError(t, err)
	assert.Equal(t, 1, corrected)
	assert.Equal(t, data, received[:len(data)])
}

func TestDecoder_NoErrorsIsNoOp(t *testing.T) {
	field := NewGF256(QRCodeField256)
	data := []int{9, 8, 7, 6}
	ecCount := 4
	received := encode(field, data, ecCount)

	decoder := NewDecoder(field)
	corrected, err := decoder.Decode(received, ecCount)
	require.NoError(t, err)
	assert.Equal(t, 0, corrected)
}

func TestGF256_MultiplyAndInverse(t *testing.T) {
	field := NewGF256(QRCodeField256)
	assert.Equal(t, 0, field.Multiply(5, 0))
	for a := 1; a < 256; a++ {
		inv := field.Inverse(a)
		assert.Equal(t, 1, field.Multiply(a, inv))
	}
}

func TestGF256Poly_EvaluateAt(t *testing.T) {
	field := NewGF256(QRCodeField256)
	poly := NewGF256Poly(field, []int{1, 0, 1}) // x^2 + 1
	assert.Equal(t, 1, poly.EvaluateAt(0))
}
