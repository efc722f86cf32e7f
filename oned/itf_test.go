package oned

import (
	"testing"

	"github.com/jalphad/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeITFDigit(t *testing.T) {
	digit, err := decodeITFDigit([]int{1, 1, 2, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, digit)

	digit, err = decodeITFDigit([]int{1, 2, 1, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 9, digit)
}

func TestDecodeITFDigit_NoMatch(t *testing.T) {
	_, err := decodeITFDigit([]int{1, 1, 1, 1, 1})
	assert.Error(t, err)
}

func TestAllowedITFLengths(t *testing.T) {
	assert.Equal(t, []int{6, 8, 10, 12, 14}, allowedITFLengths(nil))

	hints := &barcode.DecodeHints{AllowedLengths: []int{10}}
	assert.Equal(t, []int{10}, allowedITFLengths(hints))
}
