package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode93ToPattern(t *testing.T) {
	pattern := code93ToPattern([]int{1, 2, 1, 3, 1, 1})
	assert.Equal(t, 0x122, pattern)
}

func TestCode93PatternToChar(t *testing.T) {
	ch, err := code93PatternToChar(0x122)
	require.NoError(t, err)
	assert.Equal(t, byte('6'), ch)

	_, err = code93PatternToChar(-1)
	assert.Error(t, err)
}

func TestCode93CheckDigit(t *testing.T) {
	assert.Equal(t, byte('0'), code93CheckDigit("0", 20))
	assert.Equal(t, byte('2'), code93CheckDigit("10", 20))
}

func TestDecodeCode93ExtendedMode(t *testing.T) {
	decoded, err := decodeCode93ExtendedMode("AB")
	require.NoError(t, err)
	assert.Equal(t, "AB", decoded)

	decoded, err = decodeCode93ExtendedMode("dA")
	require.NoError(t, err)
	assert.Equal(t, "a", decoded)
}
