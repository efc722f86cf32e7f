package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode39ToNarrowWidePattern(t *testing.T) {
	counters := []int{1, 1, 1, 2, 1, 1, 2, 1, 2}
	pattern, err := code39ToNarrowWidePattern(counters)
	require.NoError(t, err)
	assert.Equal(t, 1<<5|1<<2|1<<0, pattern)
}

func TestCode39PatternToChar(t *testing.T) {
	ch, err := code39PatternToChar(0x034)
	require.NoError(t, err)
	assert.Equal(t, byte('0'), ch)

	_, err = code39PatternToChar(0xFFF)
	assert.Error(t, err)
}

func TestDecodeCode39ExtendedMode(t *testing.T) {
	decoded, err := decodeCode39ExtendedMode("AB")
	require.NoError(t, err)
	assert.Equal(t, "AB", decoded)

	decoded, err = decodeCode39ExtendedMode("+A")
	require.NoError(t, err)
	assert.Equal(t, "a", decoded)
}

func TestCode39ExtendedPair(t *testing.T) {
	c, err := code39ExtendedPair('+', 'A')
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)

	c, err = code39ExtendedPair('$', 'A')
	require.NoError(t, err)
	assert.Equal(t, byte(1), c)

	_, err = code39ExtendedPair('?', 'A')
	assert.Error(t, err)
}
