package rssexpanded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalphad/barcode/bitutil"
)

func bitsFromValue(value, width int) *bitutil.BitArray {
	b := bitutil.NewBitArray(width)
	for i := 0; i < width; i++ {
		if value&(1<<uint(width-1-i)) != 0 {
			b.Set(i)
		}
	}
	return b
}

func TestDecodeNumericDigits(t *testing.T) {
	g := newGeneralDecoder(bitsFromValue(1, 7))
	digits, err := g.decodeNumericDigits(7)
	require.NoError(t, err)
	assert.Equal(t, "01", digits)
}

func TestReadAI(t *testing.T) {
	g := newGeneralDecoder(bitsFromValue(10, 7))
	ai, err := g.readAI()
	require.NoError(t, err)
	assert.Equal(t, "10", ai)
}

func TestDecode_EmptyYieldsNotFound(t *testing.T) {
	_, err := Decode(bitutil.NewBitArray(0))
	assert.Error(t, err)
}
