package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionForDimensions(t *testing.T) {
	v, err := VersionForDimensions(10, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, v.VersionNumber)
	// 3 data codewords + 5 EC codewords, single block.
	assert.Equal(t, 8, v.TotalCodewords)

	_, err = VersionForDimensions(999, 999)
	assert.Error(t, err)
}

func TestGetDataBlocks_SingleBlock(t *testing.T) {
	v, err := VersionForDimensions(10, 10)
	require.NoError(t, err)

	raw := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	blocks := GetDataBlocks(raw, v)
	require.Len(t, blocks, 1)
	assert.Equal(t, 3, blocks[0].NumDataCodewords)
	assert.Equal(t, raw, blocks[0].Codewords)
}

func TestGetDataBlocks_MultipleBlocksInterleaved(t *testing.T) {
	v, err := VersionForDimensions(52, 52) // version 15: 2 blocks of 102 data + 42 EC codewords
	require.NoError(t, err)
	require.Equal(t, 15, v.VersionNumber)
	require.Equal(t, 2, v.ECBlocks.NumBlocks())

	blockLen := 102 + 42
	raw := make([]byte, blockLen*2)
	for i := range raw {
		raw[i] = byte(i % 256)
	}
	blocks := GetDataBlocks(raw, v)
	require.Len(t, blocks, 2)
	for _, b := range blocks {
		assert.Equal(t, 102, b.NumDataCodewords)
		assert.Len(t, b.Codewords, blockLen)
	}
	// First data codeword of each block is interleaved round-robin.
	assert.Equal(t, raw[0], blocks[0].Codewords[0])
	assert.Equal(t, raw[1], blocks[1].Codewords[0])
}

func TestGetDataBlocks_Version24UnevenGroups(t *testing.T) {
	v, err := VersionForDimensions(144, 144)
	require.NoError(t, err)
	require.Equal(t, 24, v.VersionNumber)
	require.Equal(t, 10, v.ECBlocks.NumBlocks())

	// 8 blocks of (156 data + 62 EC) + 2 blocks of (155 data + 62 EC).
	total := 8*(156+62) + 2*(155+62)
	raw := make([]byte, total)
	for i := range raw {
		raw[i] = byte(i % 256)
	}

	blocks := GetDataBlocks(raw, v)
	require.Len(t, blocks, 10)
	for i := 0; i < 8; i++ {
		assert.Equal(t, 156, blocks[i].NumDataCodewords)
	}
	for i := 8; i < 10; i++ {
		assert.Equal(t, 155, blocks[i].NumDataCodewords)
	}

	// Data codewords: column-major in block order, 155 shared columns then
	// the 8 longer blocks' extra column.
	assert.Equal(t, raw[0], blocks[0].Codewords[0])
	assert.Equal(t, raw[9], blocks[9].Codewords[0])
	assert.Equal(t, raw[1550], blocks[0].Codewords[155]) // first extra-column byte
	assert.Equal(t, raw[1557], blocks[7].Codewords[155]) // last extra-column byte

	// EC codewords: rotated by 8 blocks, so logical block 0's first EC byte
	// lands in block 8, block 2's lands back in block 0, and so on.
	assert.Equal(t, raw[1558], blocks[8].Codewords[155])
	assert.Equal(t, raw[1559], blocks[9].Codewords[155])
	assert.Equal(t, raw[1560], blocks[0].Codewords[156])
	assert.Equal(t, raw[1567], blocks[7].Codewords[156])
}
