package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalphad/barcode/bitutil"
)

// TestReadCodewords_Version1Utah builds a version-1 (10x10) symbol by hand,
// placing bits at exactly the module positions the Utah traversal is
// expected to visit for each of the 8 codewords, and checks ReadCodewords
// reconstructs the chosen byte values in the right order. The module
// positions below were derived by tracing ReadCodewords/readUtah/readModule
// for an 8x8 mapping matrix, not guessed.
func TestReadCodewords_Version1Utah(t *testing.T) {
	m := bitutil.NewBitMatrix(10, 10)

	set := func(x, y int) { m.Set(x, y) }

	// Codeword 1: 0xAB at Utah anchor (4,0).
	set(7, 3)
	set(7, 4)
	set(1, 4)
	set(8, 5)
	set(1, 5)

	// Codeword 2: 0x12 at Utah anchor (2,2).
	set(2, 2)
	set(2, 3)

	// Codeword 3: 0x34 at Utah anchor (0,4).
	set(3, 8)
	set(4, 8)
	set(3, 1)

	// Codeword 4: 0x56 at Utah anchor (1,7).
	set(7, 8)
	set(7, 1)
	set(6, 2)
	set(7, 2)

	// Codeword 5: 0x78 at Utah anchor (3,5).
	set(5, 2)
	set(4, 3)
	set(5, 3)
	set(6, 3)

	// Codeword 6: 0x9A at Utah anchor (5,3).
	set(2, 4)
	set(3, 5)
	set(4, 5)
	set(3, 6)

	// Codeword 7: 0xBC at Utah anchor (7,1).
	set(8, 6)
	set(8, 7)
	set(1, 7)
	set(2, 7)
	set(8, 8)

	// Codeword 8: 0xDE at Utah anchor (6,6).
	set(5, 5)
	set(6, 5)
	set(6, 6)
	set(7, 6)
	set(5, 7)
	set(6, 7)

	parser, err := NewBitMatrixParser(m)
	require.NoError(t, err)

	codewords, err := parser.ReadCodewords()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE}, codewords)
}

func TestNewBitMatrixParser_RejectsUnknownDimensions(t *testing.T) {
	m := bitutil.NewBitMatrix(11, 11)
	_, err := NewBitMatrixParser(m)
	assert.Error(t, err)
}
