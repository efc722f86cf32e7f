package decoder

import (
	"testing"

	"github.com/jalphad/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBitStream_PlainASCII(t *testing.T) {
	v, err := VersionForDimensions(10, 10)
	require.NoError(t, err)

	result, err := DecodeBitStream([]byte{66, 67, 0}, v)
	require.NoError(t, err)
	assert.Equal(t, "AB", result.Text)
}

func TestDecodeBitStream_NumericPair(t *testing.T) {
	v, err := VersionForDimensions(10, 10)
	require.NoError(t, err)

	// 130 encodes digit pair "00".
	result, err := DecodeBitStream([]byte{130, 0}, v)
	require.NoError(t, err)
	assert.Equal(t, "00", result.Text)
}

func TestDecodeBitStream_PlainTextGetsBaseSymbologyModifier(t *testing.T) {
	v, err := VersionForDimensions(10, 10)
	require.NoError(t, err)

	result, err := DecodeBitStream([]byte{66, 67, 0}, v)
	require.NoError(t, err)
	assert.Equal(t, "]d1", result.Metadata[barcode.MetadataSymbologyIdentifier])
}

func TestDecodeBitStream_FNC1AtStartEmitsGSAndShiftsModifier(t *testing.T) {
	v, err := VersionForDimensions(10, 10)
	require.NoError(t, err)

	// 232 is FNC1 at the very start of the message, followed by "A".
	result, err := DecodeBitStream([]byte{232, 66, 0}, v)
	require.NoError(t, err)
	assert.Equal(t, "\x1dA", result.Text)
	assert.Equal(t, "]d2", result.Metadata[barcode.MetadataSymbologyIdentifier])
}

func TestDecodeBitStream_ECIDesignatorSetsModifier(t *testing.T) {
	v, err := VersionForDimensions(10, 10)
	require.NoError(t, err)

	// 241 latches ECI mode; the next byte (<=127) is a single-byte
	// designator, after which decoding resumes in ASCII mode.
	result, err := DecodeBitStream([]byte{241, 5, 66, 0}, v)
	require.NoError(t, err)
	assert.Equal(t, "A", result.Text)
	assert.Equal(t, "]d4", result.Metadata[barcode.MetadataSymbologyIdentifier])
}

func TestUnrandomize255State(t *testing.T) {
	pos := 3
	pseudoRandom := ((149 * pos) % 255) + 1
	randomized := (42 + pseudoRandom) % 256
	assert.Equal(t, 42, unrandomize255State(randomized, pos))
}
