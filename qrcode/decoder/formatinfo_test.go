package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bchEncode computes the 15-bit QR format-info codeword (5 data bits plus a
// 10-bit BCH(15,5) remainder) for the given 5-bit data value, using the same
// generator polynomial (x^10+x^8+x^5+x^4+x^2+x+1, 0x537) the QR standard
// defines. The result is unmasked; XOR with formatInfoMaskXOR before feeding
// it to a reader that expects the as-stored bits.
func bchEncode(data uint) uint {
	const generator = 0x537
	reg := data << 10
	for i := 14; i >= 10; i-- {
		if reg&(1<<uint(i)) != 0 {
			reg ^= generator << uint(i-10)
		}
	}
	return (data << 10) | reg
}

func TestResolveFormatInformation_ExactMatch(t *testing.T) {
	// data = 00000 (EC level + mask bits all zero) encodes to a zero
	// remainder, so the unmasked codeword is 0 and the stored (masked)
	// reading is exactly formatInfoMaskXOR.
	unmasked := bchEncode(0)
	require.Equal(t, uint(0), unmasked)

	stored := unmasked ^ formatInfoMaskXOR
	fi, err := ResolveFormatInformation(stored, stored)
	require.NoError(t, err)
	assert.Equal(t, byte(0), fi.GetDataMask())
}

func TestResolveFormatInformation_BackupLocationUsed(t *testing.T) {
	unmasked := bchEncode(0)
	stored := unmasked ^ formatInfoMaskXOR

	// Primary reading is garbage; backup carries the real value.
	fi, err := ResolveFormatInformation(0, stored)
	require.NoError(t, err)
	assert.Equal(t, byte(0), fi.GetDataMask())
}
