package decoder

import (
	"fmt"

	gozxingdecoder "github.com/makiuchi-d/gozxing/qrcode/decoder"
)

// formatInfoMaskXOR is the constant QR format-info codewords are XORed with
// before being placed in the symbol, chosen so an all-zero format info never
// produces an all-dark module run next to a finder pattern.
const formatInfoMaskXOR = 0x5412

// ResolveFormatInformation picks between the two redundant 15-bit
// format-information readings a QR symbol stores (one beside the top-left
// finder, one split across the bottom-left and top-right finders),
// returning whichever decodes to the table entry with the smaller Hamming
// distance. Both readings go to gozxing's two-codeword distance check,
// which retries them XORed with formatInfoMaskXOR when neither is close to
// a table entry as read.
func ResolveFormatInformation(primaryBits, backupBits uint) (*gozxingdecoder.FormatInformation, error) {
	if fi := gozxingdecoder.FormatInformation_DecodeFormatInformation(primaryBits, backupBits); fi != nil {
		return fi, nil
	}
	return nil, fmt.Errorf("qrcode: could not decode format information from either placement (%015b / %015b)", primaryBits, backupBits)
}
