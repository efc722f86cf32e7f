// Package decoder carries only the parts of QR decoding this module commits
// to: the Version/ECBlocks size tables and the format-information
// bit-distance helper. Full QR symbol decoding (finder detection, module
// sampling, masking, bitstream parsing) is out of scope; gozxing owns that
// engine and this package borrows its tables rather than reimplementing it.
package decoder

import (
	gozxingdecoder "github.com/makiuchi-d/gozxing/qrcode/decoder"
)

// VersionForNumber looks up a QR version's Version/ECBlocks tables by its
// 1-40 version number.
func VersionForNumber(n int) *gozxingdecoder.Version {
	return gozxingdecoder.Version_GetVersionForNumber(n)
}

// ProvisionalVersionForDimension estimates a version from a sampled symbol's
// side length, before the version-info bits (present only at version 7+)
// confirm it exactly.
func ProvisionalVersionForDimension(dimension int) (*gozxingdecoder.Version, error) {
	return gozxingdecoder.Version_GetProvisionalVersionForDimension(dimension)
}

// TotalCodewords returns a version's full codeword count (data + EC across
// every block), independent of error-correction level.
func TotalCodewords(v *gozxingdecoder.Version) int {
	return v.GetTotalCodewords()
}

// ECBlocksForLevel returns the per-block data/EC codeword split a version
// uses at the given error-correction level.
func ECBlocksForLevel(v *gozxingdecoder.Version, level gozxingdecoder.ErrorCorrectionLevel) *gozxingdecoder.ECBlocks {
	return v.GetECBlocksForLevel(level)
}
