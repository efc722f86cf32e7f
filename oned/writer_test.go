package oned

import (
	"github.com/jalphad/barcode/bitutil"
)

// buildRow turns an encoded module sequence into a BitArray with a wide
// quiet zone on both sides, matching what a real row scan would hand a
// RowDecoder after binarization.
func buildRow(code []bool) *bitutil.BitArray {
	const quiet = 10
	row := bitutil.NewBitArray(quiet + len(code) + quiet)
	for i, set := range code {
		if set {
			row.Set(quiet + i)
		}
	}
	return row
}
