package oned

import (
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

// firstDigitEncodings maps the 6-bit odd/even parity pattern observed while
// decoding an EAN-13's left half (bit 5-i = 1 means position i was even/G) to
// the implicit first digit.
var firstDigitEncodings = [10]int{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

// EAN13Reader decodes EAN-13 (and, via the multi-format dispatcher's
// promotion rule, UPC-A) barcodes.
type EAN13Reader struct {
	decodeMiddleCounters [4]int
}

// NewEAN13Reader creates an EAN13Reader.
func NewEAN13Reader() *EAN13Reader { return &EAN13Reader{} }

func (r *EAN13Reader) format() barcode.Format { return barcode.FormatEAN13 }

func (r *EAN13Reader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	if !barcode.WantsFormat(hints, barcode.FormatEAN13) && !barcode.WantsFormat(hints, barcode.FormatUPCA) {
		return nil, barcode.ErrNotFound
	}
	return decodeUPCEAN(rowNumber, row, r, hints)
}

func (r *EAN13Reader) decodeMiddle(row *bitutil.BitArray, startRange [2]int, result *strings.Builder) (int, error) {
	counters := r.decodeMiddleCounters[:]
	rowOffset := startRange[1]
	lgPatternFound := 0

	for x := 0; x < 6 && rowOffset < row.Size(); x++ {
		bestMatch, err := decodeDigit(row, counters, rowOffset, LAndGPatterns[:])
		if err != nil {
			return 0, err
		}
		result.WriteByte(byte('0' + bestMatch%10))
		for _, c := range counters {
			rowOffset += c
		}
		if bestMatch >= 10 {
			lgPatternFound |= 1 << uint(5-x)
		}
	}

	firstDigit, err := determineFirstDigit(lgPatternFound)
	if err != nil {
		return 0, err
	}
	// Prepend the implicit first digit.
	s := result.String()
	result.Reset()
	result.WriteByte(byte('0' + firstDigit))
	result.WriteString(s)

	middleRange, err := findMiddleGuardPattern(row, rowOffset)
	if err != nil {
		return 0, err
	}
	rowOffset = middleRange[1]

	for x := 0; x < 6 && rowOffset < row.Size(); x++ {
		bestMatch, err := decodeDigit(row, counters, rowOffset, lPatternsSlice)
		if err != nil {
			return 0, err
		}
		result.WriteByte(byte('0' + bestMatch))
		for _, c := range counters {
			rowOffset += c
		}
	}
	return rowOffset, nil
}

func determineFirstDigit(lgPatternFound int) (int, error) {
	for d := 0; d < 10; d++ {
		if firstDigitEncodings[d] == lgPatternFound {
			return d, nil
		}
	}
	return 0, barcode.ErrNotFound
}

var lPatternsSlice = LPatterns[:]
