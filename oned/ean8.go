package oned

import (
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

// EAN8Reader decodes EAN-8 barcodes: four L-only left digits, middle guard,
// four L-only right digits.
type EAN8Reader struct {
	decodeMiddleCounters [4]int
}

// NewEAN8Reader creates an EAN8Reader.
func NewEAN8Reader() *EAN8Reader { return &EAN8Reader{} }

func (r *EAN8Reader) format() barcode.Format { return barcode.FormatEAN8 }

func (r *EAN8Reader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	if !barcode.WantsFormat(hints, barcode.FormatEAN8) {
		return nil, barcode.ErrNotFound
	}
	return decodeUPCEAN(rowNumber, row, r, hints)
}

func (r *EAN8Reader) decodeMiddle(row *bitutil.BitArray, startRange [2]int, result *strings.Builder) (int, error) {
	counters := r.decodeMiddleCounters[:]
	rowOffset := startRange[1]

	for x := 0; x < 4 && rowOffset < row.Size(); x++ {
		bestMatch, err := decodeDigit(row, counters, rowOffset, lPatternsSlice)
		if err != nil {
			return 0, err
		}
		result.WriteByte(byte('0' + bestMatch))
		for _, c := range counters {
			rowOffset += c
		}
	}

	middleRange, err := findMiddleGuardPattern(row, rowOffset)
	if err != nil {
		return 0, err
	}
	rowOffset = middleRange[1]

	for x := 0; x < 4 && rowOffset < row.Size(); x++ {
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
