package oned

import (
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

const codabarAlphabetString = "0123456789-$:/.+ABCD"

// codabarCharacterEncodings holds, per character in codabarAlphabetString,
// its 7-element bar/space run pattern packed as a bit per run (1=wide).
var codabarCharacterEncodings = [20]int{
	0x003, 0x006, 0x009, 0x060, 0x012, 0x021, 0x024, 0x030, 0x048, 0x00C,
	0x018, 0x045, 0x051, 0x054, 0x015, 0x01A, 0x029, 0x00B, 0x00E, 0x01B,
}

// CodabarReader decodes Codabar barcodes.
type CodabarReader struct {
	returnStartEnd    bool
	decodeRowCounters [8]int
}

// NewCodabarReader creates a CodabarReader.
func NewCodabarReader() *CodabarReader { return &CodabarReader{} }

func (r *CodabarReader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	if !barcode.WantsFormat(hints, barcode.FormatCodabar) {
		return nil, barcode.ErrNotFound
	}
	returnStartEnd := hints != nil && hints.ReturnCodabarStartEnd

	start, err := findCodabarStartPattern(row)
	if err != nil {
		return nil, err
	}
	nextStart := start[0]

	var sb strings.Builder
	for {
		c := r.decodeRowCounters[:]
		if err := RecordPattern(row, nextStart, c); err != nil {
			break
		}
		ch, cerr := codabarToChar(c)
		if cerr != nil {
			break
		}
		sb.WriteByte(ch)
		for _, cc := range c {
			nextStart += cc
		}
		if isCodabarStartEnd(ch) && sb.Len() > 1 {
			break
		}
	}

	text := sb.String()
	if len(text) < 2 {
		return nil, barcode.ErrNotFound
	}
	if !returnStartEnd {
		text = text[1 : len(text)-1]
	}

	return barcode.NewResult(text, nil, []barcode.ResultPoint{
		{X: float64(start[0]), Y: float64(rowNumber)},
		{X: float64(nextStart), Y: float64(rowNumber)},
	}, barcode.FormatCodabar), nil
}

func isCodabarStartEnd(ch byte) bool {
	return ch == 'A' || ch == 'B' || ch == 'C' || ch == 'D'
}

func findCodabarStartPattern(row *bitutil.BitArray) ([2]int, error) {
	width := row.Size()
	rowOffset := row.GetNextSet(0)
	counterPosition := 0
	counters := make([]int, 8)
	patternStart := rowOffset
	isWhite := false

	for x := rowOffset; x < width; x++ {
		if row.Get(x) != isWhite {
			counters[counterPosition]++
		} else {
			if counterPosition == 7 {
				if ch, err := codabarToChar(counters); err == nil && isCodabarStartEnd(ch) {
					if row.IsRange(max0(patternStart-(x-patternStart)/2), patternStart, false) {
						return [2]int{patternStart, x}, nil
					}
				}
				patternStart += counters[0] + counters[1]
				copy(counters, counters[2:8])
				counters[6] = 0
				counters[7] = 0
				counterPosition--
			} else {
				counterPosition++
			}
			counters[counterPosition] = 1
			isWhite = !isWhite
		}
	}
	return [2]int{}, barcode.ErrNotFound
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// codabarToChar classifies the first 7 of counters (one character's runs;
// an 8th counter, the inter-character gap, is ignored) as narrow or wide
// against their average width and looks the result up in
// codabarCharacterEncodings.
func codabarToChar(counters []int) (byte, error) {
	charRuns := counters[:7]
	total := 0
	for _, c := range charRuns {
		total += c
	}
	pattern := 0
	for _, c := range charRuns {
		wide := float64(c) > float64(total)/7.0
		pattern <<= 1
		if wide {
			pattern |= 1
		}
	}
	for i, enc := range codabarCharacterEncodings {
		if enc == pattern {
			return codabarAlphabetString[i], nil
		}
	}
	return 0, barcode.ErrNotFound
}
