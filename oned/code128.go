package oned

import (
	"strconv"
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

const (
	code128MaxAvgVariance        = 0.25
	code128MaxIndividualVariance = 0.7

	code128CodeShift  = 98
	code128CodeCodeC  = 99
	code128CodeCodeB  = 100
	code128CodeCodeA  = 101
	code128CodeFNC1   = 102
	code128CodeFNC2   = 97
	code128CodeFNC3   = 96
	code128CodeStartA = 103
	code128CodeStartB = 104
	code128CodeStartC = 105
	code128CodeStop   = 106
)

// code128Patterns holds the 107 code-128 symbol-to-bar-width encodings
// (6 runs each, widths 1-4), indexed by code value 0-106.
var code128Patterns = [107][6]int{
	{2, 1, 2, 2, 2, 2}, {2, 2, 2, 1, 2, 2}, {2, 2, 2, 2, 2, 1}, {1, 2, 1, 2, 2, 3},
	{1, 2, 1, 3, 2, 2}, {1, 3, 1, 2, 2, 2}, {1, 2, 2, 2, 1, 3}, {1, 2, 2, 3, 1, 2},
	{1, 3, 2, 2, 1, 2}, {2, 2, 1, 2, 1, 3}, {2, 2, 1, 3, 1, 2}, {2, 3, 1, 2, 1, 2},
	{1, 1, 2, 2, 3, 2}, {1, 2, 2, 1, 3, 2}, {1, 2, 2, 2, 3, 1}, {1, 1, 3, 2, 2, 2},
	{1, 2, 3, 1, 2, 2}, {1, 2, 3, 2, 2, 1}, {2, 2, 3, 2, 1, 1}, {2, 2, 1, 1, 3, 2},
	{2, 2, 1, 2, 3, 1}, {2, 1, 3, 2, 1, 2}, {2, 2, 3, 1, 1, 2}, {3, 1, 2, 1, 3, 1},
	{3, 1, 1, 2, 2, 2}, {3, 2, 1, 1, 2, 2}, {3, 2, 1, 2, 2, 1}, {3, 1, 2, 2, 1, 2},
	{3, 2, 2, 1, 1, 2}, {3, 2, 2, 2, 1, 1}, {2, 1, 2, 1, 2, 3}, {2, 1, 2, 3, 2, 1},
	{2, 3, 2, 1, 2, 1}, {1, 1, 1, 3, 2, 3}, {1, 3, 1, 1, 2, 3}, {1, 3, 1, 3, 2, 1},
	{1, 1, 2, 3, 1, 3}, {1, 3, 2, 1, 1, 3}, {1, 3, 2, 3, 1, 1}, {2, 1, 1, 3, 1, 3},
	{2, 3, 1, 1, 1, 3}, {2, 3, 1, 3, 1, 1}, {1, 1, 2, 1, 3, 3}, {1, 1, 2, 3, 3, 1},
	{1, 3, 2, 1, 3, 1}, {1, 1, 3, 1, 2, 3}, {1, 1, 3, 3, 2, 1}, {1, 3, 3, 1, 2, 1},
	{3, 1, 3, 1, 2, 1}, {2, 1, 1, 3, 3, 1}, {2, 3, 1, 1, 3, 1}, {2, 1, 3, 1, 1, 3},
	{2, 1, 3, 3, 1, 1}, {2, 1, 3, 1, 3, 1}, {3, 1, 1, 1, 2, 3}, {3, 1, 1, 3, 2, 1},
	{3, 3, 1, 1, 2, 1}, {3, 1, 2, 1, 1, 3}, {3, 1, 2, 3, 1, 1}, {3, 3, 2, 1, 1, 1},
	{3, 1, 4, 1, 1, 1}, {2, 2, 1, 4, 1, 1}, {4, 3, 1, 1, 1, 1}, {1, 1, 1, 2, 2, 4},
	{1, 1, 1, 4, 2, 2}, {1, 2, 1, 1, 2, 4}, {1, 2, 1, 4, 2, 1}, {1, 4, 1, 1, 2, 2},
	{1, 4, 1, 2, 2, 1}, {1, 1, 2, 2, 1, 4}, {1, 1, 2, 4, 1, 2}, {1, 2, 2, 1, 1, 4},
	{1, 2, 2, 4, 1, 1}, {1, 4, 2, 1, 1, 2}, {1, 4, 2, 2, 1, 1}, {2, 4, 1, 2, 1, 1},
	{2, 2, 1, 1, 1, 4}, {4, 1, 3, 1, 1, 1}, {2, 4, 1, 1, 1, 2}, {1, 3, 4, 1, 1, 1},
	{1, 1, 1, 2, 4, 2}, {1, 2, 1, 1, 4, 2}, {1, 2, 1, 2, 4, 1}, {1, 1, 4, 2, 1, 2},
	{1, 2, 4, 1, 1, 2}, {1, 2, 4, 2, 1, 1}, {4, 1, 1, 2, 1, 2}, {4, 2, 1, 1, 1, 2},
	{4, 2, 1, 2, 1, 1}, {2, 1, 2, 1, 4, 1}, {2, 1, 4, 1, 2, 1}, {4, 1, 2, 1, 2, 1},
	{1, 1, 1, 1, 4, 3}, {1, 1, 1, 3, 4, 1}, {1, 3, 1, 1, 4, 1}, {1, 1, 4, 1, 1, 3},
	{1, 1, 4, 3, 1, 1}, {4, 1, 1, 1, 1, 3}, {4, 1, 1, 3, 1, 1}, {1, 1, 3, 1, 4, 1},
	{1, 1, 4, 1, 3, 1}, {3, 1, 1, 1, 4, 1}, {4, 1, 1, 1, 3, 1}, {2, 1, 1, 4, 1, 2},
	{2, 1, 1, 2, 1, 4}, {2, 1, 1, 2, 3, 2}, {2, 3, 3, 1, 1, 1},
}

// Code128Reader decodes Code 128 barcodes, including GS1/FNC1 symbology
// identifier handling per hints.AssumeGS1.
type Code128Reader struct{}

// NewCode128Reader creates a Code128Reader.
func NewCode128Reader() *Code128Reader { return &Code128Reader{} }

func (r *Code128Reader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	if !barcode.WantsFormat(hints, barcode.FormatCode128) {
		return nil, barcode.ErrNotFound
	}

	convertFNC1 := hints != nil && hints.AssumeGS1

	startResult, err := findCode128StartPattern(row)
	if err != nil {
		return nil, err
	}
	startCode := startResult[2]

	var codeSet int
	switch startCode {
	case code128CodeStartA:
		codeSet = code128CodeCodeA
	case code128CodeStartB:
		codeSet = code128CodeCodeB
	case code128CodeStartC:
		codeSet = code128CodeCodeC
	default:
		return nil, barcode.ErrFormat
	}

	var sb strings.Builder
	lastStart := startResult[0]
	nextStart := startResult[1]
	counters := make([]int, 6)

	lastCode := 0
	checksumTotal := startCode
	multiplier := 0
	lastTextLen := 0

	for {
		code, codeErr := decodeCode128Code(row, nextStart, counters)
		if codeErr != nil {
			return nil, codeErr
		}
		lastStart = nextStart
		for _, c := range counters {
			nextStart += c
		}

		if code != code128CodeStop {
			multiplier++
			checksumTotal += multiplier * code
		}
		textLen := sb.Len()

		switch {
		case code < 96:
			switch codeSet {
			case code128CodeCodeA:
				sb.WriteByte(code128DecodeSetA(code))
			case code128CodeCodeB:
				sb.WriteByte(code128DecodeSetB(code))
			default:
				if code < 100 {
					sb.WriteString(strconv.Itoa(100 + code)[1:])
				}
			}
		case code == code128CodeFNC1:
			if convertFNC1 {
				if sb.Len() == 0 {
					sb.WriteString("]C1")
				} else {
					sb.WriteByte(29)
				}
			}
		case code == code128CodeStartA, code == code128CodeStartB, code == code128CodeStartC:
			return nil, barcode.ErrFormat
		case code == code128CodeCodeA:
			codeSet = code128CodeCodeA
		case code == code128CodeCodeB:
			codeSet = code128CodeCodeB
		case code == code128CodeCodeC:
			codeSet = code128CodeCodeC
		case code == code128CodeStop:
			goto done
		}
		lastCode = code
		lastTextLen = textLen
	}
done:
	// Skip the stop code's trailing termination bar.
	nextStart = row.GetNextUnset(nextStart)

	width := row.Size()
	trailingWhitespace := nextStart - lastStart
	if nextStart == width || !row.IsRange(nextStart, min(nextStart+trailingWhitespace, width), false) {
		return nil, barcode.ErrNotFound
	}

	checksumTotal -= multiplier * lastCode
	if checksumTotal%103 != lastCode {
		return nil, barcode.ErrChecksum
	}

	// Strip the check codeword's own text.
	rawText := sb.String()[:lastTextLen]
	if len(rawText) == 0 {
		return nil, barcode.ErrNotFound
	}

	return barcode.NewResult(rawText, nil, []barcode.ResultPoint{
		{X: float64(startResult[0]+startResult[1]) / 2.0, Y: float64(rowNumber)},
		{X: float64(lastStart+nextStart) / 2.0, Y: float64(rowNumber)},
	}, barcode.FormatCode128), nil
}

func code128DecodeSetA(code int) byte {
	switch {
	case code < 64:
		return byte(' ' + code)
	case code < 96:
		return byte(code - 64)
	default:
		return '?'
	}
}

func code128DecodeSetB(code int) byte {
	if code < 96 {
		return byte(' ' + code)
	}
	return '?'
}

func findCode128StartPattern(row *bitutil.BitArray) ([3]int, error) {
	width := row.Size()
	rowOffset := row.GetNextSet(0)
	counterPosition := 0
	counters := make([]int, 6)
	patternStart := rowOffset
	isWhite := false

	for x := rowOffset; x < width; x++ {
		if row.Get(x) != isWhite {
			counters[counterPosition]++
		} else {
			if counterPosition == 5 {
				bestVariance := code128MaxAvgVariance
				bestMatch := -1
				for code := code128CodeStartA; code <= code128CodeStartC; code++ {
					variance := PatternMatchVariance(counters, code128Patterns[code][:], code128MaxIndividualVariance)
					if variance < bestVariance {
						bestVariance = variance
						bestMatch = code
					}
				}
				if bestMatch >= 0 && row.IsRange(max0(patternStart-(x-patternStart)), patternStart, false) {
					return [3]int{patternStart, x, bestMatch}, nil
				}
				patternStart += counters[0] + counters[1]
				copy(counters, counters[2:6])
				counters[4] = 0
				counters[5] = 0
				counterPosition--
			} else {
				counterPosition++
			}
			counters[counterPosition] = 1
			isWhite = !isWhite
		}
	}
	return [3]int{}, barcode.ErrNotFound
}

func decodeCode128Code(row *bitutil.BitArray, start int, counters []int) (int, error) {
	for i := range counters {
		counters[i] = 0
	}
	if err := RecordPattern(row, start, counters); err != nil {
		return 0, err
	}
	bestVariance := code128MaxAvgVariance
	bestMatch := -1
	for code := 0; code < 107; code++ {
		variance := PatternMatchVariance(counters, code128Patterns[code][:], code128MaxIndividualVariance)
		if variance < bestVariance {
			bestVariance = variance
			bestMatch = code
		}
	}
	if bestMatch < 0 {
		return 0, barcode.ErrNotFound
	}
	return bestMatch, nil
}
