package oned

import (
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

const (
	itfMaxAvgVariance        = 0.38
	itfMaxIndividualVariance = 0.5
)

var (
	itfStartPattern = []int{1, 1, 1, 1}
	itfEndPattern   = []int{3, 1, 1}
)

// itfPatterns are the ten 5-run width encodings shared by both the digit
// position within a pair and its partner; two interleaved digits share one
// set of 5 bars + 5 spaces.
var itfPatterns = [10][5]int{
	{1, 1, 2, 2, 1}, {2, 1, 1, 1, 2}, {1, 2, 1, 1, 2}, {2, 2, 1, 1, 1},
	{1, 1, 2, 1, 2}, {2, 1, 2, 1, 1}, {1, 2, 2, 1, 1}, {1, 1, 1, 2, 2},
	{2, 1, 1, 2, 1}, {1, 2, 1, 2, 1},
}

// ITFReader decodes Interleaved 2 of 5 barcodes.
type ITFReader struct{}

// NewITFReader creates an ITFReader.
func NewITFReader() *ITFReader { return &ITFReader{} }

func (r *ITFReader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	if !barcode.WantsFormat(hints, barcode.FormatITF) {
		return nil, barcode.ErrNotFound
	}

	startRange, err := decodeITFStart(row)
	if err != nil {
		return nil, err
	}
	endRange, err := decodeITFEnd(row)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	if err := decodeITFMiddle(row, startRange[1], endRange[0], &sb); err != nil {
		return nil, err
	}
	text := sb.String()

	allowed := allowedITFLengths(hints)
	lengthOK := len(allowed) == 0
	for _, l := range allowed {
		if len(text) == l {
			lengthOK = true
			break
		}
	}
	if !lengthOK {
		return nil, barcode.ErrFormat
	}

	return barcode.NewResult(text, nil, []barcode.ResultPoint{
		{X: float64(startRange[1]), Y: float64(rowNumber)},
		{X: float64(endRange[0]), Y: float64(rowNumber)},
	}, barcode.FormatITF), nil
}

func allowedITFLengths(hints *barcode.DecodeHints) []int {
	if hints == nil {
		return []int{6, 8, 10, 12, 14}
	}
	return hints.AllowedITFLengths()
}

func decodeITFStart(row *bitutil.BitArray) ([2]int, error) {
	counters := make([]int, len(itfStartPattern))
	startPattern, err := skipWhiteSpace(row)
	if err != nil {
		return [2]int{}, err
	}
	if err := RecordPattern(row, startPattern, counters); err != nil {
		return [2]int{}, err
	}
	if PatternMatchVariance(counters, itfStartPattern, itfMaxIndividualVariance) >= itfMaxAvgVariance {
		return [2]int{}, barcode.ErrNotFound
	}
	narrowBarWidth := (counters[0] + counters[1] + counters[2] + counters[3]) / 4
	quietStart := startPattern - narrowBarWidth*10
	if quietStart >= 0 && !row.IsRange(quietStart, startPattern, false) {
		return [2]int{}, barcode.ErrNotFound
	}
	sum := counters[0] + counters[1] + counters[2] + counters[3]
	return [2]int{startPattern, startPattern + sum}, nil
}

func skipWhiteSpace(row *bitutil.BitArray) (int, error) {
	width := row.Size()
	endStart := row.GetNextSet(0)
	if endStart >= width {
		return 0, barcode.ErrNotFound
	}
	return endStart, nil
}

func decodeITFEnd(row *bitutil.BitArray) ([2]int, error) {
	width := row.Size()
	reversed := bitutil.NewBitArray(width)
	for i := 0; i < width; i++ {
		if row.Get(width - 1 - i) {
			reversed.Set(i)
		}
	}
	endStart, err := skipWhiteSpace(reversed)
	if err != nil {
		return [2]int{}, barcode.ErrNotFound
	}
	counters := make([]int, len(itfEndPattern))
	if err := RecordPattern(reversed, endStart, counters); err != nil {
		return [2]int{}, barcode.ErrNotFound
	}
	reversedEnd := []int{itfEndPattern[2], itfEndPattern[1], itfEndPattern[0]}
	if PatternMatchVariance(counters, reversedEnd, itfMaxIndividualVariance) >= itfMaxAvgVariance {
		return [2]int{}, barcode.ErrNotFound
	}
	sum := counters[0] + counters[1] + counters[2]
	endFromEnd := endStart + sum
	return [2]int{width - endFromEnd, width - endStart}, nil
}

func decodeITFMiddle(row *bitutil.BitArray, start, end int, sb *strings.Builder) error {
	counterDigitPair := make([]int, 10)
	counterBlack := make([]int, 5)
	counterWhite := make([]int, 5)

	for start < end {
		if err := RecordPattern(row, start, counterDigitPair); err != nil {
			return err
		}
		for k := 0; k < 5; k++ {
			counterBlack[k] = counterDigitPair[k*2]
			counterWhite[k] = counterDigitPair[k*2+1]
		}
		bestMatch, err := decodeITFDigit(counterBlack)
		if err != nil {
			return err
		}
		sb.WriteByte(byte('0' + bestMatch))
		bestMatch, err = decodeITFDigit(counterWhite)
		if err != nil {
			return err
		}
		sb.WriteByte(byte('0' + bestMatch))
		for _, c := range counterDigitPair {
			start += c
		}
	}
	return nil
}

func decodeITFDigit(counters []int) (int, error) {
	bestVariance := itfMaxAvgVariance
	bestMatch := -1
	for i, pattern := range itfPatterns {
		variance := PatternMatchVariance(counters, pattern[:], itfMaxIndividualVariance)
		if variance < bestVariance {
			bestVariance = variance
			bestMatch = i
		}
	}
	if bestMatch >= 0 {
		return bestMatch, nil
	}
	return 0, barcode.ErrNotFound
}
