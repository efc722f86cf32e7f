package oned

import (
	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
	"github.com/jalphad/barcode/oned/rssexpanded"
)

const (
	rssExpandedMaxAvgVariance        = 0.2
	rssExpandedMaxIndividualVariance = 0.45
)

// rssExpandedFinderPatterns are the four-run finder characters recognized
// between each pair of RSS Expanded data characters.
var rssExpandedFinderPatterns = [][4]int{
	{1, 8, 4, 1}, {3, 6, 4, 1}, {3, 4, 6, 1}, {3, 2, 8, 1},
	{2, 6, 5, 1}, {2, 2, 9, 1},
}

// RSSExpandedReader decodes single-row RSS/GS1 DataBar Expanded symbols:
// it matches consecutive 4-run segments against the finder patterns, packs
// each matched finder's index into a 12-bit group of a bit field, and hands
// that field to the general Application Identifier decoder. Data characters
// are not decoded.
type RSSExpandedReader struct{}

// NewRSSExpandedReader creates an RSSExpandedReader.
func NewRSSExpandedReader() *RSSExpandedReader { return &RSSExpandedReader{} }

func (r *RSSExpandedReader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	if !barcode.WantsFormat(hints, barcode.FormatRSSExpanded) {
		return nil, barcode.ErrNotFound
	}

	segments, end, err := decodeRSSExpandedPairs(row)
	if err != nil {
		return nil, err
	}

	bits := bitutil.NewBitArray(len(segments) * 12)
	for i, value := range segments {
		base := i * 12
		for b := 0; b < 12; b++ {
			if value&(1<<uint(11-b)) != 0 {
				bits.Set(base + b)
			}
		}
	}

	text, derr := rssexpanded.Decode(bits)
	if derr != nil {
		return nil, derr
	}

	return barcode.NewResult(text, nil, []barcode.ResultPoint{
		{X: 0, Y: float64(rowNumber)},
		{X: float64(end), Y: float64(rowNumber)},
	}, barcode.FormatRSSExpanded), nil
}

// decodeRSSExpandedPairs scans consecutive 4-run segments from the first
// black module, stopping at the first that matches no finder pattern, and
// returns the matched finder indices (0-5) and the row offset reached.
func decodeRSSExpandedPairs(row *bitutil.BitArray) ([]int, int, error) {
	width := row.Size()
	rowOffset := row.GetNextSet(0)
	var values []int
	counters := make([]int, 4)

	for rowOffset < width {
		if err := RecordPattern(row, rowOffset, counters); err != nil {
			break
		}
		bestMatch := -1
		bestVariance := rssExpandedMaxAvgVariance
		for i, pattern := range rssExpandedFinderPatterns {
			variance := PatternMatchVariance(counters, pattern[:], rssExpandedMaxIndividualVariance)
			if variance < bestVariance {
				bestVariance = variance
				bestMatch = i
			}
		}
		if bestMatch < 0 {
			break
		}
		values = append(values, bestMatch)
		for _, c := range counters {
			rowOffset += c
		}
	}

	if len(values) == 0 {
		return nil, 0, barcode.ErrNotFound
	}
	return values, rowOffset, nil
}
