// Package oned implements the 1D row-scan driver and the per-symbology
// row decoders/encoders: UPC/EAN, Code 39, Code 93, Code 128, Codabar, ITF,
// and RSS Expanded.
package oned

import (
	"math"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

// RecordPattern starts at the bit at index start, classifies its polarity as
// the initial run, and records alternating run lengths into counters until
// counters is full or the row ends. It tolerates the final run being cut off
// by the end of the row, but fails ErrNotFound if fewer than len(counters)
// runs exist.
func RecordPattern(row *bitutil.BitArray, start int, counters []int) error {
	numCounters := len(counters)
	for i := range counters {
		counters[i] = 0
	}
	end := row.Size()
	if start >= end {
		return barcode.ErrNotFound
	}
	isWhite := !row.Get(start)
	counterPosition := 0
	i := start
	for i < end {
		if row.Get(i) != isWhite {
			counters[counterPosition]++
		} else {
			counterPosition++
			if counterPosition == numCounters {
				break
			}
			counters[counterPosition] = 1
			isWhite = !isWhite
		}
		i++
	}
	// Found enough runs, possibly with the last one cut off at the end.
	if counterPosition == numCounters || (counterPosition == numCounters-1 && i == end) {
		return nil
	}
	return barcode.ErrNotFound
}

// RecordPatternInReverse walks backward from start until len(counters)
// polarity transitions have been passed, then delegates to RecordPattern
// scanning forward from the new origin.
func RecordPatternInReverse(row *bitutil.BitArray, start int, counters []int) error {
	numTransitionsLeft := len(counters)
	first := true
	isWhite := true
	for start >= 0 && numTransitionsLeft >= 0 {
		if row.Get(start) != isWhite {
			numTransitionsLeft--
			isWhite = !isWhite
		}
		if numTransitionsLeft == 0 && !first {
			break
		}
		first = false
		start--
	}
	if start < 0 {
		return barcode.ErrNotFound
	}
	return RecordPattern(row, start+1, counters)
}

// PatternMatchVariance is the sole similarity metric used by every 1D
// decoder: a scale-invariant weighted average deviation of counters from
// pattern, normalized to 1-unit widths.
func PatternMatchVariance(counters, pattern []int, maxIndividualVariance float64) float64 {
	numCounters := len(counters)
	total := 0
	patternLength := 0
	for i := 0; i < numCounters; i++ {
		total += counters[i]
	}
	for _, p := range pattern {
		patternLength += p
	}
	if total < patternLength {
		return math.Inf(1)
	}
	unitBarWidth := float64(total) / float64(patternLength)
	maxIndividualVariance *= unitBarWidth

	totalVariance := 0.0
	for x := 0; x < numCounters; x++ {
		counter := float64(counters[x])
		scaledPattern := float64(pattern[x]) * unitBarWidth
		variance := counter - scaledPattern
		if variance < 0 {
			variance = -variance
		}
		if variance > maxIndividualVariance {
			return math.Inf(1)
		}
		totalVariance += variance
	}
	return totalVariance / float64(total)
}
