package oned

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalphad/barcode/bitutil"
)

func rowFromRuns(runs []int) *bitutil.BitArray {
	total := 0
	for _, r := range runs {
		total += r
	}
	row := bitutil.NewBitArray(total)
	isBlack := true
	pos := 0
	for _, r := range runs {
		if isBlack {
			row.SetRange(pos, pos+r)
		}
		pos += r
		isBlack = !isBlack
	}
	return row
}

func TestRecordPattern(t *testing.T) {
	row := rowFromRuns([]int{3, 2, 3, 2})
	counters := make([]int, 4)
	require.NoError(t, RecordPattern(row, 0, counters))
	assert.Equal(t, []int{3, 2, 3, 2}, counters)
}

func TestRecordPatternInReverse(t *testing.T) {
	row := rowFromRuns([]int{3, 2, 3, 2})
	counters := make([]int, 4)
	require.NoError(t, RecordPatternInReverse(row, row.Size()-1, counters))
	assert.Equal(t, []int{2, 3, 2, 3}, counters)
}

func TestPatternMatchVariance_ExactMatch(t *testing.T) {
	variance := PatternMatchVariance([]int{2, 4, 2, 4}, []int{1, 2, 1, 2}, 0.5)
	assert.Less(t, variance, 0.01)
}

func TestPatternMatchVariance_TooShort(t *testing.T) {
	variance := PatternMatchVariance([]int{1, 1}, []int{1, 1, 1}, 0.5)
	assert.True(t, math.IsInf(variance, 1))
}

func TestPatternMatchVariance_TooDifferent(t *testing.T) {
	variance := PatternMatchVariance([]int{10, 1, 1, 1}, []int{1, 1, 1, 1}, 0.1)
	assert.True(t, math.IsInf(variance, 1))
}
