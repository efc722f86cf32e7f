package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRSSExpandedPairs_SingleFinder(t *testing.T) {
	row := rowFromRuns([]int{1, 8, 4, 1})
	values, end, err := decodeRSSExpandedPairs(row)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, values)
	assert.Equal(t, 14, end)
}

func TestDecodeRSSExpandedPairs_NoMatch(t *testing.T) {
	row := rowFromRuns([]int{1, 1, 1, 1})
	_, _, err := decodeRSSExpandedPairs(row)
	assert.Error(t, err)
}
