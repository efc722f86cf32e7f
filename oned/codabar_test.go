package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodabarToChar(t *testing.T) {
	ch, err := codabarToChar([]int{1, 1, 1, 1, 1, 3, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, byte('0'), ch)

	_, err = codabarToChar([]int{1, 1, 1, 1, 1, 1, 1, 1})
	assert.Error(t, err)
}

func TestIsCodabarStartEnd(t *testing.T) {
	assert.True(t, isCodabarStartEnd('A'))
	assert.True(t, isCodabarStartEnd('D'))
	assert.False(t, isCodabarStartEnd('5'))
}
