package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUPCAWriterRoundTrip(t *testing.T) {
	// 036000291452 is a well-known valid UPC-A (Kleenex).
	code, err := NewUPCAWriter().Encode("036000291452")
	require.NoError(t, err)

	result, err := NewUPCAReader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "036000291452", result.Text)
}

func TestUPCAWriterComputesCheckDigit(t *testing.T) {
	code, err := NewUPCAWriter().Encode("03600029145")
	require.NoError(t, err)

	result, err := NewUPCAReader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "036000291452", result.Text)
}

func TestUPCAWriterRejectsBadLength(t *testing.T) {
	_, err := NewUPCAWriter().Encode("123")
	assert.Error(t, err)
}
