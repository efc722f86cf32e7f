package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUPCEWriterRoundTrip(t *testing.T) {
	code, err := NewUPCEWriter().Encode("01234565")
	require.NoError(t, err)

	result, err := NewUPCEReader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "01234565", result.Text)
}

func TestUPCEWriterComputesCheckDigit(t *testing.T) {
	code, err := NewUPCEWriter().Encode("0123456")
	require.NoError(t, err)

	result, err := NewUPCEReader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "01234565", result.Text)
}

func TestUPCEWriterRejectsBadFirstDigit(t *testing.T) {
	_, err := NewUPCEWriter().Encode("2123456")
	assert.Error(t, err)
}
