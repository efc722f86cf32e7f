package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEAN13WriterRoundTrip(t *testing.T) {
	// 0036000291452 is 036000291452 (a valid UPC-A) under the EAN-13
	// leading-zero convention; its check digit carries over unchanged.
	w := NewEAN13Writer()
	code, err := w.Encode("0036000291452")
	require.NoError(t, err)

	result, err := NewEAN13Reader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "0036000291452", result.Text)
}

func TestEAN13WriterComputesCheckDigit(t *testing.T) {
	w := NewEAN13Writer()
	code, err := w.Encode("003600029145")
	require.NoError(t, err)

	result, err := NewEAN13Reader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "0036000291452", result.Text)
}

func TestEAN13WriterRejectsBadLength(t *testing.T) {
	_, err := NewEAN13Writer().Encode("123")
	assert.Error(t, err)
}

func TestEAN13WriterRejectsBadChecksum(t *testing.T) {
	_, err := NewEAN13Writer().Encode("0036000291451")
	assert.Error(t, err)
}
