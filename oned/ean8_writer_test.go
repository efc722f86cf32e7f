package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEAN8WriterRoundTrip(t *testing.T) {
	// 96385074 is a valid EAN-8 (check digit 4 over 9638507).
	code, err := NewEAN8Writer().Encode("96385074")
	require.NoError(t, err)

	result, err := NewEAN8Reader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "96385074", result.Text)
}

func TestEAN8WriterComputesCheckDigit(t *testing.T) {
	code, err := NewEAN8Writer().Encode("9638507")
	require.NoError(t, err)

	result, err := NewEAN8Reader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "96385074", result.Text)
}

func TestEAN8WriterRejectsBadLength(t *testing.T) {
	_, err := NewEAN8Writer().Encode("123")
	assert.Error(t, err)
}
