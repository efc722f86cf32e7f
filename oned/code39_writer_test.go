package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode39WriterRoundTrip(t *testing.T) {
	code, err := NewCode39Writer().Encode("CODE39")
	require.NoError(t, err)

	result, err := NewCode39Reader(false, false).DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "CODE39", result.Text)
}

func TestCode39WriterExtendedModeRoundTrip(t *testing.T) {
	code, err := NewCode39Writer().Encode("Hello!")
	require.NoError(t, err)

	result, err := NewCode39Reader(false, true).DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello!", result.Text)
}

func TestCode39WriterRejectsTooLong(t *testing.T) {
	long := make([]byte, code39MaxContentLength+1)
	for i := range long {
		long[i] = '0'
	}
	_, err := NewCode39Writer().Encode(string(long))
	assert.Error(t, err)
}
