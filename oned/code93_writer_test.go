package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode93WriterRoundTrip(t *testing.T) {
	code, err := NewCode93Writer().Encode("CODE93")
	require.NoError(t, err)

	result, err := NewCode93Reader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "CODE93", result.Text)
}

func TestCode93WriterExtendedModeRoundTrip(t *testing.T) {
	code, err := NewCode93Writer().Encode("Hello!")
	require.NoError(t, err)

	result, err := NewCode93Reader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello!", result.Text)
}

func TestCode93WriterRejectsTooLong(t *testing.T) {
	content := make([]byte, code93MaxContentLength+1)
	for i := range content {
		content[i] = '0'
	}
	_, err := NewCode93Writer().Encode(string(content))
	assert.Error(t, err)
}
