package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestITFWriterRoundTrip(t *testing.T) {
	code, err := NewITFWriter().Encode("123456")
	require.NoError(t, err)

	result, err := NewITFReader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "123456", result.Text)
}

func TestITFWriterRejectsOddLength(t *testing.T) {
	_, err := NewITFWriter().Encode("12345")
	assert.Error(t, err)
}

func TestITFWriterRejectsNonDigits(t *testing.T) {
	_, err := NewITFWriter().Encode("12a4")
	assert.Error(t, err)
}
