package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalphad/barcode"
)

func TestCode128WriterRoundTrip(t *testing.T) {
	code, err := NewCode128Writer().Encode("Code128")
	require.NoError(t, err)

	result, err := NewCode128Reader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "Code128", result.Text)
}

func TestCode128WriterForcedCodeSetRoundTrip(t *testing.T) {
	hints := &barcode.EncodeHints{ForceCodeSet: "C"}
	code, err := NewCode128Writer().EncodeWithHints("123456", hints)
	require.NoError(t, err)

	result, err := NewCode128Reader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "123456", result.Text)
}

// TestCode128WriterMinimalIsNoLongerThanFast checks the divide-and-conquer
// minimal-symbol-count chooser against the greedy lookahead chooser: the
// minimal encoding must never need more modules than the fast one, and both
// must still decode back to the original content.
func TestCode128WriterMinimalIsNoLongerThanFast(t *testing.T) {
	contents := "AB1234567890CD1234567890EF"

	fastCode, err := NewCode128Writer().Encode(contents)
	require.NoError(t, err)

	minimalCode, err := NewCode128Writer().EncodeWithHints(contents, &barcode.EncodeHints{Code128Compact: true})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(minimalCode), len(fastCode))

	fastResult, err := NewCode128Reader().DecodeRow(0, buildRow(fastCode), nil)
	require.NoError(t, err)
	assert.Equal(t, contents, fastResult.Text)

	minimalResult, err := NewCode128Reader().DecodeRow(0, buildRow(minimalCode), nil)
	require.NoError(t, err)
	assert.Equal(t, contents, minimalResult.Text)
}

func TestCode128WriterRejectsEmptyContent(t *testing.T) {
	_, err := NewCode128Writer().Encode("")
	assert.Error(t, err)
}

func TestCode128WriterRejectsByteAbove127(t *testing.T) {
	_, err := NewCode128Writer().Encode(string([]byte{200}))
	assert.Error(t, err)
}
