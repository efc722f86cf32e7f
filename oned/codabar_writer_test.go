package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodabarWriterRoundTrip(t *testing.T) {
	code, err := NewCodabarWriter().Encode("A40156B")
	require.NoError(t, err)

	result, err := NewCodabarReader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "40156", result.Text)
}

func TestCodabarWriterWrapsUnguardedContent(t *testing.T) {
	code, err := NewCodabarWriter().Encode("40156")
	require.NoError(t, err)

	result, err := NewCodabarReader().DecodeRow(0, buildRow(code), nil)
	require.NoError(t, err)
	assert.Equal(t, "40156", result.Text)
}

func TestCodabarWriterRejectsMismatchedGuards(t *testing.T) {
	// 'A' is a normal guard char, 'N' is an alias guard char; mixing
	// families across start/end is rejected.
	_, err := NewCodabarWriter().Encode("A40156N")
	assert.Error(t, err)
}
