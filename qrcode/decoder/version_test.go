package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionForNumber_Version1(t *testing.T) {
	v := VersionForNumber(1)
	require.NotNil(t, v)
	// Version 1 (21x21) carries 26 total codewords at every EC level.
	assert.Equal(t, 26, TotalCodewords(v))
}

func TestProvisionalVersionForDimension(t *testing.T) {
	v, err := ProvisionalVersionForDimension(21)
	require.NoError(t, err)
	assert.Equal(t, 1, v.GetVersionNumber())
}
