package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStandardUPCEANChecksum(t *testing.T) {
	// 036000291452 is a well-known valid UPC-A (Kleenex).
	digits := "03600029145"
	check := GetStandardUPCEANChecksum(digits)
	assert.Equal(t, 2, check)
}

func TestCheckStandardUPCEANChecksum(t *testing.T) {
	assert.True(t, CheckStandardUPCEANChecksum("036000291452"))
	assert.False(t, CheckStandardUPCEANChecksum("036000291450"))
}

func TestLookupCountry(t *testing.T) {
	assert.Equal(t, "US", lookupCountry("036000291452"))
	assert.Equal(t, "BOOKLAND", lookupCountry("9780000000002"))
	assert.Equal(t, "", lookupCountry("12"))
}

func TestConvertUPCEtoUPCA(t *testing.T) {
	upca := ConvertUPCEtoUPCA("01234565")
	assert.Len(t, upca, 12)
}
