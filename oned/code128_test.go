package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode128DecodeSetA(t *testing.T) {
	assert.Equal(t, byte(' '), code128DecodeSetA(0))
	assert.Equal(t, byte(0), code128DecodeSetA(64))
	assert.Equal(t, byte('?'), code128DecodeSetA(96))
}

func TestCode128DecodeSetB(t *testing.T) {
	assert.Equal(t, byte(' '), code128DecodeSetB(0))
	assert.Equal(t, byte('A'), code128DecodeSetB(33))
	assert.Equal(t, byte('?'), code128DecodeSetB(96))
}

func TestCode128PatternsLength(t *testing.T) {
	assert.Len(t, code128Patterns, 107)
	for _, p := range code128Patterns {
		sum := 0
		for _, w := range p {
			sum += w
		}
		assert.Equal(t, 11, sum)
	}
}
