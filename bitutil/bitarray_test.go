package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitArray_SetAndGet(t *testing.T) {
	b := NewBitArray(25)
	assert.False(t, b.Get(10))
	b.Set(10)
	assert.True(t, b.Get(10))
	assert.Equal(t, 25, b.Size())
}

func TestBitArray_Flip(t *testing.T) {
	b := NewBitArray(8)
	b.Flip(3)
	assert.True(t, b.Get(3))
	b.Flip(3)
	assert.False(t, b.Get(3))
}

func TestBitArray_SetRangeAndIsRange(t *testing.T) {
	b := NewBitArray(20)
	b.SetRange(5, 15)
	assert.True(t, b.IsRange(5, 15, true))
	assert.True(t, b.IsRange(0, 5, false))
	assert.False(t, b.IsRange(4, 10, true))
}

func TestBitArray_GetNextSetAndUnset(t *testing.T) {
	b := NewBitArray(32)
	b.Set(7)
	b.Set(20)
	require.Equal(t, 7, b.GetNextSet(0))
	require.Equal(t, 20, b.GetNextSet(8))
	require.Equal(t, 0, b.GetNextUnset(0))
	require.Equal(t, 8, b.GetNextUnset(7))
}

func TestBitArray_Reverse(t *testing.T) {
	b := NewBitArray(4)
	b.Set(0)
	b.Reverse()
	assert.False(t, b.Get(0))
	assert.True(t, b.Get(3))
}

func TestBitArray_ToBytes(t *testing.T) {
	b := NewBitArray(8)
	b.Set(0)
	b.Set(7)
	bytes := b.ToBytes(0, 8)
	require.Len(t, bytes, 1)
	assert.Equal(t, byte(0x81), bytes[0])
}
