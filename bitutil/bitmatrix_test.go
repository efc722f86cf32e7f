package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitMatrix_SetAndGet(t *testing.T) {
	m := NewBitMatrix(10, 10)
	assert.False(t, m.Get(3, 4))
	m.Set(3, 4)
	assert.True(t, m.Get(3, 4))
}

func TestBitMatrix_SetRegion(t *testing.T) {
	m := NewBitMatrix(10, 10)
	m.SetRegion(2, 2, 3, 3)
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			assert.True(t, m.Get(x, y))
		}
	}
	assert.False(t, m.Get(5, 2))
}

func TestBitMatrix_GetRow(t *testing.T) {
	m := NewBitMatrix(8, 2)
	m.Set(0, 1)
	m.Set(5, 1)
	row := m.GetRow(1, nil)
	require.NotNil(t, row)
	assert.True(t, row.Get(0))
	assert.True(t, row.Get(5))
	assert.False(t, row.Get(1))
}

func TestBitMatrix_RotateCounterClockwise90(t *testing.T) {
	m := NewBitMatrix(3, 2)
	m.Set(2, 0)
	rotated := m.RotateCounterClockwise90()
	assert.Equal(t, 2, rotated.Width())
	assert.Equal(t, 3, rotated.Height())
	assert.True(t, rotated.Get(0, 0))
}
