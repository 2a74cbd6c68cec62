package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_PushPop(t *testing.T) {
	b := New[int]()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Cap())

	for i := 0; i < 10; i++ {
		require.NoError(t, b.Push(i))
		assert.LessOrEqual(t, b.Len(), b.Cap())
	}

	assert.Equal(t, 10, b.Len())
	// Doubling from zero: 0 -> 4 -> 8 -> 16.
	assert.Equal(t, 16, b.Cap())

	for i := 9; i >= 0; i-- {
		v, ok := b.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok := b.Pop()
	assert.False(t, ok)
	assert.True(t, b.IsEmpty())
	// Capacity never decreases.
	assert.Equal(t, 16, b.Cap())
}

func TestBuffer_GrowthSchedule(t *testing.T) {
	b := New[byte]()
	caps := []int{}
	last := -1
	for i := 0; i < 70; i++ {
		require.NoError(t, b.Push(byte(i)))
		if b.Cap() != last {
			last = b.Cap()
			caps = append(caps, last)
		}
	}
	assert.Equal(t, []int{4, 8, 16, 32, 64, 128}, caps)

	stats := b.Stats()
	assert.Equal(t, uint64(6), stats.Grows)
	// 0+4+8+16+32+64 elements moved across blocks.
	assert.Equal(t, uint64(124), stats.ElementsCopied)
}

func TestBuffer_Get(t *testing.T) {
	b := NewWithCapacity[string](2)
	assert.Equal(t, 2, b.Cap())

	require.NoError(t, b.Push("a"))
	require.NoError(t, b.Push("b"))

	v, ok := b.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = b.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	// Out of range is a normal empty result, not an error.
	_, ok = b.Get(2)
	assert.False(t, ok)
	_, ok = b.Get(-1)
	assert.False(t, ok)

	// Get never mutates.
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 2, b.Cap())
}

func TestBuffer_PopTransfersOwnership(t *testing.T) {
	b := New[*int]()
	x := 42
	require.NoError(t, b.Push(&x))

	v, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, 42, *v)

	// The vacated slot no longer references the value.
	assert.Nil(t, b.block[0])
}

func TestBuffer_Reset(t *testing.T) {
	b := New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, b.Push(i))
	}
	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 8, b.Cap())
	_, ok := b.Pop()
	assert.False(t, ok)

	require.NoError(t, b.Push(99))
	v, ok := b.Get(0)
	assert.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestBuffer_LIFOProperty(t *testing.T) {
	// For any sequence of pushes followed by equal-count pops, values
	// return in strict reverse push order.
	b := New[int]()
	const n = 1000
	for i := 0; i < n; i++ {
		require.NoError(t, b.Push(i*i))
	}
	for i := n - 1; i >= 0; i-- {
		v, ok := b.Pop()
		require.True(t, ok)
		require.Equal(t, i*i, v)
	}
}

func TestBuffer_NewWithCapacity_NonPositive(t *testing.T) {
	b := NewWithCapacity[int](0)
	assert.Equal(t, 0, b.Cap())
	b = NewWithCapacity[int](-5)
	assert.Equal(t, 0, b.Cap())
	require.NoError(t, b.Push(1))
	assert.Equal(t, 4, b.Cap())
}

func BenchmarkBuffer_Push(b *testing.B) {
	buf := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Push(i)
	}
}

func BenchmarkBuffer_PushPreSized(b *testing.B) {
	buf := NewWithCapacity[int](b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Push(i)
	}
}
