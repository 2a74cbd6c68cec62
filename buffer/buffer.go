package buffer

import (
	"errors"
	"math"
)

var (
	// ErrAllocationFailed is returned when a block allocation fails.
	// The buffer is left in its prior valid state.
	ErrAllocationFailed = errors.New("buffer: allocation failed")
	// ErrClosed is returned when pushing to a closed off-heap buffer.
	ErrClosed = errors.New("buffer: closed")
)

// minCapacity is the capacity installed by the first growth.
const minCapacity = 4

// Stats tracks buffer growth metrics.
//
// The counters are plain integers: buffers are single-writer by contract,
// so no atomicity is needed.
type Stats struct {
	Grows          uint64 // Number of block growths
	ElementsCopied uint64 // Elements moved across blocks by growths
}

// Buffer is an owning growable array. The zero value is not usable; create
// buffers with New or NewWithCapacity.
//
// The buffer exclusively owns its block. Pop transfers element ownership
// out and clears the vacated slot so the garbage collector can reclaim the
// value immediately.
type Buffer[T any] struct {
	block  []T // len(block) == capacity
	length int
	stats  Stats
}

// New creates an empty buffer with zero capacity. No allocation occurs
// until the first Push.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// NewWithCapacity creates an empty buffer with a single pre-sized block.
// A non-positive capacity behaves like New.
func NewWithCapacity[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		return &Buffer[T]{}
	}
	return &Buffer[T]{block: make([]T, capacity)}
}

// Push appends value, growing the block first if it is full.
// On allocation failure the buffer is unchanged.
func (b *Buffer[T]) Push(value T) error {
	if b.length == len(b.block) {
		if err := b.grow(); err != nil {
			return err
		}
	}
	b.block[b.length] = value
	b.length++
	return nil
}

// Pop removes and returns the last element, transferring its ownership to
// the caller. An empty buffer returns (zero, false); this is normal control
// flow, not an error.
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T
	if b.length == 0 {
		return zero, false
	}
	b.length--
	v := b.block[b.length]
	b.block[b.length] = zero // drop the buffer's reference
	return v, true
}

// Get returns the element at index. It never allocates and never mutates;
// an out-of-range index returns (zero, false).
func (b *Buffer[T]) Get(index int) (T, bool) {
	if index < 0 || index >= b.length {
		var zero T
		return zero, false
	}
	return b.block[index], true
}

// Len returns the number of occupied slots.
func (b *Buffer[T]) Len() int { return b.length }

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int { return len(b.block) }

// IsEmpty returns true if the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool { return b.length == 0 }

// Reset clears all elements but keeps the allocated block.
func (b *Buffer[T]) Reset() {
	var zero T
	for i := 0; i < b.length; i++ {
		b.block[i] = zero
	}
	b.length = 0
}

// Stats returns a snapshot of the growth counters.
func (b *Buffer[T]) Stats() Stats { return b.stats }

// grow installs a block of max(4, capacity*2) slots, copying the occupied
// prefix in order. The old block is released to the garbage collector.
func (b *Buffer[T]) grow() error {
	newCap := nextCapacity(len(b.block))
	if newCap < 0 {
		return ErrAllocationFailed
	}
	next := make([]T, newCap)
	copy(next, b.block[:b.length])
	b.block = next
	b.stats.Grows++
	b.stats.ElementsCopied += uint64(b.length)
	return nil
}

// nextCapacity returns the doubled capacity, or -1 on overflow.
func nextCapacity(capacity int) int {
	if capacity == 0 {
		return minCapacity
	}
	if capacity > math.MaxInt/2 {
		return -1
	}
	return capacity * 2
}
