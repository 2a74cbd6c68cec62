package buffer

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/dsgo"
	"github.com/hupe1980/dsgo/internal/mem"
	"github.com/hupe1980/dsgo/internal/mmap"
)

// Scalar constrains off-heap element types to fixed-size values without
// pointers. The raw block is invisible to the garbage collector, so pointer
// types stored there would be collected out from under the buffer.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// mmapThreshold is the block size in bytes at which blocks move from
// aligned heap allocation to anonymous memory mappings. Sub-page blocks are
// not worth a syscall.
const mmapThreshold = 4096

type options struct {
	logger *dsgo.Logger
}

// Option configures an off-heap buffer.
type Option func(*options)

// WithLogger sets the logger used for structural events (block growth and
// release). Defaults to a no-op logger.
func WithLogger(logger *dsgo.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// OffHeap is a growable array of scalar values stored in a raw block
// outside the garbage collector. It follows the same growth contract as
// Buffer but must be released explicitly with Close.
type OffHeap[T Scalar] struct {
	items   []T           // unsafe view over the block, len == capacity
	mapping *mmap.Mapping // nil for heap-backed or empty blocks
	length  int
	closed  bool
	logger  *dsgo.Logger
	stats   Stats
}

// NewOffHeap creates an empty off-heap buffer with zero capacity.
// No allocation occurs until the first Push.
func NewOffHeap[T Scalar](opts ...Option) *OffHeap[T] {
	o := options{logger: dsgo.NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return &OffHeap[T]{logger: o.logger.WithComponent("buffer.offheap")}
}

// NewOffHeapWithCapacity creates an empty off-heap buffer backed by a
// single pre-sized block. On allocation failure no buffer is returned.
func NewOffHeapWithCapacity[T Scalar](capacity int, opts ...Option) (*OffHeap[T], error) {
	b := NewOffHeap[T](opts...)
	if capacity <= 0 {
		return b, nil
	}
	items, mapping, err := allocBlock[T](capacity)
	if err != nil {
		return nil, err
	}
	b.items = items
	b.mapping = mapping
	return b, nil
}

// Push appends value, growing the block first if it is full.
// On allocation failure the buffer is left in its prior valid state.
func (b *OffHeap[T]) Push(value T) error {
	if b.closed {
		return ErrClosed
	}
	if b.length == len(b.items) {
		if err := b.grow(); err != nil {
			return err
		}
	}
	b.items[b.length] = value
	b.length++
	return nil
}

// Pop removes and returns the last element. An empty or closed buffer
// returns (zero, false).
func (b *OffHeap[T]) Pop() (T, bool) {
	var zero T
	if b.closed || b.length == 0 {
		return zero, false
	}
	b.length--
	v := b.items[b.length]
	b.items[b.length] = zero
	return v, true
}

// Get returns the element at index, or (zero, false) if index is out of
// range or the buffer is closed.
func (b *OffHeap[T]) Get(index int) (T, bool) {
	if b.closed || index < 0 || index >= b.length {
		var zero T
		return zero, false
	}
	return b.items[index], true
}

// Len returns the number of occupied slots.
func (b *OffHeap[T]) Len() int { return b.length }

// Cap returns the number of allocated slots.
func (b *OffHeap[T]) Cap() int { return len(b.items) }

// IsEmpty returns true if the buffer holds no elements.
func (b *OffHeap[T]) IsEmpty() bool { return b.length == 0 }

// Stats returns a snapshot of the growth counters.
func (b *OffHeap[T]) Stats() Stats { return b.stats }

// Close releases the block. A zero-capacity buffer releases nothing.
// Close is idempotent; every operation after Close reports emptiness or
// ErrClosed.
func (b *OffHeap[T]) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.items = nil
	b.length = 0
	if b.mapping != nil {
		m := b.mapping
		b.mapping = nil
		b.logger.Debug("off-heap block released", "bytes", m.Size())
		return m.Close()
	}
	return nil
}

func (b *OffHeap[T]) grow() error {
	newCap := nextCapacity(len(b.items))
	if newCap < 0 {
		return ErrAllocationFailed
	}
	items, mapping, err := allocBlock[T](newCap)
	if err != nil {
		return err
	}
	copy(items, b.items[:b.length])
	old := b.mapping
	b.items = items
	b.mapping = mapping
	b.stats.Grows++
	b.stats.ElementsCopied += uint64(b.length)
	b.logger.Debug("off-heap block grown", "capacity", newCap, "copied", b.length)
	if old != nil {
		return old.Close()
	}
	return nil
}

// allocBlock allocates a zeroed block of capacity elements, via anonymous
// mapping for page-sized blocks and aligned heap allocation below that.
func allocBlock[T Scalar](capacity int) ([]T, *mmap.Mapping, error) {
	elemSize := int(unsafe.Sizeof(*new(T)))
	if capacity > math.MaxInt/elemSize {
		return nil, nil, ErrAllocationFailed
	}
	byteSize := capacity * elemSize

	if byteSize < mmapThreshold {
		return mem.AllocSlice[T](capacity), nil, nil
	}

	m, err := mmap.MapAnon(byteSize)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	data := m.Bytes()
	items := unsafe.Slice((*T)(unsafe.Pointer(&data[0])), capacity) //nolint:gosec // unsafe is required for the raw block view
	return items, m, nil
}
