package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of all returned blocks (64 bytes, one
// cache line on amd64).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	// We need enough space to shift the start pointer up to Alignment-1 bytes
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	// Calculate the offset to the first aligned byte
	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Return the slice starting at the aligned offset
	return buf[offset : offset+uintptr(size)]
}

// AllocSlice allocates a slice of n elements of T backed by a 64-byte
// aligned byte block. T must not contain pointers: the backing block is
// typed as bytes and its contents are invisible to the garbage collector.
func AllocSlice[T any](n int) []T {
	if n <= 0 {
		return nil
	}

	size := n * int(unsafe.Sizeof(*new(T)))
	byteSlice := AllocAligned(size)

	// This is safe because AllocAligned guarantees 64-byte alignment,
	// which satisfies the alignment of every scalar element type.
	ptr := unsafe.Pointer(&byteSlice[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)    //nolint:gosec // unsafe is required for memory alignment
}
