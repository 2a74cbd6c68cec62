// Package buffer implements an owning, contiguous growable array with
// explicit capacity management.
//
// # Growth Contract
//
// A buffer starts with zero capacity and allocates nothing. The first growth
// sets capacity to 4; every later growth doubles it. Growth allocates a new
// block, copies the occupied slots in order, releases the old block and only
// then writes the new element. Capacity never shrinks implicitly.
//
// # Variants
//
//   - Buffer[T] stores elements in a garbage-collected block and works for
//     any element type.
//   - OffHeap[T] stores scalar elements in a raw block outside the garbage
//     collector (anonymous memory mapping for page-sized blocks, aligned
//     heap allocation below that). The block must be released explicitly
//     with Close.
//
// # Concurrency
//
// Neither variant is safe for concurrent mutation. Growth is a multi-step
// operation that must appear atomic to observers; callers sharing a buffer
// across goroutines must hold an exclusive lock around every operation.
package buffer
