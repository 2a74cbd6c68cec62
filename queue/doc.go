// Package queue implements a lock-free multi-producer/multi-consumer FIFO.
//
// # Algorithm
//
// The queue is the Michael-Scott linked queue: a permanent sentinel node
// avoids null-state special cases at the head, enqueuers link at the tail
// with a compare-and-swap and help stalled peers by swinging the tail
// pointer forward, and dequeuers advance the head with a compare-and-swap.
// head == tail denotes logical emptiness; the sentinel never holds a
// payload.
//
// # Memory Model
//
// All shared pointers are atomic.Pointer values. Under the Go memory model
// an atomic load that observes an atomic store also observes everything
// that happened before the store, so a consumer that sees a link sees the
// fully-initialized node behind it.
//
// # Progress
//
// Operations never block on a lock and never suspend cooperatively; they
// retry until the structural CAS succeeds. This is lock-free, not
// wait-free: some goroutine always completes a step, but an individual
// goroutine may retry indefinitely under contention. Retry loops yield to
// the scheduler after a bounded number of failed attempts.
//
// # Reclamation
//
// A dequeued node is simply unlinked; the garbage collector reclaims it
// once no goroutine can still reference it. This closes the use-after-free
// window that manual immediate reclamation would open.
package queue
