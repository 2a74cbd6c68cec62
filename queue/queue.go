package queue

import (
	"runtime"
	"sync/atomic"
)

// spinLimit is the number of failed attempts before a retry loop starts
// yielding to the scheduler.
const spinLimit = 4

// node is a link in the queue chain. Ownership moves from
// enqueuer-exclusive to queue-exclusive to dequeuer-exclusive, each
// transfer gated by a successful CAS. The sentinel node carries no value.
type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// Stats tracks queue operation counts. The counters are updated with
// relaxed atomics and are eventually consistent, not a precise snapshot.
type Stats struct {
	Enqueues uint64 // Successful enqueue operations
	Dequeues uint64 // Successful dequeue operations
	Retries  uint64 // CAS retries across all operations
}

type atomicStats struct {
	enqueues atomic.Uint64
	dequeues atomic.Uint64
	retries  atomic.Uint64
}

// Queue is a lock-free MPMC FIFO. The zero value is not usable; create
// queues with New.
type Queue[T any] struct {
	head   atomic.Pointer[node[T]] // Oldest node; always the sentinel
	tail   atomic.Pointer[node[T]] // Last or second-to-last node
	length atomic.Int64            // Approximate element count
	stats  atomicStats
}

// New creates an empty queue holding only the sentinel node.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	sentinel := &node[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Enqueue appends value to the tail. It is safe to call from any number of
// goroutines concurrently with other Enqueue and Dequeue calls.
func (q *Queue[T]) Enqueue(value T) {
	n := &node[T]{value: value}

	for attempt := 0; ; attempt++ {
		tail := q.tail.Load()
		next := tail.next.Load()

		if tail != q.tail.Load() {
			// Stale snapshot; retry.
			q.stats.retries.Add(1)
			backoff(attempt)
			continue
		}

		if next == nil {
			if tail.next.CompareAndSwap(nil, n) {
				// Linked. The tail swing is best-effort: a helper may
				// already have advanced it.
				q.tail.CompareAndSwap(tail, n)
				break
			}
		} else {
			// Another enqueuer linked but has not advanced the tail yet;
			// help it forward before retrying.
			q.tail.CompareAndSwap(tail, next)
		}

		q.stats.retries.Add(1)
		backoff(attempt)
	}

	// The counter is not atomic with respect to the link above; Len is
	// documented as approximate.
	q.length.Add(1)
	q.stats.enqueues.Add(1)
}

// Dequeue removes and returns the oldest value. An empty queue returns
// (zero, false); this is normal control flow, not an error.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T

	for attempt := 0; ; attempt++ {
		head := q.head.Load()
		tail := q.tail.Load()
		next := head.next.Load()

		if head != q.head.Load() {
			q.stats.retries.Add(1)
			backoff(attempt)
			continue
		}

		if head == tail {
			if next == nil {
				// Logically empty.
				return zero, false
			}
			// An enqueue is mid-flight: linked but tail not yet advanced.
			// Help it forward and retry.
			q.tail.CompareAndSwap(tail, next)
		} else {
			// The sentinel never holds a payload; read it from the
			// successor before attempting to advance the head.
			value := next.value
			if q.head.CompareAndSwap(head, next) {
				// The old head is now exclusively ours and unreachable
				// from the queue; the garbage collector reclaims it once
				// concurrent readers drop their references. next is the
				// new sentinel and keeps its payload slot until the
				// following dequeue moves past it.
				q.length.Add(-1)
				q.stats.dequeues.Add(1)
				return value, true
			}
		}

		q.stats.retries.Add(1)
		backoff(attempt)
	}
}

// Len returns the approximate number of elements. The counter is updated
// separately from the structural CAS, so it is eventually consistent and
// not guaranteed exact under concurrent mutation.
func (q *Queue[T]) Len() int {
	n := q.length.Load()
	if n < 0 {
		// A dequeuer can decrement before a racing enqueuer increments.
		return 0
	}
	return int(n)
}

// IsEmpty reports logical emptiness from the structural state
// (head == tail with no link in flight), independent of the approximate
// counter.
func (q *Queue[T]) IsEmpty() bool {
	head := q.head.Load()
	return head == q.tail.Load() && head.next.Load() == nil
}

// Stats returns a snapshot of the operation counters.
func (q *Queue[T]) Stats() Stats {
	return Stats{
		Enqueues: q.stats.enqueues.Load(),
		Dequeues: q.stats.dequeues.Load(),
		Retries:  q.stats.retries.Load(),
	}
}

// backoff yields to the scheduler once an operation has failed more than
// spinLimit attempts, bounding busy-wait under contention.
func backoff(attempt int) {
	if attempt >= spinLimit {
		runtime.Gosched()
	}
}
