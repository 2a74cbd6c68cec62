// Package pqueue implements a generic priority queue as a value-based
// binary heap. Entries are stored by value for cache locality; the
// priority of an item is computed once, on push.
//
// The queue is not safe for concurrent use.
package pqueue

// entry pairs an item with its cached priority.
type entry[T any] struct {
	item     T
	priority float64
}

// PriorityQueue holds items ordered by a priority function.
type PriorityQueue[T any] struct {
	maxHeap  bool // true = highest priority first, false = lowest first
	priority func(T) float64
	entries  []entry[T]
}

// NewMin creates a priority queue that pops the lowest-priority item first.
func NewMin[T any](capacity int, priority func(T) float64) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		priority: priority,
		entries:  make([]entry[T], 0, capacity),
	}
}

// NewMax creates a priority queue that pops the highest-priority item first.
func NewMax[T any](capacity int, priority func(T) float64) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		maxHeap:  true,
		priority: priority,
		entries:  make([]entry[T], 0, capacity),
	}
}

// Push inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue[T]) Push(item T) {
	pq.entries = append(pq.entries, entry[T]{item: item, priority: pq.priority(item)})
	pq.siftUp(len(pq.entries) - 1)
}

// Pop removes and returns the top item while maintaining the heap
// invariant. An empty queue returns (zero, false).
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	n := len(pq.entries)
	if n == 0 {
		var zero T
		return zero, false
	}
	root := pq.entries[0]
	last := pq.entries[n-1]
	pq.entries[n-1] = entry[T]{} // Zero out for GC
	pq.entries = pq.entries[:n-1]
	if n-1 > 0 {
		pq.entries[0] = last
		pq.siftDown(0)
	}
	return root.item, true
}

// Top returns the top item without removing it.
func (pq *PriorityQueue[T]) Top() (T, bool) {
	if len(pq.entries) == 0 {
		var zero T
		return zero, false
	}
	return pq.entries[0].item, true
}

// Len returns the number of items in the priority queue.
func (pq *PriorityQueue[T]) Len() int { return len(pq.entries) }

// IsEmpty returns true if the priority queue holds no items.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.entries) == 0 }

// Reset clears the priority queue for reuse, keeping the backing storage.
func (pq *PriorityQueue[T]) Reset() {
	clear(pq.entries)
	pq.entries = pq.entries[:0]
}

func (pq *PriorityQueue[T]) less(i, j int) bool {
	if pq.maxHeap {
		return pq.entries[i].priority > pq.entries[j].priority
	}
	return pq.entries[i].priority < pq.entries[j].priority
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.entries[i], pq.entries[p] = pq.entries[p], pq.entries[i]
		i = p
	}
}

func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.entries)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.entries[i], pq.entries[best] = pq.entries[best], pq.entries[i]
		i = best
	}
}
