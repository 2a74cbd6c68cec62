// Package dsgo provides manually-managed core data structures for Go.
//
// The library centers on three independent components, each usable
// standalone:
//
//   - buffer: an owning, contiguous growable array with explicit capacity
//     management (amortized O(1) append via doubling), including an
//     off-heap variant for scalar element types backed by anonymous
//     memory mappings.
//   - queue: a lock-free multi-producer/multi-consumer FIFO using the
//     Michael-Scott linked-list algorithm with a permanent sentinel node.
//   - avltree: a self-balancing (AVL) binary search tree with O(log n)
//     insert, remove and lookup via height-tracked rotations.
//
// # Quick Start
//
//	b := buffer.New[int]()
//	for i := 0; i < 10; i++ {
//	    _ = b.Push(i)
//	}
//	v, ok := b.Pop() // 9, true
//
//	q := queue.New[string]()
//	q.Enqueue("a")
//	v, ok := q.Dequeue() // "a", true
//
//	t := avltree.New[int]()
//	t.Insert(50)
//	for v := range t.InorderTraversal() {
//	    fmt.Println(v)
//	}
//
// # Concurrency Model
//
// Only queue.Queue is safe for unsynchronized concurrent use. The buffer
// and tree rely on multi-step invariant restoration (block growth,
// rotations) that must appear atomic to observers; callers that share them
// across goroutines must provide external synchronization. This is a
// contract, not an oversight.
//
// # Empty Results
//
// Pop, Dequeue and Get report absent data as a (zero, false) second return
// value. Treat these as normal control flow, never as errors. The only
// error the core structures surface is allocation failure.
//
// # Peripheral Packages
//
// The graph, pqueue and sortutil packages consume the core structures only
// through their public operations and exist mainly as realistic callers:
// graph traversals drive the queue and buffer, shortest-path search drives
// the priority queue.
package dsgo
