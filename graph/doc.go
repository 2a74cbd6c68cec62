// Package graph implements a directed graph with traversal and
// shortest-path search.
//
// Node values are interned into dense uint32 indices; all hot-path
// structures (adjacency lists, visited bitmaps, heaps) work on the dense
// indices, the public API works on values.
//
// The traversals are deliberately written against the library's own core
// structures through their public operations only: BFS drives the
// lock-free FIFO, DFS drives the growable buffer as an explicit stack, and
// shortest-path search drives the priority queue. Visited and settled sets
// are Roaring bitmaps.
//
// The graph is not safe for concurrent mutation.
package graph
