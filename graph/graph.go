package graph

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/dsgo/buffer"
	"github.com/hupe1980/dsgo/pqueue"
	"github.com/hupe1980/dsgo/queue"
)

// Graph is a directed graph over comparable node values.
type Graph[T comparable] struct {
	nodes []T
	edges [][]uint32
	index map[T]uint32
}

// New creates an empty graph.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{
		index: make(map[T]uint32),
	}
}

// AddNode interns value and returns its dense index. Adding an existing
// value returns the existing index.
func (g *Graph[T]) AddNode(value T) uint32 {
	if idx, ok := g.index[value]; ok {
		return idx
	}
	idx := uint32(len(g.nodes))
	g.nodes = append(g.nodes, value)
	g.edges = append(g.edges, nil)
	g.index[value] = idx
	return idx
}

// AddEdge adds a directed edge, interning both endpoints as needed.
func (g *Graph[T]) AddEdge(from, to T) {
	fromIdx := g.AddNode(from)
	toIdx := g.AddNode(to)
	g.edges[fromIdx] = append(g.edges[fromIdx], toIdx)
}

// Neighbors returns the direct successors of value, or (nil, false) if the
// value is not in the graph.
func (g *Graph[T]) Neighbors(value T) ([]T, bool) {
	idx, ok := g.index[value]
	if !ok {
		return nil, false
	}
	out := make([]T, len(g.edges[idx]))
	for i, n := range g.edges[idx] {
		out[i] = g.nodes[n]
	}
	return out, true
}

// NodeCount returns the number of distinct nodes.
func (g *Graph[T]) NodeCount() int { return len(g.nodes) }

// BFS returns the nodes reachable from start in breadth-first order.
// An unknown start returns nil.
func (g *Graph[T]) BFS(start T) []T {
	startIdx, ok := g.index[start]
	if !ok {
		return nil
	}

	visited := roaring.New()
	frontier := queue.New[uint32]()
	result := make([]T, 0, len(g.nodes))

	frontier.Enqueue(startIdx)
	visited.Add(startIdx)

	for {
		current, ok := frontier.Dequeue()
		if !ok {
			break
		}
		result = append(result, g.nodes[current])

		for _, neighbor := range g.edges[current] {
			if visited.CheckedAdd(neighbor) {
				frontier.Enqueue(neighbor)
			}
		}
	}
	return result
}

// DFS returns the nodes reachable from start in depth-first preorder,
// visiting neighbors in insertion order. An unknown start returns nil.
func (g *Graph[T]) DFS(start T) []T {
	startIdx, ok := g.index[start]
	if !ok {
		return nil
	}

	visited := roaring.New()
	stack := buffer.New[uint32]()
	result := make([]T, 0, len(g.nodes))

	_ = stack.Push(startIdx)

	for {
		current, ok := stack.Pop()
		if !ok {
			break
		}
		if !visited.CheckedAdd(current) {
			continue
		}
		result = append(result, g.nodes[current])

		// Push neighbors in reverse so the first-inserted edge is
		// explored first, matching recursive preorder.
		neighbors := g.edges[current]
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !visited.Contains(neighbors[i]) {
				_ = stack.Push(neighbors[i])
			}
		}
	}
	return result
}

// ShortestPath returns a minimum-hop path from from to to, inclusive of
// both endpoints, or (nil, false) if either endpoint is unknown or no
// path exists.
func (g *Graph[T]) ShortestPath(from, to T) ([]T, bool) {
	fromIdx, ok := g.index[from]
	if !ok {
		return nil, false
	}
	toIdx, ok := g.index[to]
	if !ok {
		return nil, false
	}

	const unreached = -1
	dist := make([]int, len(g.nodes))
	prev := make([]int64, len(g.nodes))
	for i := range dist {
		dist[i] = unreached
		prev[i] = -1
	}
	dist[fromIdx] = 0

	settled := roaring.New()
	pq := pqueue.NewMin[uint32](len(g.nodes), func(n uint32) float64 {
		return float64(dist[n])
	})
	pq.Push(fromIdx)

	for {
		current, ok := pq.Pop()
		if !ok {
			break
		}
		if !settled.CheckedAdd(current) {
			// Stale heap entry from an earlier, longer distance.
			continue
		}
		if current == toIdx {
			break
		}

		for _, neighbor := range g.edges[current] {
			next := dist[current] + 1
			if dist[neighbor] == unreached || next < dist[neighbor] {
				dist[neighbor] = next
				prev[neighbor] = int64(current)
				pq.Push(neighbor)
			}
		}
	}

	if dist[toIdx] == unreached {
		return nil, false
	}

	// Walk predecessors target-to-source, then pop the LIFO buffer to
	// emit the path source-to-target.
	reverse := buffer.New[uint32]()
	for at := int64(toIdx); at != -1; at = prev[at] {
		_ = reverse.Push(uint32(at))
	}
	path := make([]T, 0, reverse.Len())
	for {
		idx, ok := reverse.Pop()
		if !ok {
			break
		}
		path = append(path, g.nodes[idx])
	}
	return path, true
}
