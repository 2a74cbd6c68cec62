// Package avltree implements a self-balancing (AVL) binary search tree.
//
// Every node caches the height of its subtree; after each insert or remove
// the heights on the search path are recomputed bottom-up and rotations
// restore the AVL invariant, keeping every balance factor (left height
// minus right height) in {-1, 0, 1}. This bounds the tree height, and thus
// insert, remove and lookup, at O(log n).
//
// Each node exclusively owns its children; rotations and successor
// promotion transfer subtrees, never copy them.
//
// The tree is not safe for concurrent mutation: rebalancing is a
// multi-step restructuring that must appear atomic to observers. Callers
// sharing a tree across goroutines must provide external synchronization.
package avltree
