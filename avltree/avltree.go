package avltree

import (
	"cmp"
	"iter"
)

// node is a subtree root. Its children are exclusively owned by it;
// there are no parent or shared pointers.
type node[T cmp.Ordered] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int // 1 + max(child heights); an absent child counts 0
}

// Tree is an AVL-balanced binary search tree over totally-ordered values.
// Duplicates are rejected. The zero value is not usable; create trees
// with New.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// New creates an empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Insert adds value to the tree. It returns false and leaves the tree
// unchanged if the value is already present.
func (t *Tree[T]) Insert(value T) bool {
	root, inserted := insert(t.root, value)
	t.root = root
	if inserted {
		t.size++
	}
	return inserted
}

// Remove deletes value from the tree. It returns false if the value is
// not present.
func (t *Tree[T]) Remove(value T) bool {
	root, removed := remove(t.root, value)
	t.root = root
	if removed {
		t.size--
	}
	return removed
}

// Contains reports whether value is present. It never mutates the tree.
func (t *Tree[T]) Contains(value T) bool {
	n := t.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest value in the tree, or (zero, false) if the
// tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value in the tree, or (zero, false) if the
// tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int { return t.size }

// IsEmpty returns true if the tree holds no values.
func (t *Tree[T]) IsEmpty() bool { return t.size == 0 }

// Height returns the cached height of the tree: 0 for an empty tree,
// 1 for a single node.
func (t *Tree[T]) Height() int { return height(t.root) }

// InorderTraversal returns a restartable iterator over the values in
// strictly ascending order. The tree must not be mutated while iterating.
func (t *Tree[T]) InorderTraversal() iter.Seq[T] {
	return func(yield func(T) bool) {
		inorder(t.root, yield)
	}
}

func inorder[T cmp.Ordered](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	if !inorder(n.left, yield) {
		return false
	}
	if !yield(n.value) {
		return false
	}
	return inorder(n.right, yield)
}

func insert[T cmp.Ordered](n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return &node[T]{value: value, height: 1}, true
	}

	var inserted bool
	switch {
	case value < n.value:
		n.left, inserted = insert(n.left, value)
	case value > n.value:
		n.right, inserted = insert(n.right, value)
	default:
		return n, false
	}

	if !inserted {
		return n, false
	}
	n.updateHeight()
	return rebalance(n), true
}

func remove[T cmp.Ordered](n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case value < n.value:
		n.left, removed = remove(n.left, value)
	case value > n.value:
		n.right, removed = remove(n.right, value)
	default:
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// Two children: promote the in-order successor's value, then
			// remove that value from the right subtree.
			successor := n.right
			for successor.left != nil {
				successor = successor.left
			}
			n.value = successor.value
			n.right, _ = remove(n.right, successor.value)
			n.updateHeight()
			return rebalance(n), true
		}
	}

	if !removed {
		return n, false
	}
	n.updateHeight()
	return rebalance(n), true
}

// rebalance restores the AVL invariant at n after a child subtree changed.
// It covers the four cases: left-left, left-right, right-right, right-left.
func rebalance[T cmp.Ordered](n *node[T]) *node[T] {
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left) // left-right
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right) // right-left
		}
		return rotateLeft(n)
	default:
		return n
	}
}

// rotateRight re-parents n.left above n. Only the two nodes whose
// children changed get their heights recomputed; BST ordering is
// preserved by construction.
func rotateRight[T cmp.Ordered](n *node[T]) *node[T] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[T cmp.Ordered](n *node[T]) *node[T] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

func (n *node[T]) updateHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func height[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor[T cmp.Ordered](n *node[T]) int {
	return height(n.left) - height(n.right)
}
