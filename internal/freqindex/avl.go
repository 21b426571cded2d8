// Package freqindex counts occurrences of distinct keys in an AVL tree.
//
// Each column gets its own Tree; nothing is shared between trees. Insertion
// and traversal are iterative so very high cardinality columns do not grow
// the call stack.
package freqindex

import "cmp"

type node[K cmp.Ordered] struct {
	key         K
	count       int
	height      int
	left, right *node[K]
}

// Tree is an AVL tree keyed by K where every node carries an occurrence count.
// The zero value is an empty tree ready for use.
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	size  int
	total int
	path  []**node[K]
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] { return &Tree[K]{} }

func height[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[K]) fix() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func (n *node[K]) balance() int {
	return height(n.left) - height(n.right)
}

// rotateRight lifts y.left above y and returns the new subtree root.
func rotateRight[K cmp.Ordered](y *node[K]) *node[K] {
	x := y.left
	y.left = x.right
	x.right = y
	y.fix()
	x.fix()
	return x
}

// rotateLeft lifts x.right above x and returns the new subtree root.
func rotateLeft[K cmp.Ordered](x *node[K]) *node[K] {
	y := x.right
	x.right = y.left
	y.left = x
	x.fix()
	y.fix()
	return y
}

// Insert records one occurrence of key. A key seen before only has its count
// incremented and the tree shape is left untouched.
func (t *Tree[K]) Insert(key K) {
	t.total++
	t.path = t.path[:0]
	link := &t.root
	for *link != nil {
		n := *link
		c := cmp.Compare(key, n.key)
		if c == 0 {
			n.count++
			return
		}
		t.path = append(t.path, link)
		if c < 0 {
			link = &n.left
		} else {
			link = &n.right
		}
	}
	*link = &node[K]{key: key, count: 1, height: 1}
	t.size++

	// Retrace towards the root. Once a subtree keeps its old height the
	// ancestors above it cannot have changed either.
	for i := len(t.path) - 1; i >= 0; i-- {
		link := t.path[i]
		n := *link
		old := n.height
		n.fix()
		switch b := n.balance(); {
		case b > 1:
			if cmp.Compare(key, n.left.key) > 0 {
				n.left = rotateLeft(n.left)
			}
			*link = rotateRight(n)
		case b < -1:
			if cmp.Compare(key, n.right.key) < 0 {
				n.right = rotateRight(n.right)
			}
			*link = rotateLeft(n)
		}
		if (*link).height == old {
			break
		}
	}
	clear(t.path)
}

// Count returns the occurrence count for key, or 0.
func (t *Tree[K]) Count(key K) int {
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.count
		}
	}
	return 0
}

// Len returns the number of distinct keys.
func (t *Tree[K]) Len() int { return t.size }

// Total returns the number of Insert calls.
func (t *Tree[K]) Total() int { return t.total }

// Height returns the height of the tree; an empty tree has height 0.
func (t *Tree[K]) Height() int { return height(t.root) }

// Walk visits keys in ascending order until fn returns false.
func (t *Tree[K]) Walk(fn func(key K, count int) bool) {
	var stack []*node[K]
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key, n.count) {
			return
		}
		n = n.right
	}
}

// Stats returns the most frequent key with its count and the number of
// distinct keys, counted in a single in-order pass. Ties keep the smallest
// key. ok is false when the tree is empty.
func (t *Tree[K]) Stats() (mode K, count, distinct int, ok bool) {
	t.Walk(func(key K, c int) bool {
		distinct++
		if c > count {
			mode, count = key, c
		}
		return true
	})
	return mode, count, distinct, distinct > 0
}

// Reset drops every node.
func (t *Tree[K]) Reset() {
	t.root = nil
	t.size = 0
	t.total = 0
	t.path = nil
}
