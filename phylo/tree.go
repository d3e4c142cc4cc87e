// Package phylo implements rooted, unordered trees with labeled leaves.
//
// A Tree is either a leaf carrying a label or an internal node with an
// ordered list of children. The order of children carries no meaning for
// the phylogeny itself; trees built by NewNode, Canonical or the shape
// generator keep children sorted by a canonical order, which reduces
// isomorphism testing to a positional comparison.
//
// Trees are immutable once built and share their subtrees freely.
package phylo

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotBinary is wrapped by the panic value of binary-only operations
	// applied to a node that does not have exactly two children.
	ErrNotBinary = errors.New("phylo: node is not binary")

	// ErrEmptyNode is wrapped by the panic value of Node when called
	// without children.
	ErrEmptyNode = errors.New("phylo: internal node without children")
)

// Tree is a rooted tree whose leaves carry labels of type T.
// The zero value is not a valid tree; use Leaf or Node.
type Tree[T any] struct {
	label    T
	children []*Tree[T]
}

// Leaf returns a leaf with the given label.
func Leaf[T any](label T) *Tree[T] {
	return &Tree[T]{label: label}
}

// Node returns an internal node with the given children, in the given
// order. The children are not sorted; use NewNode or Canonical for that.
// Node panics if no children are given.
func Node[T any](children ...*Tree[T]) *Tree[T] {
	if len(children) == 0 {
		panic(ErrEmptyNode)
	}
	return &Tree[T]{children: children}
}

// IsLeaf reports whether t is a leaf.
func (t *Tree[T]) IsLeaf() bool {
	return len(t.children) == 0
}

// Label returns the label of a leaf, or the zero value for internal nodes.
func (t *Tree[T]) Label() T {
	return t.label
}

// Children returns the children of t; nil for a leaf.
// The returned slice is shared and must not be modified.
func (t *Tree[T]) Children() []*Tree[T] {
	return t.children
}

// Arity returns the number of children of t.
func (t *Tree[T]) Arity() int {
	return len(t.children)
}

// Kappa returns the number of leaves in t.
func (t *Tree[T]) Kappa() int {
	if t.IsLeaf() {
		return 1
	}
	k := 0
	for _, c := range t.children {
		k += c.Kappa()
	}
	return k
}

// LeafCount is an alias of Kappa.
func (t *Tree[T]) LeafCount() int {
	return t.Kappa()
}

// Depth returns the number of edges on the longest path from t to a leaf.
// A leaf has depth 0.
func (t *Tree[T]) Depth() int {
	if t.IsLeaf() {
		return 0
	}
	d := 0
	for _, c := range t.children {
		d = max(d, c.Depth())
	}
	return d + 1
}

// Leaves returns the leaf labels of t in depth-first, left-to-right order.
func (t *Tree[T]) Leaves() []T {
	return t.appendLeaves(nil)
}

func (t *Tree[T]) appendLeaves(dst []T) []T {
	if t.IsLeaf() {
		return append(dst, t.label)
	}
	for _, c := range t.children {
		dst = c.appendLeaves(dst)
	}
	return dst
}

// LeafDepths returns the depth of every leaf of t, in the same order as Leaves.
func (t *Tree[T]) LeafDepths() []int {
	return t.appendLeafDepths(nil, 0)
}

func (t *Tree[T]) appendLeafDepths(dst []int, depth int) []int {
	if t.IsLeaf() {
		return append(dst, depth)
	}
	for _, c := range t.children {
		dst = c.appendLeafDepths(dst, depth+1)
	}
	return dst
}

// String renders t in parenthesized notation, leaves formatted with %v.
func (t *Tree[T]) String() string {
	return Render(t, func(label T) string { return fmt.Sprint(label) }, JoinChildren)
}

// Canonical returns a copy of t where the children of every internal node
// are sorted by cmp. Subtrees that are already sorted are shared with t.
func Canonical[T any](t *Tree[T], cmp func(a, b *Tree[T]) int) *Tree[T] {
	if t.IsLeaf() {
		return t
	}
	changed := false
	children := make([]*Tree[T], len(t.children))
	for i, c := range t.children {
		children[i] = Canonical(c, cmp)
		changed = changed || children[i] != c
	}
	if !slices.IsSortedFunc(children, cmp) {
		slices.SortStableFunc(children, cmp)
		changed = true
	}
	if !changed {
		return t
	}
	return &Tree[T]{children: children}
}

// NewNode returns an internal node whose children are sorted by cmp.
// Only the top level is sorted; the children themselves are used as given.
func NewNode[T any](cmp func(a, b *Tree[T]) int, children ...*Tree[T]) *Tree[T] {
	sorted := slices.Clone(children)
	slices.SortStableFunc(sorted, cmp)
	return Node(sorted...)
}
