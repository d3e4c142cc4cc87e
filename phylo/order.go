package phylo

import "cmp"

// CompareShape compares the shapes of t and other, ignoring leaf labels.
// A leaf sorts before any internal node. Internal nodes are ordered first
// by arity and then lexicographically by their children. The result is
// -1, 0 or +1.
func (t *Tree[T]) CompareShape(other *Tree[T]) int {
	return compareWith(t, other, func(T, T) int { return 0 })
}

// Compare orders trees like CompareShape, except that two leaves are
// ordered by their labels.
func Compare[T cmp.Ordered](a, b *Tree[T]) int {
	return compareWith(a, b, cmp.Compare[T])
}

// CompareFunc returns the canonical tree order where leaves are ordered by
// labelCmp.
func CompareFunc[T any](labelCmp func(a, b T) int) func(a, b *Tree[T]) int {
	return func(a, b *Tree[T]) int {
		return compareWith(a, b, labelCmp)
	}
}

func compareWith[T any](a, b *Tree[T], labelCmp func(a, b T) int) int {
	if a == b {
		return 0
	}
	switch al, bl := a.IsLeaf(), b.IsLeaf(); {
	case al && bl:
		return labelCmp(a.label, b.label)
	case al:
		return -1
	case bl:
		return 1
	}
	if c := cmp.Compare(len(a.children), len(b.children)); c != 0 {
		return c
	}
	for i := range a.children {
		if c := compareWith(a.children[i], b.children[i], labelCmp); c != 0 {
			return c
		}
	}
	return 0
}

// Isomorphic reports whether t and other have the same shape, comparing
// children position by position. This is a full isomorphism test only if
// both trees are in canonical order.
func (t *Tree[T]) Isomorphic(other *Tree[T]) bool {
	if t == other {
		return true
	}
	if t.IsLeaf() || other.IsLeaf() {
		return t.IsLeaf() && other.IsLeaf()
	}
	if len(t.children) != len(other.children) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Isomorphic(other.children[i]) {
			return false
		}
	}
	return true
}

// IsSymmetric reports whether all children of t are isomorphic to its
// first child. Leaves are symmetric.
func (t *Tree[T]) IsSymmetric() bool {
	if t.IsLeaf() {
		return true
	}
	first := t.children[0]
	for _, c := range t.children[1:] {
		if !c.Isomorphic(first) {
			return false
		}
	}
	return true
}
