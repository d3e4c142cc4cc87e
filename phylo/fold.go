package phylo

import (
	"fmt"
	"strings"
)

// Fold reduces t bottom-up. Every leaf yields leafValue. Every internal
// node yields combine(node, results), where results holds the folded value
// of each child, left to right. combine runs exactly once per internal node.
func Fold[T, R any](t *Tree[T], leafValue R, combine func(node *Tree[T], results []R) R) R {
	if t.IsLeaf() {
		return leafValue
	}
	results := make([]R, len(t.children))
	for i, c := range t.children {
		results[i] = Fold(c, leafValue, combine)
	}
	return combine(t, results)
}

// BinaryFold is Fold for trees where every internal node has exactly two
// children; combine receives the left and right results directly.
// It panics with an error wrapping ErrNotBinary on any other node.
func BinaryFold[T, R any](t *Tree[T], leafValue R, combine func(node *Tree[T], left, right R) R) R {
	if t.IsLeaf() {
		return leafValue
	}
	if len(t.children) != 2 {
		panic(fmt.Errorf("%w: node %v has %d children", ErrNotBinary, t, len(t.children)))
	}
	left := BinaryFold(t.children[0], leafValue, combine)
	right := BinaryFold(t.children[1], leafValue, combine)
	return combine(t, left, right)
}

// Render serializes t depth-first. Each leaf is turned into text by
// leafText; each internal node passes the rendered children, in order, to
// combine.
func Render[T any](t *Tree[T], leafText func(label T) string, combine func(children []string) string) string {
	if t.IsLeaf() {
		return leafText(t.label)
	}
	parts := make([]string, len(t.children))
	for i, c := range t.children {
		parts[i] = Render(c, leafText, combine)
	}
	return combine(parts)
}

// JoinChildren is the default combine function of Render: comma-separated
// and parenthesized.
func JoinChildren(children []string) string {
	return "(" + strings.Join(children, ",") + ")"
}
