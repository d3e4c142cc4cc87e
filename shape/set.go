package shape

import (
	"slices"

	"github.com/relab/biotrees/phylo"
)

func compare(a, b *phylo.Shape) int {
	return a.CompareShape(b)
}

func equal(a, b *phylo.Shape) bool {
	return a.CompareShape(b) == 0
}

// sortedSet sorts shapes in canonical order and removes isomorphic
// duplicates, reusing the backing array.
func sortedSet(shapes []*phylo.Shape) []*phylo.Shape {
	slices.SortFunc(shapes, compare)
	return slices.CompactFunc(shapes, equal)
}

// union merges two sorted sets into a new sorted set.
func union(a, b []*phylo.Shape) []*phylo.Shape {
	out := make([]*phylo.Shape, 0, max(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := compare(a[i], b[j]); {
		case c < 0:
			out = append(out, a[i])
			i++
		case c > 0:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
