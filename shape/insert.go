package shape

import "github.com/relab/biotrees/phylo"

// InsertSorted returns a new slice with t inserted into the sorted slice ts
// before the first element that is not smaller than t.
func InsertSorted(ts []*phylo.Shape, t *phylo.Shape) []*phylo.Shape {
	i := 0
	for i < len(ts) && ts[i].CompareShape(t) < 0 {
		i++
	}
	out := make([]*phylo.Shape, 0, len(ts)+1)
	out = append(out, ts[:i]...)
	out = append(out, t)
	return append(out, ts[i:]...)
}

// ReplaceAt returns a copy of the sorted slice ts where the element at
// index i is replaced by t and moved to keep the slice sorted. Only the
// elements between the old and the new position of t are shifted.
func ReplaceAt(ts []*phylo.Shape, i int, t *phylo.Shape) []*phylo.Shape {
	out := make([]*phylo.Shape, len(ts))
	copy(out, ts)
	j := i
	for j > 0 && out[j-1].CompareShape(t) > 0 {
		out[j] = out[j-1]
		j--
	}
	for j < len(out)-1 && out[j+1].CompareShape(t) < 0 {
		out[j] = out[j+1]
		j++
	}
	out[j] = t
	return out
}

// AddLeafToEdge returns the shape obtained by grafting a new leaf on the
// edge above the root of t.
func AddLeafToEdge(t *phylo.Shape) *phylo.Shape {
	// a leaf sorts before everything, so this is canonical when t is
	return phylo.Node(phylo.ShapeLeaf(), t)
}

// AddLeafToNode returns the shape obtained by adding a new leaf as an extra
// child of the root of t. For a leaf this is the same as AddLeafToEdge.
func AddLeafToNode(t *phylo.Shape) *phylo.Shape {
	if t.IsLeaf() {
		return AddLeafToEdge(t)
	}
	children := make([]*phylo.Shape, 0, t.Arity()+1)
	children = append(children, phylo.ShapeLeaf())
	children = append(children, t.Children()...)
	return phylo.Node(children...)
}

// expand appends to dst every shape obtained from t by inserting one leaf.
// The result may contain isomorphic duplicates.
func expand(dst []*phylo.Shape, t *phylo.Shape, binaryOnly bool) []*phylo.Shape {
	dst = append(dst, AddLeafToEdge(t))
	if t.IsLeaf() {
		return dst
	}
	if !binaryOnly {
		dst = append(dst, AddLeafToNode(t))
	}
	children := t.Children()
	for i, c := range children {
		// isomorphic siblings are adjacent and expand to isomorphic results
		if i > 0 && children[i-1].Isomorphic(c) {
			continue
		}
		for _, grown := range expand(nil, c, binaryOnly) {
			dst = append(dst, phylo.Node(ReplaceAt(children, i, grown)...))
		}
	}
	return dst
}
