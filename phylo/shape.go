package phylo

// Tip is the label of a shape leaf. It carries no information.
type Tip struct{}

// String renders a tip as "*".
func (Tip) String() string { return "*" }

// Shape is a tree without leaf labels; it represents topology only.
type Shape = Tree[Tip]

// ShapeLeaf returns the single-leaf shape.
func ShapeLeaf() *Shape {
	return Leaf(Tip{})
}

// Cherry returns the shape with one internal node and two leaves.
func Cherry() *Shape {
	return Node(ShapeLeaf(), ShapeLeaf())
}

// ShapeNode returns an internal node whose children are in canonical order.
func ShapeNode(children ...*Shape) *Shape {
	return NewNode((*Shape).CompareShape, children...)
}

// CloneShape returns the shape of t, erasing all leaf labels.
// The children order of t is preserved.
func (t *Tree[T]) CloneShape() *Shape {
	if t.IsLeaf() {
		return ShapeLeaf()
	}
	children := make([]*Shape, len(t.children))
	for i, c := range t.children {
		children[i] = c.CloneShape()
	}
	return Node(children...)
}

// CanonicalShape returns the canonical shape of t: labels erased and the
// children of every node sorted by CompareShape.
func CanonicalShape[T any](t *Tree[T]) *Shape {
	return Canonical(t.CloneShape(), (*Shape).CompareShape)
}
