package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/relab/biotrees/phylo"
)

func TestReplaceAt(t *testing.T) {
	cherry := node(leaf(), leaf())
	triple := node(leaf(), cherry)
	star := node(leaf(), leaf(), leaf())
	tests := []struct {
		name string
		in   []*phylo.Shape
		i    int
		t    *phylo.Shape
		want []string
	}{
		{name: "in place", in: []*phylo.Shape{leaf(), cherry, star}, i: 1, t: triple, want: []string{"*", "(*,(*,*))", "(*,*,*)"}},
		{name: "move right", in: []*phylo.Shape{leaf(), leaf(), cherry}, i: 0, t: cherry, want: []string{"*", "(*,*)", "(*,*)"}},
		{name: "move to end", in: []*phylo.Shape{leaf(), cherry, triple}, i: 0, t: star, want: []string{"(*,*)", "(*,(*,*))", "(*,*,*)"}},
		{name: "move left", in: []*phylo.Shape{leaf(), cherry, triple}, i: 2, t: leaf(), want: []string{"*", "*", "(*,*)"}},
		{name: "single", in: []*phylo.Shape{leaf()}, i: 0, t: cherry, want: []string{"(*,*)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := shapeStrings(tt.in)
			got := shapeStrings(ReplaceAt(tt.in, tt.i, tt.t))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReplaceAt() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(before, shapeStrings(tt.in)); diff != "" {
				t.Errorf("ReplaceAt() modified its input (-before +after):\n%s", diff)
			}
		})
	}
}

func TestInsertSorted(t *testing.T) {
	cherry := node(leaf(), leaf())
	tests := []struct {
		in   []*phylo.Shape
		t    *phylo.Shape
		want []string
	}{
		{in: nil, t: cherry, want: []string{"(*,*)"}},
		{in: []*phylo.Shape{leaf(), cherry}, t: leaf(), want: []string{"*", "*", "(*,*)"}},
		{in: []*phylo.Shape{leaf(), cherry}, t: node(leaf(), cherry), want: []string{"*", "(*,*)", "(*,(*,*))"}},
		{in: []*phylo.Shape{cherry, cherry}, t: leaf(), want: []string{"*", "(*,*)", "(*,*)"}},
	}
	for _, tt := range tests {
		got := shapeStrings(InsertSorted(tt.in, tt.t))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("InsertSorted(%v, %s) mismatch (-want +got):\n%s", shapeStrings(tt.in), tt.t, diff)
		}
	}
}

func TestAddLeaf(t *testing.T) {
	cherry := node(leaf(), leaf())
	tests := []struct {
		name string
		got  *phylo.Shape
		want string
	}{
		{name: "edge/leaf", got: AddLeafToEdge(leaf()), want: "(*,*)"},
		{name: "edge/cherry", got: AddLeafToEdge(cherry), want: "(*,(*,*))"},
		{name: "node/leaf", got: AddLeafToNode(leaf()), want: "(*,*)"},
		{name: "node/cherry", got: AddLeafToNode(cherry), want: "(*,*,*)"},
		{name: "node/((*,*),(*,*))", got: AddLeafToNode(node(cherry, cherry)), want: "(*,(*,*),(*,*))"},
	}
	for _, tt := range tests {
		if tt.got.String() != tt.want {
			t.Errorf("%s = %s; want %s", tt.name, tt.got, tt.want)
		}
		if c := phylo.CanonicalShape(tt.got); c.String() != tt.got.String() {
			t.Errorf("%s = %s is not canonical", tt.name, tt.got)
		}
	}
}

func TestExpand(t *testing.T) {
	cherry := node(leaf(), leaf())
	tests := []struct {
		t          *phylo.Shape
		binaryOnly bool
		want       []string
	}{
		{t: leaf(), binaryOnly: true, want: []string{"(*,*)"}},
		{t: cherry, binaryOnly: true, want: []string{"(*,(*,*))"}},
		{t: cherry, binaryOnly: false, want: []string{"(*,(*,*))", "(*,*,*)"}},
		{t: node(leaf(), cherry), binaryOnly: true, want: []string{"(*,(*,(*,*)))", "((*,*),(*,*))"}},
		{t: node(leaf(), cherry), binaryOnly: false, want: []string{
			"(*,(*,(*,*)))",
			"(*,(*,*,*))",
			"((*,*),(*,*))",
			"(*,*,(*,*))",
		}},
	}
	for _, tt := range tests {
		got := shapeStrings(sortedSet(expand(nil, tt.t, tt.binaryOnly)))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("expand(%s, %t) mismatch (-want +got):\n%s", tt.t, tt.binaryOnly, diff)
		}
	}
}

func TestUnion(t *testing.T) {
	a := []*phylo.Shape{leaf(), node(leaf(), leaf()), node(leaf(), leaf(), leaf())}
	b := []*phylo.Shape{node(leaf(), leaf()), node(leaf(), node(leaf(), leaf()))}
	want := []string{"*", "(*,*)", "(*,(*,*))", "(*,*,*)"}
	if diff := cmp.Diff(want, shapeStrings(union(a, b))); diff != "" {
		t.Errorf("union() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, shapeStrings(union(b, a))); diff != "" {
		t.Errorf("union() not symmetric (-want +got):\n%s", diff)
	}
	if got := union(nil, nil); len(got) != 0 {
		t.Errorf("union(nil, nil) = %v; want empty", shapeStrings(got))
	}
}
