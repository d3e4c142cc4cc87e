package phylo

import (
	"errors"
	"strings"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
)

func TestFold(t *testing.T) {
	tree := in(il(1), in(il(2), il(3), il(4)), in(il(5), il(6)))
	calls := 0
	// postorder list of arities, visiting children left to right
	got := Fold(tree, []int(nil), func(node *Tree[int], results [][]int) []int {
		calls++
		var out []int
		for _, r := range results {
			out = append(out, r...)
		}
		return append(out, node.Arity())
	})
	if diff := gocmp.Diff([]int{3, 2, 3}, got); diff != "" {
		t.Errorf("Fold() mismatch (-want +got):\n%s", diff)
	}
	if calls != 3 {
		t.Errorf("combine called %d times; want 3", calls)
	}

	if got := Fold(il(9), 42, func(*Tree[int], []int) int { return 0 }); got != 42 {
		t.Errorf("Fold(leaf) = %d; want 42", got)
	}

	// leaf count via fold agrees with Kappa
	kappa := Fold(tree, 1, func(_ *Tree[int], rs []int) int {
		s := 0
		for _, r := range rs {
			s += r
		}
		return s
	})
	if kappa != tree.Kappa() {
		t.Errorf("folded kappa = %d; want %d", kappa, tree.Kappa())
	}
}

func TestBinaryFold(t *testing.T) {
	tree := in(in(il(1), il(2)), in(il(3), in(il(4), il(5))))
	got := BinaryFold(tree, "x", func(_ *Tree[int], left, right string) string {
		return "[" + left + " " + right + "]"
	})
	if want := "[[x x] [x [x x]]]"; got != want {
		t.Errorf("BinaryFold() = %q; want %q", got, want)
	}
}

func TestBinaryFoldPanicsOnNonBinary(t *testing.T) {
	for _, tree := range []*Tree[int]{
		in(il(1), il(2), il(3)),
		in(il(1), in(il(2), il(3), il(4))),
		in(il(1), in(il(2))),
	} {
		t.Run(tree.String(), func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrNotBinary) {
					t.Errorf("BinaryFold(%s) recovered %v; want ErrNotBinary", tree, err)
				}
			}()
			BinaryFold(tree, 0, func(_ *Tree[int], a, b int) int { return a + b })
		})
	}
}

func TestRender(t *testing.T) {
	tree := Node(Leaf("a"), Node(Leaf("b"), Leaf("c")))
	if got, want := Render(tree, strings.ToUpper, JoinChildren), "(A,(B,C))"; got != want {
		t.Errorf("Render() = %q; want %q", got, want)
	}
	brackets := func(parts []string) string { return "[" + strings.Join(parts, " ") + "]" }
	if got, want := Render(tree, func(s string) string { return s }, brackets), "[a [b c]]"; got != want {
		t.Errorf("Render(brackets) = %q; want %q", got, want)
	}
	if got, want := Render(Leaf("solo"), strings.ToUpper, JoinChildren), "SOLO"; got != want {
		t.Errorf("Render(leaf) = %q; want %q", got, want)
	}
}
