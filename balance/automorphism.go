package balance

import (
	"math/big"

	"github.com/relab/biotrees/combin"
	"github.com/relab/biotrees/phylo"
)

// runs calls fn for every maximal run of consecutive isomorphic children of
// node, with the index of the first child in the run and its length.
// In a canonical tree isomorphic siblings are adjacent, so the runs are
// the isomorphism classes of the children.
func runs[T any](node *phylo.Tree[T], fn func(first, length int)) {
	children := node.Children()
	for i := 0; i < len(children); {
		j := i + 1
		for j < len(children) && children[j].Isomorphic(children[i]) {
			j++
		}
		fn(i, j-i)
		i = j
	}
}

// Automorphisms returns the order of the automorphism group of the shape
// of t: the number of ways to permute its leaves that yield the same
// tree. A run of L isomorphic children with A automorphisms each
// contributes A^L * L!. The tree must be in canonical order.
//
// The result overflows uint64 (and the function panics) for large very
// symmetric trees, such as a star with more than 20 leaves; use
// BigAutomorphisms there.
func Automorphisms[T any](t *phylo.Tree[T]) uint64 {
	return phylo.Fold(t, 1, func(node *phylo.Tree[T], results []uint64) uint64 {
		aut := uint64(1)
		runs(node, func(first, length int) {
			f := combin.CheckedMul(combin.Pow(results[first], length), combin.Factorial(uint64(length)))
			aut = combin.CheckedMul(aut, f)
		})
		return aut
	})
}

// BigAutomorphisms is Automorphisms without a range limit.
func BigAutomorphisms[T any](t *phylo.Tree[T]) *big.Int {
	return phylo.Fold(t, big.NewInt(1), func(node *phylo.Tree[T], results []*big.Int) *big.Int {
		aut := big.NewInt(1)
		runs(node, func(first, length int) {
			f := new(big.Int).Exp(results[first], big.NewInt(int64(length)), nil)
			aut.Mul(aut, f.Mul(f, combin.BigFactorial(int64(length))))
		})
		return aut
	})
}
