// Package balance computes balance and symmetry statistics of trees.
//
// Every statistic is a fold over the tree and ignores leaf labels.
// Results are exact unsigned integers; checked arithmetic from package
// combin panics instead of wrapping around when a tree is too large for
// uint64. The sums stay far from that limit for any tree that the shape
// generator can enumerate in practice; the automorphism count is the
// exception and BigAutomorphisms should be used beyond about 60 leaves.
package balance

import (
	"github.com/relab/biotrees/combin"
	"github.com/relab/biotrees/phylo"
)

type indexAcc struct {
	index uint64
	kappa uint64
}

var leafAcc = indexAcc{kappa: 1}

func sumAcc(results []indexAcc) indexAcc {
	var s indexAcc
	for _, r := range results {
		s.index = combin.CheckedAdd(s.index, r.index)
		s.kappa += r.kappa
	}
	return s
}

// Sackin returns the Sackin index of t: the sum of the depths of all leaves.
func Sackin[T any](t *phylo.Tree[T]) uint64 {
	r := phylo.Fold(t, leafAcc, func(_ *phylo.Tree[T], results []indexAcc) indexAcc {
		s := sumAcc(results)
		// every leaf below the node is one edge deeper
		s.index = combin.CheckedAdd(s.index, s.kappa)
		return s
	})
	return r.index
}

// Colless returns the Colless index of a binary tree: the sum over internal
// nodes of the absolute difference between the leaf counts of the two
// children. It panics with an error wrapping phylo.ErrNotBinary if t has a
// node without exactly two children.
func Colless[T any](t *phylo.Tree[T]) uint64 {
	r := phylo.BinaryFold(t, leafAcc, func(_ *phylo.Tree[T], left, right indexAcc) indexAcc {
		diff := left.kappa - right.kappa
		if right.kappa > left.kappa {
			diff = right.kappa - left.kappa
		}
		index := combin.CheckedAdd(left.index, right.index)
		return indexAcc{
			index: combin.CheckedAdd(index, diff),
			kappa: left.kappa + right.kappa,
		}
	})
	return r.index
}

// copheneticRooted sums choose2(kappa) over all internal nodes, which counts
// every leaf pair once for each internal node above it, the root included.
func copheneticRooted[T any](t *phylo.Tree[T]) indexAcc {
	return phylo.Fold(t, leafAcc, func(_ *phylo.Tree[T], results []indexAcc) indexAcc {
		s := sumAcc(results)
		s.index = combin.CheckedAdd(s.index, combin.Choose2(s.kappa))
		return s
	})
}

// Cophenetic returns the cophenetic index of t: the sum over all unordered
// leaf pairs of the depth of their most recent common ancestor, with the
// root at depth 0. The index of a leaf and of a cherry is 0.
func Cophenetic[T any](t *phylo.Tree[T]) uint64 {
	r := copheneticRooted(t)
	return r.index - combin.Choose2(r.kappa)
}

// CopheneticRooted is Cophenetic with the root at depth 1, so that every
// leaf pair also counts the root. The index of a cherry is 1.
func CopheneticRooted[T any](t *phylo.Tree[T]) uint64 {
	return copheneticRooted(t).index
}

// Symmetries returns the number of symmetric internal nodes of t,
// that is nodes whose children are all isomorphic.
func Symmetries[T any](t *phylo.Tree[T]) uint64 {
	return phylo.Fold(t, 0, func(node *phylo.Tree[T], results []uint64) uint64 {
		var n uint64
		if node.IsSymmetric() {
			n = 1
		}
		for _, r := range results {
			n += r
		}
		return n
	})
}

// Cherries returns the number of internal nodes whose children are exactly
// two leaves.
func Cherries[T any](t *phylo.Tree[T]) uint64 {
	return phylo.Fold(t, 0, func(node *phylo.Tree[T], results []uint64) uint64 {
		var n uint64
		if cs := node.Children(); len(cs) == 2 && cs[0].IsLeaf() && cs[1].IsLeaf() {
			n = 1
		}
		for _, r := range results {
			n += r
		}
		return n
	})
}

// IsBinary reports whether every internal node of t has exactly two children.
func IsBinary[T any](t *phylo.Tree[T]) bool {
	return phylo.Fold(t, true, func(node *phylo.Tree[T], results []bool) bool {
		if node.Arity() != 2 {
			return false
		}
		return results[0] && results[1]
	})
}
