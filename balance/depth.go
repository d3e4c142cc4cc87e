package balance

import (
	"github.com/relab/biotrees/combin"
	"github.com/relab/biotrees/phylo"
	"gonum.org/v1/gonum/stat"
)

func leafDepths[T any](t *phylo.Tree[T]) []float64 {
	depths := t.LeafDepths()
	xs := make([]float64, len(depths))
	for i, d := range depths {
		xs[i] = float64(d)
	}
	return xs
}

// DepthMean returns the mean depth of the leaves of t.
func DepthMean[T any](t *phylo.Tree[T]) float64 {
	return stat.Mean(leafDepths(t), nil)
}

// DepthVariance returns the population variance of the leaf depths of t.
func DepthVariance[T any](t *phylo.Tree[T]) float64 {
	xs := leafDepths(t)
	if len(xs) < 2 {
		return 0
	}
	_, variance := stat.MeanVariance(xs, nil)
	// stat.MeanVariance is the unbiased sample variance
	n := float64(len(xs))
	return variance * (n - 1) / n
}

type symAcc struct {
	count uint64
	kappa uint64
}

func symmetricDescendants[T any](t *phylo.Tree[T], half bool) uint64 {
	r := phylo.BinaryFold(t, symAcc{count: 1, kappa: 1}, func(node *phylo.Tree[T], left, right symAcc) symAcc {
		kappa := left.kappa + right.kappa
		count := combin.CheckedMul(left.count, right.count)
		if cs := node.Children(); cs[0].Isomorphic(cs[1]) {
			if half {
				count = combin.CheckedMul(count, left.kappa)
			} else {
				count = combin.CheckedMul(count, kappa)
			}
		}
		return symAcc{count: count, kappa: kappa}
	})
	return r.count
}

// SymmetricDescendants returns the product of the leaf counts of all
// symmetric internal nodes of a binary tree. It panics with an error
// wrapping phylo.ErrNotBinary if t has a node without exactly two children.
func SymmetricDescendants[T any](t *phylo.Tree[T]) uint64 {
	return symmetricDescendants(t, false)
}

// SymmetricDescendantsHalf is SymmetricDescendants counting only the
// leaves below one child of each symmetric node.
func SymmetricDescendantsHalf[T any](t *phylo.Tree[T]) uint64 {
	return symmetricDescendants(t, true)
}
