package balance

import (
	"errors"
	"fmt"

	"github.com/relab/biotrees/combin"
	"github.com/relab/biotrees/phylo"
)

// ErrScoreVector is wrapped by the panic value of QuartetIndex when the
// score vector does not have one entry per quartet topology.
var ErrScoreVector = errors.New("balance: quartet score vector must have 5 entries")

// Quartets are the five shapes with four leaves, indexed as in a quartet
// score vector.
var Quartets = [5]*phylo.Shape{
	phylo.ShapeNode(phylo.ShapeLeaf(), phylo.ShapeNode(phylo.ShapeLeaf(), phylo.Cherry())),
	phylo.ShapeNode(phylo.ShapeLeaf(), phylo.ShapeLeaf(), phylo.Cherry()),
	phylo.ShapeNode(phylo.ShapeLeaf(), phylo.ShapeNode(phylo.ShapeLeaf(), phylo.ShapeLeaf(), phylo.ShapeLeaf())),
	phylo.ShapeNode(phylo.Cherry(), phylo.Cherry()),
	phylo.ShapeNode(phylo.ShapeLeaf(), phylo.ShapeLeaf(), phylo.ShapeLeaf(), phylo.ShapeLeaf()),
}

// DefaultScores scores each quartet topology by its index in Quartets.
var DefaultScores = []uint64{0, 1, 2, 3, 4}

// BinaryScores restricted to binary trees counts the balanced quartets,
// which makes QuartetIndex agree with BinaryQuartetIndex.
var BinaryScores = []uint64{0, 0, 0, 1, 1}

type quartetAcc struct {
	quartets uint64
	// triplets counts 3-leaf subsets whose induced shape is (*,*,*)
	triplets uint64
	kappa    uint64
}

// QuartetIndex returns the quartet index of t: the sum over all 4-leaf
// subsets of the score of the topology they induce, as indexed by
// Quartets. A nil scores uses DefaultScores. It panics with an error
// wrapping ErrScoreVector if scores has a length other than 5.
func QuartetIndex[T any](t *phylo.Tree[T], scores []uint64) uint64 {
	if scores == nil {
		scores = DefaultScores
	}
	if len(scores) != len(Quartets) {
		panic(fmt.Errorf("%w: got %d", ErrScoreVector, len(scores)))
	}
	r := phylo.Fold(t, quartetAcc{kappa: 1}, func(node *phylo.Tree[T], rs []quartetAcc) quartetAcc {
		var acc quartetAcc
		for _, r := range rs {
			acc.kappa += r.kappa
		}
		acc.triplets = triplets(rs, acc.kappa)
		acc.quartets = quartetScore(node, rs, acc.kappa, scores)
		return acc
	})
	return r.quartets
}

func triplets(rs []quartetAcc, kappa uint64) uint64 {
	if kappa < 3 {
		return 0
	}
	var n uint64
	for _, r := range rs {
		n = combin.CheckedAdd(n, r.triplets)
	}
	// one leaf from each of three children
	combin.Subsets(len(rs), 3, func(idx []int) {
		n = combin.CheckedAdd(n, product(rs, idx))
	})
	return n
}

func quartetScore[T any](node *phylo.Tree[T], rs []quartetAcc, kappa uint64, scores []uint64) uint64 {
	switch {
	case kappa < 4:
		return 0
	case kappa == 4:
		s := phylo.CanonicalShape(node)
		for i, q := range Quartets {
			if s.Isomorphic(q) {
				return scores[i]
			}
		}
		// only trees with unary nodes get here; the recurrence handles them
	}
	var s0, s1, s2, s3, s4, resolved uint64
	for _, r := range rs {
		s0 = combin.CheckedAdd(s0, r.quartets)
	}
	// two leaves in one child, one in each of two others
	combin.Subsets(len(rs), 3, func(idx []int) {
		a, b, c := rs[idx[0]].kappa, rs[idx[1]].kappa, rs[idx[2]].kappa
		for _, v := range []uint64{
			mul(combin.Choose2(a), b, c),
			mul(combin.Choose2(b), a, c),
			mul(combin.Choose2(c), a, b),
		} {
			s1 = combin.CheckedAdd(s1, v)
		}
	})
	combin.Subsets(len(rs), 2, func(idx []int) {
		a, b := rs[idx[0]], rs[idx[1]]
		// three leaves in one child, one in the other
		s2 = combin.CheckedAdd(s2, combin.CheckedAdd(mul(a.kappa, b.triplets), mul(b.kappa, a.triplets)))
		resolved = combin.CheckedAdd(resolved, combin.CheckedAdd(
			mul(b.kappa, combin.Choose3(a.kappa)-a.triplets),
			mul(a.kappa, combin.Choose3(b.kappa)-b.triplets),
		))
		// two leaves in each
		s3 = combin.CheckedAdd(s3, mul(combin.Choose2(a.kappa), combin.Choose2(b.kappa)))
	})
	// one leaf from each of four children
	combin.Subsets(len(rs), 4, func(idx []int) {
		s4 = combin.CheckedAdd(s4, product(rs, idx))
	})
	q := s0
	for i, s := range []uint64{resolved, s1, s2, s3, s4} {
		q = combin.CheckedAdd(q, mul(scores[i], s))
	}
	return q
}

func mul(factors ...uint64) uint64 {
	p := uint64(1)
	for _, f := range factors {
		p = combin.CheckedMul(p, f)
	}
	return p
}

func product(rs []quartetAcc, idx []int) uint64 {
	p := uint64(1)
	for _, i := range idx {
		p = combin.CheckedMul(p, rs[i].kappa)
	}
	return p
}

// BinaryQuartetIndex returns the number of balanced quartets ((*,*),(*,*))
// of a binary tree. It panics with an error wrapping phylo.ErrNotBinary if
// t has a node without exactly two children.
func BinaryQuartetIndex[T any](t *phylo.Tree[T]) uint64 {
	r := phylo.BinaryFold(t, leafAcc, func(_ *phylo.Tree[T], left, right indexAcc) indexAcc {
		kappa := left.kappa + right.kappa
		if kappa < 4 {
			return indexAcc{kappa: kappa}
		}
		q := combin.CheckedAdd(left.index, right.index)
		q = combin.CheckedAdd(q, mul(combin.Choose2(left.kappa), combin.Choose2(right.kappa)))
		return indexAcc{index: q, kappa: kappa}
	})
	return r.index
}
