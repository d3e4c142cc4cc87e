package balance

import (
	"math/big"

	"github.com/relab/biotrees/phylo"
)

// Summary holds every statistic of one tree. The binary-only fields are
// zero unless Binary is set.
type Summary struct {
	Leaves        int
	Depth         int
	Binary        bool
	Sackin        uint64
	Cophenetic    uint64
	Quartet       uint64
	Cherries      uint64
	Symmetries    uint64
	Automorphisms *big.Int
	DepthMean     float64
	DepthVariance float64

	Colless                  uint64
	BinaryQuartet            uint64
	SymmetricDescendants     uint64
	SymmetricDescendantsHalf uint64
}

// Summarize computes the Summary of the canonical shape of t.
func Summarize[T any](t *phylo.Tree[T]) Summary {
	s := phylo.CanonicalShape(t)
	sum := Summary{
		Leaves:        s.Kappa(),
		Depth:         s.Depth(),
		Binary:        IsBinary(s),
		Sackin:        Sackin(s),
		Cophenetic:    Cophenetic(s),
		Quartet:       QuartetIndex(s, nil),
		Cherries:      Cherries(s),
		Symmetries:    Symmetries(s),
		Automorphisms: BigAutomorphisms(s),
		DepthMean:     DepthMean(s),
		DepthVariance: DepthVariance(s),
	}
	if sum.Binary {
		sum.Colless = Colless(s)
		sum.BinaryQuartet = BinaryQuartetIndex(s)
		sum.SymmetricDescendants = SymmetricDescendants(s)
		sum.SymmetricDescendantsHalf = SymmetricDescendantsHalf(s)
	}
	return sum
}
