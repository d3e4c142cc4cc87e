package shape

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/rand"

	"github.com/mroth/weightedrand"
	"github.com/relab/biotrees/balance"
	"github.com/relab/biotrees/combin"
	"github.com/relab/biotrees/phylo"
)

// ErrSampleRange is returned when the labeling counts of the requested
// shapes do not fit the sampler's integer weights.
var ErrSampleRange = errors.New("shape: too many leaves to sample")

// Sampler draws random shapes with a fixed number of leaves under the
// proportional-to-distinguishable-arrangements model: every leaf-labeled
// tree is equally likely, so a shape is drawn with probability
// proportional to n!/|Aut(shape)|.
type Sampler struct {
	chooser *weightedrand.Chooser
	leaves  int
}

// NewSampler returns a Sampler over all shapes with n leaves, using the
// shapes enumerated by g.
func (g *Generator) NewSampler(n int, binaryOnly bool) (*Sampler, error) {
	shapes, err := g.AllShapes(n, binaryOnly)
	if err != nil {
		return nil, err
	}
	if len(shapes) == 0 {
		return nil, fmt.Errorf("shape: no shapes with %d leaves", n)
	}
	labelings := combin.BigFactorial(int64(n))
	limit := new(big.Int).SetUint64(math.MaxInt)
	choices := make([]weightedrand.Choice, len(shapes))
	w := new(big.Int)
	for i, s := range shapes {
		w.Quo(labelings, balance.BigAutomorphisms(s))
		if w.Cmp(limit) > 0 {
			return nil, fmt.Errorf("%w: %d", ErrSampleRange, n)
		}
		choices[i] = weightedrand.NewChoice(s, uint(w.Uint64()))
	}
	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %v", ErrSampleRange, n, err)
	}
	return &Sampler{chooser: chooser, leaves: n}, nil
}

// NewSampler returns a Sampler using the package-level generator.
func NewSampler(n int, binaryOnly bool) (*Sampler, error) {
	return defaultGenerator.NewSampler(n, binaryOnly)
}

// Sample draws one shape with n leaves from the package-level generator.
// Build a Sampler with NewSampler to draw many shapes.
func Sample(n int, binaryOnly bool, rnd *rand.Rand) (*phylo.Shape, error) {
	s, err := NewSampler(n, binaryOnly)
	if err != nil {
		return nil, err
	}
	return s.Sample(rnd), nil
}

// Leaves returns the number of leaves of the sampled shapes.
func (s *Sampler) Leaves() int {
	return s.leaves
}

// Sample draws one shape using rnd as the source of randomness.
// The returned shape is shared and must not be modified.
func (s *Sampler) Sample(rnd *rand.Rand) *phylo.Shape {
	return s.chooser.PickSource(rnd).(*phylo.Shape)
}
