// Package shape enumerates tree shapes: all rooted unordered trees with a
// given number of unlabeled leaves, up to isomorphism.
//
// Shapes with n leaves are grown from the shapes with n-1 leaves by
// inserting one leaf in every possible place. In the binary regime a leaf
// is only grafted onto edges; in the general regime it may also become an
// extra child of an existing internal node. Results are kept in canonical
// order and memoized per (n, regime), so repeated requests are cheap and
// later levels reuse earlier ones.
package shape

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/relab/biotrees/phylo"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNegativeLeafCount is returned when shapes are requested for n < 0.
var ErrNegativeLeafCount = errors.New("shape: negative leaf count")

type level struct {
	n          int
	binaryOnly bool
}

func (l level) String() string {
	if l.binaryOnly {
		return fmt.Sprintf("binary/%d", l.n)
	}
	return fmt.Sprintf("general/%d", l.n)
}

// Generator enumerates shapes and memoizes every level it computes.
// A Generator is safe for concurrent use.
type Generator struct {
	workers int
	logger  *zap.SugaredLogger

	mu    sync.RWMutex
	cache map[level][]*phylo.Shape
	group singleflight.Group
}

// Option configures a Generator.
type Option func(*Generator)

// WithWorkers sets the number of goroutines used to expand a level.
// Values below one select runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		g.workers = n
	}
}

// WithLogger sets the logger that receives per-level progress at debug level.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New returns a Generator with an empty cache.
func New(opts ...Option) *Generator {
	g := &Generator{
		workers: runtime.NumCPU(),
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset drops all memoized levels. Subsequent requests regenerate them.
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cache = map[level][]*phylo.Shape{
		{n: 0, binaryOnly: true}:  {},
		{n: 0, binaryOnly: false}: {},
		{n: 1, binaryOnly: true}:  {phylo.ShapeLeaf()},
		{n: 1, binaryOnly: false}: {phylo.ShapeLeaf()},
	}
}

// AllShapes returns every shape with n leaves, in canonical order and
// pairwise non-isomorphic. With binaryOnly set, only shapes whose internal
// nodes all have exactly two children are returned.
//
// The returned slice and the shapes in it are shared with the cache and
// must not be modified.
func (g *Generator) AllShapes(n int, binaryOnly bool) ([]*phylo.Shape, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLeafCount, n)
	}
	key := level{n: n, binaryOnly: binaryOnly}
	if shapes, ok := g.lookup(key); ok {
		return shapes, nil
	}
	v, err, _ := g.group.Do(key.String(), func() (any, error) {
		if shapes, ok := g.lookup(key); ok {
			return shapes, nil
		}
		prev, err := g.AllShapes(n-1, binaryOnly)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		shapes := g.expandLevel(prev, binaryOnly)
		g.logger.Debugw("generated shapes",
			"leaves", n,
			"binary", binaryOnly,
			"shapes", len(shapes),
			"elapsed", time.Since(start),
		)
		g.mu.Lock()
		g.cache[key] = shapes
		g.mu.Unlock()
		return shapes, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*phylo.Shape), nil
}

// Count returns the number of shapes with n leaves.
func (g *Generator) Count(n int, binaryOnly bool) (int, error) {
	shapes, err := g.AllShapes(n, binaryOnly)
	return len(shapes), err
}

func (g *Generator) lookup(key level) ([]*phylo.Shape, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	shapes, ok := g.cache[key]
	return shapes, ok
}

// expandLevel grows every shape in prev by one leaf. The work is split into
// contiguous chunks, one per worker; each worker deduplicates its own
// results and the sorted partial sets are merged.
func (g *Generator) expandLevel(prev []*phylo.Shape, binaryOnly bool) []*phylo.Shape {
	workers := min(g.workers, len(prev))
	chunk := (len(prev) + workers - 1) / workers
	results := make(chan []*phylo.Shape, workers)
	for start := 0; start < len(prev); start += chunk {
		part := prev[start:min(start+chunk, len(prev))]
		go func() {
			var grown []*phylo.Shape
			for _, t := range part {
				grown = expand(grown, t, binaryOnly)
			}
			results <- sortedSet(grown)
		}()
	}
	var shapes []*phylo.Shape
	for start := 0; start < len(prev); start += chunk {
		shapes = union(shapes, <-results)
	}
	return shapes
}

var defaultGenerator = New()

// AllShapes returns every shape with n leaves using the package-level
// generator. See Generator.AllShapes.
func AllShapes(n int, binaryOnly bool) ([]*phylo.Shape, error) {
	return defaultGenerator.AllShapes(n, binaryOnly)
}

// Count returns the number of shapes with n leaves using the package-level
// generator.
func Count(n int, binaryOnly bool) (int, error) {
	return defaultGenerator.Count(n, binaryOnly)
}

// Reset clears the cache of the package-level generator.
func Reset() {
	defaultGenerator.Reset()
}
