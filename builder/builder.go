package builder

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/swarmpath/antcolony/graph"
)

// Sentinel errors for scenario generation.
var (
	// ErrTooFewNodes indicates a node count below 1.
	ErrTooFewNodes = errors.New("builder: node count must be positive")

	// ErrBadEdgeProbability indicates an edge probability outside [0,1].
	ErrBadEdgeProbability = errors.New("builder: edge probability must be in [0,1]")

	// ErrBadWeightRange indicates an invalid [min,max] weight range.
	ErrBadWeightRange = errors.New("builder: invalid weight range")

	// ErrNilGraph indicates a nil graph passed to RandomRoute.
	ErrNilGraph = errors.New("builder: graph is nil")
)

// Deterministic defaults, matching the classic 25-node scenario shape.
const (
	defaultEdgeProbability = 0.7
	defaultMinWeight       = 3.0
	defaultMaxWeight       = 5.0
	defaultSeed            = int64(1)
)

// Layout maps each node ID to its (x,y) position in the unit square,
// for consumption by external plotting collaborators.
type Layout map[string][2]float64

// Options configures scenario generation. Build with functional Option
// values; Random validates the final combination.
type Options struct {
	// EdgeProbability is the independent inclusion probability of each
	// ordered node pair, in [0,1].
	EdgeProbability float64

	// MinWeight and MaxWeight bound the uniform edge-weight draw.
	// Ignored when Euclidean is set.
	MinWeight float64
	MaxWeight float64

	// Euclidean derives edge weights from the layout distance between
	// the endpoints instead of a uniform draw.
	Euclidean bool

	// Seed drives the generator RNG; 0 selects the fixed default so
	// unseeded fixtures stay reproducible.
	Seed int64
}

// DefaultOptions returns the generation defaults: edge probability 0.7,
// weights uniform in [3,5], deterministic default seed.
func DefaultOptions() Options {
	return Options{
		EdgeProbability: defaultEdgeProbability,
		MinWeight:       defaultMinWeight,
		MaxWeight:       defaultMaxWeight,
	}
}

// Option mutates Options before validation.
type Option func(*Options)

// WithEdgeProbability sets the per-ordered-pair inclusion probability.
func WithEdgeProbability(p float64) Option {
	return func(o *Options) { o.EdgeProbability = p }
}

// WithWeightRange sets the uniform edge-weight bounds [min,max].
func WithWeightRange(min, max float64) Option {
	return func(o *Options) {
		o.MinWeight = min
		o.MaxWeight = max
	}
}

// WithEuclideanWeights derives edge weights from layout distances.
func WithEuclideanWeights() Option {
	return func(o *Options) { o.Euclidean = true }
}

// WithSeed sets the generator seed for reproducible scenarios.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

func (o Options) validate() error {
	if o.EdgeProbability < 0 || o.EdgeProbability > 1 {
		return fmt.Errorf("%w: %v", ErrBadEdgeProbability, o.EdgeProbability)
	}
	if !o.Euclidean {
		if o.MinWeight < 0 || o.MaxWeight < o.MinWeight || o.MaxWeight == 0 {
			return fmt.Errorf("%w: [%v,%v]", ErrBadWeightRange, o.MinWeight, o.MaxWeight)
		}
	}

	return nil
}

// Random generates a directed weighted graph over n nodes together with
// its 2-D layout.
//
// Errors: ErrTooFewNodes, ErrBadEdgeProbability, ErrBadWeightRange.
//
// Complexity: O(n²) Bernoulli trials, O(n) layout draws.
func Random(n int, opts ...Option) (*graph.Graph, Layout, error) {
	// 1) Validate parameters early; no side effects on invalid input.
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrTooFewNodes, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, nil, err
	}

	rng := rngFromSeed(o.Seed)

	// 2) Nodes and layout, in stable index order.
	ids := make([]string, n)
	layout := make(Layout, n)
	g := graph.New()
	for i := 0; i < n; i++ {
		ids[i] = nodeID(i, n)
		layout[ids[i]] = [2]float64{rng.Float64(), rng.Float64()}
		if err := g.AddNode(ids[i]); err != nil {
			return nil, nil, err
		}
	}

	// 3) One Bernoulli trial per ordered pair, stable (from, to) order.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() >= o.EdgeProbability {
				continue
			}
			w := o.edgeWeight(rng, layout[ids[i]], layout[ids[j]])
			if err := g.AddEdge(ids[i], ids[j], w); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, layout, nil
}

// RandomRoute returns a uniformly random permutation of all nodes of g,
// usable as an initial route for archive/field seeding.
//
// Errors: ErrNilGraph.
//
// Complexity: O(n).
func RandomRoute(g *graph.Graph, rng *rand.Rand) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	route := g.Nodes()
	rng.Shuffle(len(route), func(i, j int) {
		route[i], route[j] = route[j], route[i]
	})

	return route, nil
}

// edgeWeight draws one edge weight according to the configured policy.
func (o Options) edgeWeight(rng *rand.Rand, from, to [2]float64) float64 {
	if o.Euclidean {
		dx := from[0] - to[0]
		dy := from[1] - to[1]

		return math.Hypot(dx, dy)
	}

	return o.MinWeight + rng.Float64()*(o.MaxWeight-o.MinWeight)
}

// nodeID formats index i as a zero-padded decimal so lexicographic node
// order matches index order (n decides the pad width).
func nodeID(i, n int) string {
	width := 1
	for limit := 10; n > limit; limit *= 10 {
		width++
	}

	return fmt.Sprintf("n%0*d", width, i)
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 selects the
// fixed default stream.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
