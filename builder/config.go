package builder

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by constructors.
var (
	ErrTooFewRouters      = errors.New("builder: too few routers")
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")
	ErrNeedRandSource     = errors.New("builder: random source required")
	ErrUnknownShape       = errors.New("builder: unknown shape")
)

// config aggregates the knobs shared by constructors.
type config struct {
	idFn   IDFn
	rng    *rand.Rand
	costFn CostFn
}

const defaultCost = int64(1)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:   ExcelColumnIDFn,
		costFn: ConstantCostFn(defaultCost),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes a Build call.
type Option func(*config)

// WithIDScheme sets the router ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithSeed seeds a new random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn overrides the per-link cost generator. Panics on nil.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *config) { c.costFn = fn }
}
