package sampler

const (
	// DefaultMaxAttempts caps the draws of a single Generate call.
	DefaultMaxAttempts = 1_000_000

	// LargePoolThreshold is the pool size above which unique requests are
	// limited to two thirds of the pool.
	LargePoolThreshold = 100
)

// Generator draws samples from a pool according to a strategy.
// It keeps no state between calls besides its configuration.
type Generator struct {
	pool        Pool
	strategy    Strategy
	src         *Source
	maxAttempts int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource makes the generator draw from src instead of the shared source.
// A nil source is ignored.
func WithSource(src *Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithMaxAttempts overrides DefaultMaxAttempts. Values <= 0 disable the cap.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		g.maxAttempts = n
	}
}

// New binds pool to strategy. A nil strategy means Uniform.
func New(pool Pool, strategy Strategy, opts ...Option) *Generator {
	if strategy == nil {
		strategy = Uniform{}
	}
	g := &Generator{
		pool:        pool,
		strategy:    strategy,
		src:         Default(),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Pool returns the pool the generator draws from.
func (g *Generator) Pool() Pool { return g.pool }

// Len returns the number of items available to the generator.
func (g *Generator) Len() int { return g.pool.Len() }

// Strategy returns the sampling strategy.
func (g *Generator) Strategy() Strategy { return g.strategy }

// Source returns the random source used by the generator.
func (g *Generator) Source() *Source { return g.src }

// GenerateNonUnique draws size items with replacement.
func (g *Generator) GenerateNonUnique(size int) ([]string, error) {
	n := g.pool.Len()
	if size < 0 || size > n {
		return nil, &SizeError{Op: "generate_nonunique", Size: size, Min: 0, Max: n, Available: n}
	}
	return g.strategy.SampleWithReplacement(g.src, g.pool, size), nil
}

// Generate draws size distinct items.
func (g *Generator) Generate(size int) ([]string, error) {
	if err := CheckUnique(size, g.pool.Len()); err != nil {
		return nil, err
	}
	return g.strategy.SampleWithoutReplacement(g.src, g.pool, size, g.maxAttempts)
}

// CheckUnique validates a request for size distinct items out of n.
func CheckUnique(size, n int) error {
	if size < 1 || size > n {
		return &SizeError{Op: "generate", Size: size, Min: 1, Max: n, Available: n}
	}
	if limit := 2 * n / 3; n > LargePoolThreshold && size > limit {
		return &SizeError{
			Op: "generate", Size: size, Min: 1, Max: limit, Available: n,
			Reason: "more than two thirds of a large pool requested",
		}
	}
	return nil
}
