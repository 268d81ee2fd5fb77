package search

import (
	"math"

	"github.com/katalvlaran/kerntune/space"
)

// RandomOptions configures the uniform random searcher.
type RandomOptions struct {
	// Fraction is the proportion of the space to sample, in (0,1].
	Fraction float64
	// Seed drives the deterministic shuffle; 0 maps to a fixed default
	// stream.
	Seed uint64
}

// Validate checks Fraction is in (0,1].
func (o RandomOptions) Validate() error {
	if o.Fraction <= 0 || o.Fraction > 1 {
		return ErrInvalidStrategyOptions
	}

	return nil
}

// RandomSearcher visits ceil(f*N) indices sampled uniformly without
// replacement: a single seeded Fisher-Yates shuffle of [0..N), emitting
// the prefix.
type RandomSearcher struct {
	order   []int
	cursor  int
	budget  int
	history history
}

// NewRandom returns a searcher sampling opts.Fraction of sp without
// replacement, seeded by opts.Seed.
func NewRandom(sp *space.Space, opts RandomOptions) (*RandomSearcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := sp.Len()
	budget := int(math.Ceil(opts.Fraction * float64(n)))
	if budget > n {
		budget = n
	}

	rng := rngFromSeed(opts.Seed)
	order := shuffledIndices(n, rng)[:budget]

	return &RandomSearcher{order: order, budget: budget}, nil
}

// Configuration returns the index to evaluate next.
func (r *RandomSearcher) Configuration() int { return r.order[r.cursor] }

// Report records the measured cost of the current configuration.
func (r *RandomSearcher) Report(cost Cost) {
	r.history.record(r.order[r.cursor], cost)
}

// Next advances to the next sampled index.
func (r *RandomSearcher) Next() {
	r.cursor++
}

// Done reports whether the sampled prefix has been fully emitted.
func (r *RandomSearcher) Done() bool {
	return r.cursor >= r.budget
}

// Budget returns ceil(fraction * N).
func (r *RandomSearcher) Budget() int {
	return r.budget
}

// History returns the append-only record of visited indices and costs.
func (r *RandomSearcher) History() []MeasuredPoint {
	return r.history.Points()
}

var _ Searcher = (*RandomSearcher)(nil)
