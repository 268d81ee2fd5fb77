package search

import (
	"math"
	"math/rand"

	set "github.com/hashicorp/go-set/v3"
	"github.com/katalvlaran/kerntune/space"
)

// kMaxAlreadyVisited is the number of consecutive already-visited
// neighbour draws after which annealing declares itself stuck and
// terminates gracefully rather than spinning forever on an exhausted
// neighbourhood.
const kMaxAlreadyVisited = 10

// epsilonTemp is the floor the linear cooling schedule never drops below.
const epsilonTemp = 1e-9

// AnnealingOptions configures the simulated-annealing searcher.
type AnnealingOptions struct {
	// Fraction is the proportion of the space the searcher budgets for,
	// in (0,1].
	Fraction float64
	// MaxTemperature is the initial temperature T_max, which must be > 0.
	MaxTemperature float64
	// Seed drives every random draw; 0 maps to a fixed default stream.
	Seed uint64
}

// Validate checks Fraction is in (0,1] and MaxTemperature is positive.
func (o AnnealingOptions) Validate() error {
	if o.Fraction <= 0 || o.Fraction > 1 {
		return ErrInvalidStrategyOptions
	}
	if o.MaxTemperature <= 0 {
		return ErrInvalidStrategyOptions
	}

	return nil
}

// AnnealingSearcher is a Markov walk over the space with Metropolis
// acceptance, whose neighbourhood is defined by a single-coordinate change.
type AnnealingSearcher struct {
	sp     *space.Space
	rng    *rand.Rand
	budget int

	evaluations int
	awaiting    bool // true until the first report (for the initial c) lands

	c        int // current accepted index
	nEmit    int // index Configuration() currently returns
	lastEC   float64
	lastCost Cost
	temp     float64
	stuck    int
	visited  *set.Set[int]

	done   bool
	reason TerminationReason

	history history
}

// NewAnnealing returns an annealing searcher over sp, seeded by
// opts.Seed, starting from a uniformly random index.
func NewAnnealing(sp *space.Space, opts AnnealingOptions) (*AnnealingSearcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := sp.Len()
	budget := int(math.Ceil(opts.Fraction * float64(n)))
	if budget > n {
		budget = n
	}
	if budget < 1 {
		budget = 1
	}

	rng := rngFromSeed(opts.Seed)
	c0 := rng.Intn(n)

	visited := set.New[int](budget)
	visited.Insert(c0)

	return &AnnealingSearcher{
		sp:       sp,
		rng:      rng,
		budget:   budget,
		awaiting: true,
		c:        c0,
		nEmit:    c0,
		temp:     opts.MaxTemperature,
		visited:  visited,
	}, nil
}

// Configuration returns the index to evaluate next.
func (a *AnnealingSearcher) Configuration() int { return a.nEmit }

// Report records the measured cost of the last emitted configuration.
// State transitions happen in Next, per the Searcher contract.
func (a *AnnealingSearcher) Report(cost Cost) {
	a.lastCost = cost
	a.history.record(a.nEmit, cost)
	a.evaluations++
}

// Next advances the Markov walk using the last reported cost.
func (a *AnnealingSearcher) Next() {
	if a.done {
		return
	}

	if a.awaiting {
		a.advanceFromInitial()

		return
	}

	a.advanceFromCandidate()
}

func (a *AnnealingSearcher) advanceFromInitial() {
	a.lastEC = a.lastCost.asObjective()
	a.awaiting = false

	nbrs := a.sp.Neighbours(a.c)
	if len(nbrs) == 0 {
		a.done = true
		a.reason = NeighbourhoodExhausted

		return
	}

	n := nbrs[a.rng.Intn(len(nbrs))]
	a.visited.Insert(n)
	a.nEmit = n
}

func (a *AnnealingSearcher) advanceFromCandidate() {
	cand := a.nEmit
	E := a.lastCost

	// Infeasibility short-circuits the sign test: always reject, never
	// compute ΔE against a possibly-infinite reported cost, which would
	// produce Inf-Inf = NaN whenever the current cost is also infeasible.
	accept := false
	if E.IsFeasible() {
		deltaE := E.Seconds() - a.lastEC
		if deltaE < 0 {
			accept = true
		} else {
			p := math.Exp(-deltaE / a.temp)
			accept = a.rng.Float64() < p
		}
	}

	if accept {
		a.c = cand
		a.lastEC = E.asObjective()
		a.stuck = 0
	}

	// Cooling schedule tied to budget: each step multiplies the temperature
	// by (1 - 1/budget), so after a full budget it has fallen to roughly
	// T_max/e (to epsilonTemp only when budget is 1). It never drops below
	// epsilonTemp.
	a.temp *= 1 - 1/float64(a.budget)
	if a.temp < epsilonTemp {
		a.temp = epsilonTemp
	}

	if a.evaluations >= a.budget {
		a.done = true
		a.reason = BudgetExhausted

		return
	}

	nbrs := a.sp.Neighbours(a.c)
	if len(nbrs) == 0 {
		a.done = true
		a.reason = NeighbourhoodExhausted

		return
	}

	for attempt := 0; attempt < kMaxAlreadyVisited; attempt++ {
		candidate := nbrs[a.rng.Intn(len(nbrs))]
		if !a.visited.Contains(candidate) {
			a.visited.Insert(candidate)
			a.nEmit = candidate
			a.stuck = 0

			return
		}
		a.stuck++
		if a.stuck >= kMaxAlreadyVisited {
			a.done = true
			a.reason = StuckLimitReached

			return
		}
	}

	a.done = true
	a.reason = StuckLimitReached
}

// Done reports whether the searcher will emit no new indices.
func (a *AnnealingSearcher) Done() bool { return a.done }

// Budget returns the declared target number of evaluations.
func (a *AnnealingSearcher) Budget() int { return a.budget }

// Reason returns why the searcher terminated, or NotDone while still
// running.
func (a *AnnealingSearcher) Reason() TerminationReason {
	if !a.done {
		return NotDone
	}

	return a.reason
}

// History returns the append-only record of visited indices and costs.
func (a *AnnealingSearcher) History() []MeasuredPoint {
	return a.history.Points()
}

var _ Searcher = (*AnnealingSearcher)(nil)
