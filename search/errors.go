package search

import "errors"

// ErrInvalidStrategyOptions is returned by a strategy constructor when its
// options are out of the contractual range: fraction not in (0,1],
// max_temperature <= 0, or PSO weights out of bounds.
var ErrInvalidStrategyOptions = errors.New("search: invalid strategy options")

// ErrNeighbourhoodExhausted marks the annealing searcher's graceful
// termination when it cannot propose a fresh neighbour: either the current
// index has no neighbours at all (reason NeighbourhoodExhausted) or
// kMaxAlreadyVisited draws in a row found only visited ones (reason
// StuckLimitReached). It is never returned from a function -
// running out of neighbours ends a search, it does not fail one - it is
// exposed only so callers can name the reason a TerminationReason carries.
var ErrNeighbourhoodExhausted = errors.New("search: neighbourhood exhausted")

// TerminationReason explains why a searcher declared itself Done.
type TerminationReason int

const (
	// NotDone means the searcher has not yet finished.
	NotDone TerminationReason = iota
	// BudgetExhausted means the searcher emitted its full declared budget.
	BudgetExhausted
	// NeighbourhoodExhausted means annealing ran out of neighbours to
	// propose, matching ErrNeighbourhoodExhausted.
	NeighbourhoodExhausted
	// StuckLimitReached means annealing redrew an already-visited
	// neighbour kMaxAlreadyVisited times in a row.
	StuckLimitReached
)
