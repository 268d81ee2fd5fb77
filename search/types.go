package search

import "math"

// Cost is a measured kernel runtime in seconds, or an explicit
// infeasibility sentinel (local memory overflow, compile failure,
// validation mismatch, ...). It is an explicit tagged value rather than a
// magic float (e.g. -1 or NaN) so a caller can never mistake an
// infeasible report for a real runtime.
type Cost struct {
	seconds  float64
	feasible bool
}

// FeasibleCost wraps a measured, positive runtime.
func FeasibleCost(seconds float64) Cost {
	return Cost{seconds: seconds, feasible: true}
}

// InfeasibleCost represents a configuration that did not run to
// completion: compile failure, resource overflow, launch failure, or
// validation mismatch. The core does not distinguish between these kinds;
// a caller that wants to report which one occurred does so one layer up,
// in package tuner.
func InfeasibleCost() Cost {
	return Cost{feasible: false}
}

// IsFeasible reports whether the cost carries a measured runtime.
func (c Cost) IsFeasible() bool { return c.feasible }

// Seconds returns the measured runtime. It is only meaningful when
// IsFeasible() is true.
func (c Cost) Seconds() float64 { return c.seconds }

// asObjective returns the cost as a float usable in a numeric comparison,
// with infeasible mapped to +Inf. Acceptance logic should still test
// IsFeasible() first rather than relying solely on Inf arithmetic: two
// infeasible costs both map to +Inf, and +Inf - +Inf is NaN.
func (c Cost) asObjective() float64 {
	if !c.feasible {
		return math.Inf(1)
	}

	return c.seconds
}

// Searcher is the common contract every search strategy implements. The
// driver calls Configuration(), evaluates it externally, calls
// Report(cost), then Next() - in that order.
type Searcher interface {
	// Configuration returns the index (into the space) to evaluate next.
	Configuration() int

	// Next advances internal state. Must be called after Report.
	Next()

	// Report informs the searcher of the last configuration's measured
	// cost (or infeasibility).
	Report(cost Cost)

	// Done reports whether the searcher will emit no new indices.
	Done() bool

	// Budget returns the total number of configurations the searcher
	// intends to visit, used for progress reporting.
	Budget() int
}

// history is the shared append-only record of visited indices and their
// costs.
type history struct {
	points []MeasuredPoint
}

func (h *history) record(index int, cost Cost) {
	h.points = append(h.points, MeasuredPoint{Index: index, Cost: cost})
}

// Points returns the accumulated append-only history.
func (h *history) Points() []MeasuredPoint {
	out := make([]MeasuredPoint, len(h.points))
	copy(out, h.points)

	return out
}

// MeasuredPoint pairs a configuration index with its measured cost.
type MeasuredPoint struct {
	Index int
	Cost  Cost
}
