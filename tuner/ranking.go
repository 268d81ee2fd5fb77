package tuner

import (
	"sort"

	"github.com/katalvlaran/kerntune/search"
	"github.com/katalvlaran/kerntune/space"
)

// RankedPoint pairs a concrete Configuration with its measured Cost.
type RankedPoint struct {
	Configuration space.Configuration
	Cost          search.Cost
}

// Ranking is the sorted result of a tuning Session: feasible points first
// in ascending cost order, infeasible points last in the order they were
// visited.
type Ranking struct {
	points []RankedPoint
}

// newRanking sorts points by ascending cost, with infeasible points
// ordered after every feasible one, preserving relative order among
// infeasible points (stable sort).
func newRanking(points []RankedPoint) Ranking {
	sorted := make([]RankedPoint, len(points))
	copy(sorted, points)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Cost, sorted[j].Cost
		if a.IsFeasible() != b.IsFeasible() {
			return a.IsFeasible()
		}
		if !a.IsFeasible() {
			return false
		}

		return a.Seconds() < b.Seconds()
	})

	return Ranking{points: sorted}
}

// Len returns the number of ranked points.
func (r Ranking) Len() int { return len(r.points) }

// Best returns the lowest-cost feasible point, or ok=false if every
// evaluated configuration was infeasible.
func (r Ranking) Best() (RankedPoint, bool) {
	if len(r.points) == 0 || !r.points[0].Cost.IsFeasible() {
		return RankedPoint{}, false
	}

	return r.points[0], true
}

// Points returns the full sorted list. The returned slice is owned by the
// caller.
func (r Ranking) Points() []RankedPoint {
	out := make([]RankedPoint, len(r.points))
	copy(out, r.points)

	return out
}
