package search_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kerntune/search"
	"github.com/stretchr/testify/require"
)

// linearCost is a simple unimodal landscape over buildLinearSpace(n):
// cost(i) = (i - target)^2, so PSO has a real gradient to climb down.
func linearCost(idx, target int) search.Cost {
	d := float64(idx - target)

	return search.FeasibleCost(d * d)
}

// TestPSO_S6_GlobalBestNonIncreasing reproduces the shape of scenario S6:
// across a full run, the recorded global-best cost never increases.
func TestPSO_S6_GlobalBestNonIncreasing(t *testing.T) {
	sp := buildLinearSpace(t, 60)
	target := 37

	p, err := search.NewPSO(sp, search.PSOOptions{
		Fraction: 1.0, Swarms: 5, W: 0.7, C1: 1.4, C2: 1.4, Seed: 5,
	})
	require.NoError(t, err)

	best := math.Inf(1)
	for !p.Done() {
		idx := p.Configuration()
		p.Report(linearCost(idx, target))
		p.Next()

		_, gbest, ok := p.GlobalBest()
		if ok {
			require.LessOrEqual(t, gbest, best+1e-9)
			best = gbest
		}
	}

	require.Equal(t, p.Budget(), len(p.History()))
}

// TestPSO_PositionsStayInBounds verifies every emitted index decodes to a
// position vector within each parameter's value-list bounds.
func TestPSO_PositionsStayInBounds(t *testing.T) {
	sp := buildGridSpace(t, 5, 4)

	p, err := search.NewPSO(sp, search.PSOOptions{
		Fraction: 1.0, Swarms: 3, W: 0.5, C1: 1.5, C2: 1.5, Seed: 9,
	})
	require.NoError(t, err)

	for !p.Done() {
		idx := p.Configuration()
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, sp.Len())

		positions := sp.Positions(idx)
		for axis, pos := range positions {
			require.GreaterOrEqual(t, pos, 0)
			require.Less(t, pos, sp.Registry().At(axis).Len())
		}

		p.Report(linearCost(idx, 10))
		p.Next()
	}
}

// TestPSO_Determinism verifies fixed seed + fixed space reproduces an
// identical emission sequence across two independent runs.
func TestPSO_Determinism(t *testing.T) {
	sp := buildLinearSpace(t, 40)

	run := func(seed uint64) []search.MeasuredPoint {
		p, err := search.NewPSO(sp, search.PSOOptions{
			Fraction: 1.0, Swarms: 4, W: 0.6, C1: 1.2, C2: 1.2, Seed: seed,
		})
		require.NoError(t, err)

		for !p.Done() {
			idx := p.Configuration()
			p.Report(linearCost(idx, 20))
			p.Next()
		}

		return p.History()
	}

	require.Equal(t, run(77), run(77))
}

// TestPSO_BudgetAtLeastSwarms verifies budget is never smaller than the
// swarm size, since every particle needs at least one turn.
func TestPSO_BudgetAtLeastSwarms(t *testing.T) {
	sp := buildLinearSpace(t, 3)

	p, err := search.NewPSO(sp, search.PSOOptions{
		Fraction: 0.01, Swarms: 6, W: 0.5, C1: 1, C2: 1, Seed: 1,
	})
	require.NoError(t, err)

	require.GreaterOrEqual(t, p.Budget(), 6)
}

// TestPSO_InvalidOptions verifies option validation across every bound.
func TestPSO_InvalidOptions(t *testing.T) {
	sp := buildLinearSpace(t, 10)

	cases := []search.PSOOptions{
		{Fraction: 0, Swarms: 1, W: 0.5, C1: 1, C2: 1},
		{Fraction: 1.5, Swarms: 1, W: 0.5, C1: 1, C2: 1},
		{Fraction: 0.5, Swarms: 0, W: 0.5, C1: 1, C2: 1},
		{Fraction: 0.5, Swarms: 1, W: -0.1, C1: 1, C2: 1},
		{Fraction: 0.5, Swarms: 1, W: 1.1, C1: 1, C2: 1},
		{Fraction: 0.5, Swarms: 1, W: 0.5, C1: 0, C2: 1},
		{Fraction: 0.5, Swarms: 1, W: 0.5, C1: 1, C2: 0},
		{Fraction: 0.5, Swarms: 1, W: 0.5, C1: 3, C2: 3},
	}

	for _, opts := range cases {
		_, err := search.NewPSO(sp, opts)
		require.ErrorIs(t, err, search.ErrInvalidStrategyOptions)
	}
}
