package search_test

import (
	"testing"

	"github.com/katalvlaran/kerntune/space"
	"github.com/stretchr/testify/require"
)

// buildLinearSpace returns a single-parameter space with n configurations
// whose index equals the parameter's value (0..n-1), so cost(i) = i makes
// a trivially analyzable cost landscape for annealing tests.
func buildLinearSpace(t *testing.T, n int) *space.Space {
	t.Helper()

	values := make([]int64, n)
	for i := range values {
		values[i] = int64(i)
	}

	reg := space.NewRegistry()
	require.NoError(t, reg.AddParameter("X", values))

	sp, err := space.Build(reg, space.NewConstraintSet(reg))
	require.NoError(t, err)

	return sp
}

// buildGridSpace returns a two-parameter w x h space with no constraints.
func buildGridSpace(t *testing.T, w, h int) *space.Space {
	t.Helper()

	a := make([]int64, w)
	for i := range a {
		a[i] = int64(i)
	}
	b := make([]int64, h)
	for i := range b {
		b[i] = int64(i)
	}

	reg := space.NewRegistry()
	require.NoError(t, reg.AddParameter("A", a))
	require.NoError(t, reg.AddParameter("B", b))

	sp, err := space.Build(reg, space.NewConstraintSet(reg))
	require.NoError(t, err)

	return sp
}
