package optimizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_minimizeBounded(t *testing.T) {
	t.Run("interior minimum", func(t *testing.T) {
		out := minimizeBounded(func(x float64) float64 {
			return (x - 2) * (x - 2)
		}, 0, 5, defaultXTol, defaultMaxEval)
		require.True(t, out.Converged)
		require.InDelta(t, 2.0, out.X, 1e-4)
		require.InDelta(t, 0.0, out.F, 1e-8)
	})

	t.Run("minimum on the boundary", func(t *testing.T) {
		out := minimizeBounded(func(x float64) float64 {
			return x
		}, 1, 3, defaultXTol, defaultMaxEval)
		require.True(t, out.Converged)
		require.InDelta(t, 1.0, out.X, 1e-4)
	})

	t.Run("infinite region", func(t *testing.T) {
		out := minimizeBounded(func(x float64) float64 {
			if x < 1 {
				return math.Inf(1)
			}
			return (x - 1.5) * (x - 1.5)
		}, 0, 2, defaultXTol, defaultMaxEval)
		require.True(t, out.Converged)
		require.InDelta(t, 1.5, out.X, 1e-4)
	})

	t.Run("collapsed interval", func(t *testing.T) {
		out := minimizeBounded(func(x float64) float64 {
			return x * x
		}, 4, 4, defaultXTol, defaultMaxEval)
		require.True(t, out.Converged)
		require.Equal(t, 4.0, out.X)
		require.Equal(t, 1, out.Evals)
	})

	t.Run("evaluation limit", func(t *testing.T) {
		out := minimizeBounded(func(x float64) float64 {
			return math.Sin(x)
		}, 0, 100, 1e-12, 3)
		require.False(t, out.Converged)
		require.Equal(t, 3, out.Evals)
	})
}
