package optimizer

import (
	"errors"
	folio_errors "folio/internal"
	"folio/internal/domain"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func newFrontier(t *testing.T, symbols []string, mean []float64, cov [][]float64) *Frontier {
	f, err := NewFrontier(Input{
		Symbols:    symbols,
		Mean:       mean,
		Covariance: cov,
		Period:     1,
	})
	require.NoError(t, err)
	return f
}

func TestFrontier_Weights(t *testing.T) {
	f := newFrontier(t,
		[]string{"A", "B", "C"},
		[]float64{1, 2, 3},
		[][]float64{
			{1, 0.2, 0.1},
			{0.2, 2, 0.3},
			{0.1, 0.3, 3},
		},
	)
	require.False(t, f.Degenerate())

	for _, tc := range []struct {
		target float64
		total  float64
	}{
		{target: 1.5, total: 1},
		{target: 2.5, total: 1},
		{target: 4, total: 1},
		{target: 2, total: 0.8},
	} {
		w := f.Weights(tc.target, tc.total)
		mean, _ := f.Moments(w)
		require.InDelta(t, tc.total, floats.Sum(w), 1e-9)
		require.InDelta(t, tc.target, mean, 1e-9)
	}
}

func TestFrontier_Optimize(t *testing.T) {
	t.Run("singular covariance", func(t *testing.T) {
		f := newFrontier(t,
			[]string{"A", "B", "C"},
			[]float64{1, 2, 3},
			[][]float64{
				{1, 0, 0},
				{0, 4, 0},
				{0, 0, 0},
			},
		)
		out := f.Optimize(1.5, 1)

		require.Equal(
			t,
			"",
			cmp.Diff(
				Allocation{
					Weights:   domain.Weights{"A": 0.5, "B": 0.5, "C": 0},
					Target:    1.5,
					Mean:      1.5,
					Stdev:     1.118,
					Sharpe:    1.342,
					Converged: true,
				},
				out,
				cmpopts.EquateApprox(0, 1e-9),
			),
		)
	})

	t.Run("symmetric assets get equal weights", func(t *testing.T) {
		f := newFrontier(t,
			[]string{"A", "B", "C"},
			[]float64{1, 1, 1},
			[][]float64{
				{2, 0.5, 0.5},
				{0.5, 2, 0.5},
				{0.5, 0.5, 2},
			},
		)
		require.True(t, f.Degenerate())

		out := f.Optimize(1, 1)
		require.True(t, out.Degenerate)
		for _, s := range []string{"A", "B", "C"} {
			require.Equal(t, 0.333, out.Weights[s])
		}
		require.Equal(t, 1.0, out.Mean)
	})

	t.Run("perfectly correlated pair", func(t *testing.T) {
		f := newFrontier(t,
			[]string{"A", "B"},
			[]float64{1, 2},
			[][]float64{
				{1, 1},
				{1, 1},
			},
		)
		require.True(t, f.Degenerate())
		out := f.Optimize(1.2, 1)
		require.Equal(t, domain.Weights{"A": 0.5, "B": 0.5}, out.Weights)
	})

	t.Run("risk free rate", func(t *testing.T) {
		f, err := NewFrontier(Input{
			Symbols:      []string{"A"},
			Mean:         []float64{2},
			Covariance:   [][]float64{{4}},
			Period:       5,
			RiskFreeRate: 50.4,
		})
		require.NoError(t, err)

		out := f.Optimize(2, 1)
		require.Equal(t, 1.0, out.Weights["A"])
		require.Equal(t, 2.0, out.Stdev)
		// 50.4 * 5 / 252 = 1
		require.Equal(t, 0.5, out.Sharpe)
	})
}

func TestFrontier_FindOptimalRatio(t *testing.T) {
	t.Run("uncorrelated pair", func(t *testing.T) {
		f := newFrontier(t,
			[]string{"A", "B"},
			[]float64{1, 2},
			[][]float64{
				{1, 0},
				{0, 1},
			},
		)
		out := f.FindOptimalRatio(1)
		require.True(t, out.Converged)
		require.InDelta(t, 5.0/3, out.Target, 1e-3)
		require.InDelta(t, 0.333, out.Weights["A"], 0.0011)
		require.InDelta(t, 0.667, out.Weights["B"], 0.0011)
	})

	t.Run("losing assets", func(t *testing.T) {
		f := newFrontier(t,
			[]string{"A", "B"},
			[]float64{-1, -2},
			[][]float64{
				{1, 0},
				{0, 1},
			},
		)
		out := f.FindOptimalRatio(1)
		require.InDelta(t, 1.0, out.Weights.Sum(), 0.01)
		require.GreaterOrEqual(t, out.Target, -2.0)
		require.LessOrEqual(t, out.Target, -1.0)
	})

	t.Run("single asset", func(t *testing.T) {
		f := newFrontier(t, []string{"A"}, []float64{1}, [][]float64{{1}})
		out := f.FindOptimalRatio(1)
		require.True(t, out.Converged)
		require.Equal(t, domain.Weights{"A": 1}, out.Weights)
	})
}

func TestNewFrontier(t *testing.T) {
	t.Run("no symbols", func(t *testing.T) {
		_, err := NewFrontier(Input{})
		require.Error(t, err)
	})

	t.Run("undefined mean", func(t *testing.T) {
		_, err := NewFrontier(Input{
			Symbols:    []string{"A", "B"},
			Mean:       []float64{1, math.NaN()},
			Covariance: [][]float64{{1, 0}, {0, math.NaN()}},
		})
		var insufficient folio_errors.ErrInsufficientData
		require.True(t, errors.As(err, &insufficient))
		require.Equal(t, "B", insufficient.Symbol)
	})

	t.Run("from prices", func(t *testing.T) {
		start := time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)
		dates := []time.Time{start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 2), start.AddDate(0, 0, 3)}
		m, err := domain.NewPriceMatrix(dates, map[string][]float64{
			"A": {100, 101, 103, 102},
			"B": {50, 49, 51, 52},
			"C": {10, 11, 10, 12},
		})
		require.NoError(t, err)
		masked, err := m.Mask("A", "B")
		require.NoError(t, err)

		f, err := NewFrontierFromPrices(masked, 1, 0, nil)
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, f.Symbols())

		w := f.Weights(1, 1)
		require.InDelta(t, 1.0, floats.Sum(w), 1e-9)
	})
}
