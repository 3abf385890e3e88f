package metrics

import (
	"folio/internal/domain"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newMatrix(t *testing.T, columns map[string][]float64) *domain.PriceMatrix {
	n := 0
	for _, c := range columns {
		n = len(c)
	}
	start := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	m, err := domain.NewPriceMatrix(dates, columns)
	require.NoError(t, err)
	return m
}

func TestPercentChange(t *testing.T) {
	t.Run("single period", func(t *testing.T) {
		out := PercentChange([]float64{100, 110, 99}, 1)
		require.Len(t, out, 2)
		require.InDelta(t, 10.0, out[0].AsPercent(), 1e-9)
		require.InDelta(t, -10.0, out[1].AsPercent(), 1e-9)
	})

	t.Run("multi period", func(t *testing.T) {
		out := PercentChange([]float64{100, 50, 120, 60}, 2)
		require.Len(t, out, 2)
		require.InDelta(t, 20.0, out[0].AsPercent(), 1e-9)
		require.InDelta(t, 20.0, out[1].AsPercent(), 1e-9)
	})

	t.Run("missing price", func(t *testing.T) {
		out := PercentChange([]float64{100, math.NaN(), 120}, 1)
		require.Equal(t, 0, out.Valid())
	})

	t.Run("too short", func(t *testing.T) {
		require.Empty(t, PercentChange([]float64{100}, 1))
	})
}

func TestRollingMean(t *testing.T) {
	out := RollingMean([]float64{1, 2, 3, 4}, 2)
	require.True(t, math.IsNaN(out[0]))
	require.Equal(t, []float64{1.5, 2.5, 3.5}, out[1:])
}

func TestMaxDrawdown(t *testing.T) {
	t.Run("monotone increasing has no drawdown", func(t *testing.T) {
		require.True(t, math.IsNaN(MaxDrawdown([]float64{1, 2, 3, 4})))
	})

	t.Run("monotone decreasing", func(t *testing.T) {
		require.InDelta(t, 75.0, MaxDrawdown([]float64{4, 3, 2, 1}), 1e-9)
	})

	t.Run("largest absolute drop wins", func(t *testing.T) {
		// 10 -> 5 is 50%, 100 -> 60 is 40% but a larger drop
		require.InDelta(t, 40.0, MaxDrawdown([]float64{10, 5, 100, 60}), 1e-9)
	})

	t.Run("skips missing", func(t *testing.T) {
		require.InDelta(t, 50.0, MaxDrawdown([]float64{math.NaN(), 10, math.NaN(), 5}), 1e-9)
	})
}

func TestYield(t *testing.T) {
	require.InDelta(t, 10.0, Yield([]float64{100, 90, 110}), 1e-9)
	require.InDelta(t, -50.0, Yield([]float64{math.NaN(), 100, 50, math.NaN()}), 1e-9)
	require.True(t, math.IsNaN(Yield([]float64{math.NaN()})))
}

func TestStatistics(t *testing.T) {
	t.Run("two prices", func(t *testing.T) {
		m := newMatrix(t, map[string][]float64{"SPY": {100, 110}})
		table := Statistics(m, StatisticsInput{Period: 1})
		require.Len(t, table, 1)

		s := table[0]
		require.Equal(t, "SPY", s.Symbol)
		require.Equal(t, 1, s.Count)
		require.InDelta(t, 10.0, s.Mean, 1e-9)
		require.True(t, math.IsNaN(s.Stdev))
		require.True(t, math.IsNaN(s.Sharpe))
		require.InDelta(t, 10.0, s.Yield, 1e-9)
		require.False(t, s.HasDrawdown())
	})

	t.Run("sharpe with risk free rate", func(t *testing.T) {
		m := newMatrix(t, map[string][]float64{
			"A": {100, 110, 99, 108.9},
		})
		table := Statistics(m, StatisticsInput{Period: 1, RiskFreeRate: 25.2})
		s := table[0]

		// returns are 10, -10, 10
		require.Equal(t, 3, s.Count)
		require.InDelta(t, 10.0/3, s.Mean, 1e-9)
		stdev := math.Sqrt((2*math.Pow(10-10.0/3, 2) + math.Pow(-10-10.0/3, 2)) / 2)
		require.InDelta(t, stdev, s.Stdev, 1e-9)
		require.InDelta(t, (10.0/3-0.1)/stdev, s.Sharpe, 1e-9)
		require.InDelta(t, 10.0, s.Drawdown, 1e-9)
	})

	t.Run("sorted by sharpe", func(t *testing.T) {
		m := newMatrix(t, map[string][]float64{
			"FLAT": {100, 100, 100, 100},
			"UP":   {100, 102, 103, 106},
			"DOWN": {100, 98, 97, 94},
			"WILD": {100, 130, 90, 120},
		})
		table := Statistics(m, StatisticsInput{Period: 1})
		require.Equal(t, "UP", table[0].Symbol)
		require.Equal(t, "FLAT", table[3].Symbol)
		require.True(t, math.IsNaN(table[3].Sharpe))
	})

	t.Run("extra periods", func(t *testing.T) {
		m := newMatrix(t, map[string][]float64{"A": {100, 110, 121, 133.1}})
		table := Statistics(m, StatisticsInput{Period: 1, ExtraPeriods: []int{2}})
		require.Len(t, table[0].Extra, 1)

		extra := table[0].Extra[0]
		require.Equal(t, 2, extra.Period)
		require.Equal(t, 2, extra.Count)
		require.InDelta(t, 21.0, extra.Mean, 1e-9)
	})

	t.Run("smoothed", func(t *testing.T) {
		m := newMatrix(t, map[string][]float64{"A": {100, 110, 120, 130}})
		table := Statistics(m, StatisticsInput{Period: 2, Smooth: true})
		// rolling means are NaN, 105, 115, 125
		require.Equal(t, 1, table[0].Count)
		require.InDelta(t, 125.0/105*100-100, table[0].Mean, 1e-9)
	})

	t.Run("respects mask", func(t *testing.T) {
		m := newMatrix(t, map[string][]float64{
			"A": {100, 110},
			"B": {100, 120},
		})
		masked, err := m.Mask("B")
		require.NoError(t, err)
		require.Equal(t, []string{"B"}, Statistics(masked, StatisticsInput{Period: 1}).Symbols())
	})
}
