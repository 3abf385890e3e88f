package domain

import (
	"errors"
	folio_errors "folio/internal"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func days(n int) []time.Time {
	start := time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func testMatrix(t *testing.T) *PriceMatrix {
	m, err := NewPriceMatrix(days(3), map[string][]float64{
		"SPY":  {100, 101, 102},
		"AAPL": {10, 11, 12},
		"QQQ":  {50, math.NaN(), 52},
	})
	require.NoError(t, err)
	return m
}

func TestNewPriceMatrix(t *testing.T) {
	t.Run("sorts symbols", func(t *testing.T) {
		m := testMatrix(t)
		require.Equal(t, []string{"AAPL", "QQQ", "SPY"}, m.Symbols())
		require.Equal(t, 3, m.Len())
		require.Equal(t, 3, m.Width())
		require.False(t, m.IsMasked())
	})

	t.Run("rejects unordered dates", func(t *testing.T) {
		d := days(2)
		_, err := NewPriceMatrix([]time.Time{d[1], d[0]}, map[string][]float64{"SPY": {1, 2}})
		require.Error(t, err)
	})

	t.Run("rejects short column", func(t *testing.T) {
		_, err := NewPriceMatrix(days(2), map[string][]float64{"SPY": {1}})
		require.Error(t, err)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := NewPriceMatrix(days(2), map[string][]float64{"SPY": {1, 0}})
		require.Error(t, err)
	})

	t.Run("copies input", func(t *testing.T) {
		col := []float64{1, 2}
		m, err := NewPriceMatrix(days(2), map[string][]float64{"SPY": col})
		require.NoError(t, err)
		col[0] = 100

		got, ok := m.Column("SPY")
		require.True(t, ok)
		require.Equal(t, []float64{1, 2}, got)
	})
}

func TestNewPriceMatrixFromObservations(t *testing.T) {
	d := days(3)
	m, err := NewPriceMatrixFromObservations([]PriceObservation{
		{Symbol: "SPY", Date: d[0].Add(16 * time.Hour), Price: 100},
		{Symbol: "SPY", Date: d[2], Price: 102},
		{Symbol: "AAPL", Date: d[1], Price: 11},
	})
	require.NoError(t, err)

	require.Equal(t, d, m.Dates())
	spy, _ := m.Column("SPY")
	require.Equal(t, 100.0, spy[0])
	require.True(t, math.IsNaN(spy[1]))
	require.Equal(t, 102.0, spy[2])

	complete := m.DropIncomplete()
	require.Equal(t, 0, complete.Len())
}

func TestPriceMatrix_Mask(t *testing.T) {
	t.Run("restricts and sorts", func(t *testing.T) {
		m := testMatrix(t)
		masked, err := m.Mask("SPY", "AAPL", "SPY")
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL", "SPY"}, masked.Symbols())
		require.True(t, masked.IsMasked())
		require.False(t, masked.Has("QQQ"))
		require.Same(t, m, masked.Unmask())
	})

	t.Run("round trip", func(t *testing.T) {
		m := testMatrix(t)
		a, err := m.Mask("SPY")
		require.NoError(t, err)
		viaA, err := a.Unmask().Mask("AAPL", "QQQ")
		require.NoError(t, err)
		direct, err := m.Mask("AAPL", "QQQ")
		require.NoError(t, err)

		require.Equal(t, direct.Symbols(), viaA.Symbols())
		require.Same(t, direct.Unmask(), viaA.Unmask())
	})

	t.Run("masking a view is relative to origin", func(t *testing.T) {
		m := testMatrix(t)
		a, err := m.Mask("SPY")
		require.NoError(t, err)
		b, err := a.Mask("AAPL")
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL"}, b.Symbols())
		require.Same(t, m, b.Unmask())
	})

	t.Run("unmask on origin is a no-op", func(t *testing.T) {
		m := testMatrix(t)
		require.Same(t, m, m.Unmask())
	})

	t.Run("unknown symbol", func(t *testing.T) {
		m := testMatrix(t)
		_, err := m.Mask("SPY", "TSLA", "GME")
		require.Error(t, err)

		var notFound folio_errors.ErrSymbolNotFound
		require.True(t, errors.As(err, &notFound))
		if diff := cmp.Diff([]string{"GME", "TSLA"}, notFound.Symbols); diff != "" {
			t.Errorf("missing symbols mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPriceMatrix_Since(t *testing.T) {
	m := testMatrix(t)
	masked, err := m.Mask("SPY")
	require.NoError(t, err)

	recent := masked.Since(days(3)[1])
	require.False(t, recent.IsMasked())
	require.Equal(t, []string{"SPY"}, recent.Symbols())
	col, _ := recent.Column("SPY")
	require.Equal(t, []float64{101, 102}, col)
}

func TestStatisticsTable_SortBySharpe(t *testing.T) {
	table := StatisticsTable{
		{Symbol: "A", PeriodStatistics: PeriodStatistics{Sharpe: math.NaN()}},
		{Symbol: "B", PeriodStatistics: PeriodStatistics{Sharpe: 0.5}},
		{Symbol: "C", PeriodStatistics: PeriodStatistics{Sharpe: 1.5}},
	}
	table.SortBySharpe()
	require.Equal(t, []string{"C", "B", "A"}, table.Symbols())
}

func TestWeights_Smallest(t *testing.T) {
	w := Weights{"A": 0.5, "B": 0.1, "C": 0.1, "D": 0.3}
	symbol, min := w.Smallest()
	require.Equal(t, "B", symbol)
	require.Equal(t, 0.1, min)
	require.InDelta(t, 1.0, w.Sum(), 1e-12)
}

func TestCorrelationMatrix_ExtremesBasic(t *testing.T) {
	c := NewCorrelationMatrix([]string{"A", "B", "C"}, [][]float64{
		{1, 0.9, -0.2},
		{0.9, 1, 0.1},
		{-0.2, 0.1, 1},
	})
	max, min, ok := c.Extremes("A", []string{"A", "B", "C"})
	require.True(t, ok)
	require.Equal(t, 0.9, max)
	require.Equal(t, -0.2, min)

	_, _, ok = c.Extremes("A", []string{"A"})
	require.False(t, ok)

	require.Len(t, c.Pairs(), 3)
}
