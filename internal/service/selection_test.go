package service

import (
	"errors"
	folio_errors "folio/internal"
	"folio/internal/domain"
	"folio/internal/metrics"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)

func testDates(n int) []time.Time {
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = testStart.AddDate(0, 0, i)
	}
	return dates
}

func newMatrix(t *testing.T, columns map[string][]float64) *domain.PriceMatrix {
	n := 0
	for _, c := range columns {
		n = len(c)
	}
	m, err := domain.NewPriceMatrix(testDates(n), columns)
	require.NoError(t, err)
	return m
}

type walk struct {
	symbol string
	drift  float64
	vol    float64
}

// randomWalks builds deterministic geometric random walks
func randomWalks(t *testing.T, seed int64, n int, walks ...walk) *domain.PriceMatrix {
	r := rand.New(rand.NewSource(seed))
	columns := map[string][]float64{}
	for _, w := range walks {
		prices := make([]float64, n)
		prices[0] = 100
		for i := 1; i < n; i++ {
			prices[i] = prices[i-1] * (1 + w.drift + w.vol*r.NormFloat64())
		}
		columns[w.symbol] = prices
	}
	return newMatrix(t, columns)
}

func TestLeastCorrelatedPortfolio(t *testing.T) {
	service := NewAnalyticsService(DefaultAnalyticsConfig(), nil)
	r := rand.New(rand.NewSource(7))
	a, c := make([]float64, 60), make([]float64, 60)
	a[0], c[0] = 100, 50
	for i := 1; i < 60; i++ {
		a[i] = a[i-1] * (1 + 0.01*r.NormFloat64())
		c[i] = c[i-1] * (1 + 0.01*r.NormFloat64())
	}
	b := make([]float64, 60)
	for i := range a {
		b[i] = 2 * a[i]
	}
	m := newMatrix(t, map[string][]float64{"A": a, "B": b, "C": c})

	t.Run("full size returns every symbol", func(t *testing.T) {
		out, err := service.LeastCorrelatedPortfolio(m, LeastCorrelatedInput{
			Period:            1,
			Size:              3,
			CorrelationWeight: 1,
			DrawdownWeight:    1,
			SharpeWeight:      1,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "C"}, out)
	})

	t.Run("avoids the correlated pair", func(t *testing.T) {
		out, err := service.LeastCorrelatedPortfolio(m, LeastCorrelatedInput{
			Period:            1,
			Size:              2,
			CorrelationWeight: 1,
		})
		require.NoError(t, err)
		// A and B tie against C, the first found is kept
		require.Equal(t, []string{"A", "C"}, out)
	})

	t.Run("provided members are kept", func(t *testing.T) {
		out, err := service.LeastCorrelatedPortfolio(m, LeastCorrelatedInput{
			Period:            1,
			Size:              2,
			Provided:          []string{"B"},
			CorrelationWeight: 1,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"B", "C"}, out)
	})

	t.Run("optional member is banned", func(t *testing.T) {
		out, err := service.LeastCorrelatedPortfolio(m, LeastCorrelatedInput{
			Period:            1,
			Size:              2,
			Provided:          []string{"A", "B"},
			Optional:          []int{1},
			CorrelationWeight: 1,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"A", "C"}, out)
	})

	t.Run("optional index out of range", func(t *testing.T) {
		_, err := service.LeastCorrelatedPortfolio(m, LeastCorrelatedInput{
			Period:   1,
			Size:     2,
			Provided: []string{"A"},
			Optional: []int{3},
		})
		require.Error(t, err)
	})

	t.Run("unknown provided symbol", func(t *testing.T) {
		_, err := service.LeastCorrelatedPortfolio(m, LeastCorrelatedInput{
			Period:   1,
			Size:     2,
			Provided: []string{"ZZZ", "A"},
		})
		var notFound folio_errors.ErrSymbolNotFound
		require.True(t, errors.As(err, &notFound))
		if diff := cmp.Diff([]string{"ZZZ"}, notFound.Symbols); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("empty universe", func(t *testing.T) {
		empty, err := domain.NewPriceMatrix(testDates(3), map[string][]float64{})
		require.NoError(t, err)
		out, err := service.LeastCorrelatedPortfolio(empty, LeastCorrelatedInput{Period: 1, Size: 2})
		require.NoError(t, err)
		require.Nil(t, out)
	})

	t.Run("size larger than universe", func(t *testing.T) {
		out, err := service.LeastCorrelatedPortfolio(m, LeastCorrelatedInput{Period: 1, Size: 4})
		require.NoError(t, err)
		require.Nil(t, out)
	})
}

func Test_dfsScoreBase(t *testing.T) {
	require.Equal(t, 0.8, dfsScoreBase(1))
	require.InDelta(t, 0.1, dfsScoreBase(2), 1e-12)
	require.InDelta(t, 0.4, dfsScoreBase(5), 1e-12)
}

func Test_leastCorrelatedSearch_score(t *testing.T) {
	corr := domain.NewCorrelationMatrix([]string{"A", "B"}, [][]float64{
		{1, 0.5},
		{0.5, 1},
	})
	s := leastCorrelatedSearch{
		corr: corr,
		stats: map[string]domain.SymbolStatistics{
			"A": {Symbol: "A", PeriodStatistics: domain.PeriodStatistics{Sharpe: 1}, Drawdown: 20},
			"B": {Symbol: "B", PeriodStatistics: domain.PeriodStatistics{Sharpe: math.NaN()}, Drawdown: math.NaN()},
		},
		in: LeastCorrelatedInput{CorrelationWeight: 1, DrawdownWeight: 2, SharpeWeight: 3},
	}

	// b = 0.1, avgCorr 0.5, avgDrawdown 10 percent, avgSharpe 0.5
	expected := 1*(0.5-0.1) + 2*(10-0.1) - 3*(0.5-0.1)
	require.InDelta(t, expected, s.score([]string{"A", "B"}), 1e-12)

	// b = 0.8 for a single member, no pairs
	expected = 1*(0-0.8) + 2*(20-0.8) - 3*(1-0.8)
	require.InDelta(t, expected, s.score([]string{"A"}), 1e-12)
}

func Test_basketScore(t *testing.T) {
	require.InDelta(t, 1.5, basketScore(1.5, 3, 0), 1e-12)
	require.InDelta(t, 1.5*math.Pow(4, 0.2), basketScore(1.5, 4, 1), 1e-12)
	require.True(t, math.IsNaN(basketScore(1.5, -1, 1)))
}

func Test_rankBaskets(t *testing.T) {
	t.Run("keeps baskets near the best", func(t *testing.T) {
		out := rankBaskets([]Basket{
			{Weights: domain.Weights{"A": 1}, Score: 2, Sharpe: 2, Mean: 1},
			{Weights: domain.Weights{"B": 1}, Score: 1.5, Sharpe: 1.5, Mean: 1},
			{Weights: domain.Weights{"C": 1}, Score: 1.9, Sharpe: 1.9, Mean: 1},
			{Weights: domain.Weights{"D": 1}, Score: 1.9, Sharpe: 1.95, Mean: 1},
		})
		require.Len(t, out, 3)
		require.Equal(t, []string{"C"}, out[0].Weights.Symbols())
		require.Equal(t, []string{"D"}, out[1].Weights.Symbols())
		require.Equal(t, []string{"A"}, out[2].Weights.Symbols())
	})

	t.Run("negative best", func(t *testing.T) {
		out := rankBaskets([]Basket{
			{Score: -1},
			{Score: -1.05},
			{Score: -1.2},
		})
		require.Len(t, out, 2)
		require.Equal(t, -1.05, out[0].Score)
		require.Equal(t, -1.0, out[1].Score)
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, []Basket{}, rankBaskets(nil))
	})
}

func TestOptimizePortfolio(t *testing.T) {
	service := NewAnalyticsService(DefaultAnalyticsConfig(), nil)
	m := randomWalks(t, 42, 250,
		walk{"AAA", 0.002, 0.010},
		walk{"BBB", 0.001, 0.015},
		walk{"CCC", 0.0015, 0.012},
		walk{"DDD", 0.0005, 0.020},
		walk{"EEE", 0.001, 0.008},
		walk{"FFF", 0.0008, 0.011},
	)

	t.Run("baskets respect limits", func(t *testing.T) {
		in := DefaultOptimizePortfolioInput()
		in.Period = 1
		in.MaxCount = 3
		in.MinPercent = 0.1
		in.Total = 100

		baskets, err := service.OptimizePortfolio(m, in)
		require.NoError(t, err)
		require.NotEmpty(t, baskets)

		for _, b := range baskets {
			require.InDelta(t, in.Total, b.Weights.Sum(), 0.01)
			if len(b.Weights) == 1 {
				continue
			}
			require.LessOrEqual(t, len(b.Weights), in.MaxCount)
			_, smallest := b.Weights.Smallest()
			require.GreaterOrEqual(t, smallest, in.MinPercent*in.Total)
		}

		best := baskets[len(baskets)-1]
		for _, b := range baskets {
			require.LessOrEqual(t, b.Score, best.Score)
		}
	})

	t.Run("masked universe", func(t *testing.T) {
		masked, err := m.Mask("AAA", "BBB")
		require.NoError(t, err)
		in := DefaultOptimizePortfolioInput()
		in.Period = 1

		baskets, err := service.OptimizePortfolio(masked, in)
		require.NoError(t, err)
		require.NotEmpty(t, baskets)
		for _, b := range baskets {
			for _, symbol := range b.Weights.Symbols() {
				require.Contains(t, []string{"AAA", "BBB"}, symbol)
			}
		}
	})

	t.Run("single candidate ignores smoothing", func(t *testing.T) {
		cfg := DefaultAnalyticsConfig()
		cfg.Smooth = true
		smoothed := NewAnalyticsService(cfg, nil)

		in := DefaultOptimizePortfolioInput()
		in.Candidates = []string{"AAA"}
		got, err := smoothed.OptimizePortfolio(m, in)
		require.NoError(t, err)
		expected, err := service.OptimizePortfolio(m, in)
		require.NoError(t, err)

		require.Len(t, got, 1)
		require.Equal(t, expected[0].Mean, got[0].Mean)
		require.Equal(t, expected[0].Sharpe, got[0].Sharpe)
	})

	t.Run("single candidate", func(t *testing.T) {
		in := DefaultOptimizePortfolioInput()
		in.Period = 1
		in.Candidates = []string{"AAA"}

		baskets, err := service.OptimizePortfolio(m, in)
		require.NoError(t, err)
		require.Len(t, baskets, 1)
		require.Equal(t, domain.Weights{"AAA": 1}, baskets[0].Weights)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		in := DefaultOptimizePortfolioInput()
		in.Candidates = []string{"AAA", "ZZZ"}
		_, err := service.OptimizePortfolio(m, in)
		var notFound folio_errors.ErrSymbolNotFound
		require.True(t, errors.As(err, &notFound))
	})

	t.Run("lambda out of range", func(t *testing.T) {
		in := DefaultOptimizePortfolioInput()
		in.Lambda = 3
		_, err := service.OptimizePortfolio(m, in)
		require.Error(t, err)
	})

	t.Run("empty universe", func(t *testing.T) {
		empty, err := domain.NewPriceMatrix(testDates(3), map[string][]float64{})
		require.NoError(t, err)
		baskets, err := service.OptimizePortfolio(empty, DefaultOptimizePortfolioInput())
		require.NoError(t, err)
		require.Empty(t, baskets)
	})
}

// newSelector scores baskets over every symbol of m with raw returns
func newSelector(t *testing.T, m *domain.PriceMatrix, in OptimizePortfolioInput) *portfolioSelector {
	corr, err := metrics.CorrelationMatrix(m, in.Period)
	require.NoError(t, err)
	stats := metrics.Statistics(m, metrics.StatisticsInput{Period: in.Period, RiskFreeRate: 2})
	return &portfolioSelector{
		prices: m,
		corr:   corr,
		stats:  stats.BySymbol(),
		in:     in,
		rf:     2,
		logger: zerolog.Nop(),
	}
}

// scaled returns base multiplied by factor at every date
func scaled(base []float64, factor float64) []float64 {
	out := make([]float64, len(base))
	for i, p := range base {
		out[i] = p * factor
	}
	return out
}

type thresholds struct {
	Pos float64
	Neg float64
}

func basketThresholds(baskets []Basket) []thresholds {
	out := []thresholds{}
	for _, b := range baskets {
		out = append(out, thresholds{Pos: b.PositiveThreshold, Neg: b.NegativeThreshold})
	}
	return out
}

func Test_portfolioSelector_backlog(t *testing.T) {
	base, ok := randomWalks(t, 11, 120, walk{"A", 0.001, 0.01}).Column("A")
	require.True(t, ok)
	approx := cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-9 })

	t.Run("evicted duplicate is retried at relaxed thresholds", func(t *testing.T) {
		m := newMatrix(t, map[string][]float64{
			"A":  base,
			"A2": scaled(base, 2),
		})
		in := DefaultOptimizePortfolioInput()
		in.Period = 1
		in.MaxCount = 1

		s := newSelector(t, m, in)
		require.NoError(t, s.run([]string{"A", "A2"}, 0.9, -0.5))

		require.Len(t, s.baskets, 2)
		for _, b := range s.baskets {
			require.Len(t, b.Weights, 1)
		}
		require.NotEqual(t, s.baskets[0].Weights.Symbols(), s.baskets[1].Weights.Symbols())
		expected := []thresholds{{0.9, -0.5}, {0.905, -0.51}}
		if diff := cmp.Diff(expected, basketThresholds(s.baskets), approx); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("uncorrelated evictions are dropped", func(t *testing.T) {
		m := randomWalks(t, 3, 120,
			walk{"X", 0.001, 0.01},
			walk{"Y", 0.001, 0.01},
		)
		in := DefaultOptimizePortfolioInput()
		in.Period = 1
		in.MaxCount = 1

		s := newSelector(t, m, in)
		s.corr = domain.NewCorrelationMatrix([]string{"X", "Y"}, [][]float64{{1, 0.2}, {0.2, 1}})
		require.NoError(t, s.run([]string{"X", "Y"}, 0.9, -0.5))
		require.Len(t, s.baskets, 1)
	})

	t.Run("threshold creeps near one while the backlog is large", func(t *testing.T) {
		m := newMatrix(t, map[string][]float64{
			"A":  base,
			"A2": scaled(base, 2),
			"A4": scaled(base, 4),
		})
		in := DefaultOptimizePortfolioInput()
		in.Period = 1
		in.MaxCount = 1

		s := newSelector(t, m, in)
		require.NoError(t, s.run([]string{"A", "A2", "A4"}, 0.99, -0.5))

		expected := []thresholds{{0.99, -0.5}, {0.991, -0.51}, {0.996, -0.52}}
		if diff := cmp.Diff(expected, basketThresholds(s.baskets), approx); diff != "" {
			t.Fatal(diff)
		}
	})
}

func Test_relaxThresholds(t *testing.T) {
	tests := []struct {
		name     string
		pos      float64
		backlog  int
		maxCount int
		wantPos  float64
	}{
		{name: "default step", pos: 0.9, backlog: 5, maxCount: 2, wantPos: 0.905},
		{name: "near one, large backlog", pos: 0.99, backlog: 5, maxCount: 2, wantPos: 0.991},
		{name: "near one, backlog fits", pos: 0.99, backlog: 2, maxCount: 2, wantPos: 0.995},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, neg := relaxThresholds(tt.pos, -0.5, tt.backlog, tt.maxCount)
			require.InDelta(t, tt.wantPos, pos, 1e-12)
			require.InDelta(t, -0.51, neg, 1e-12)
		})
	}
}
