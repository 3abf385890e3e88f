package service

import (
	"fmt"
	"folio/internal/domain"
	"folio/internal/metrics"
	"folio/internal/optimizer"
	"folio/internal/util"
	"math"
	"sort"

	"github.com/rs/zerolog"
)

type LeastCorrelatedInput struct {
	Period int
	// number of symbols in the portfolio
	Size int
	// symbols that must be in the portfolio
	Provided []string
	// indexes into Provided. each one is dropped in turn and
	// banned from the search, keeping the best overall
	Optional []int

	CorrelationWeight float64
	DrawdownWeight    float64
	SharpeWeight      float64
}

type OptimizePortfolioInput struct {
	Period int
	// defaults to every visible symbol in the matrix
	Candidates []string
	// budget the weights sum to, 1 if unset
	Total float64
	// smallest weight a basket may hold, as a fraction of Total
	MinPercent float64
	// most symbols a basket may hold, unlimited if unset
	MaxCount int
	// an evicted symbol correlated above PositiveThreshold or
	// below NegativeThreshold with what remains is retried later
	PositiveThreshold float64
	NegativeThreshold float64
	// trades Sharpe against mean return, in [-2, 2]
	Lambda float64
}

// Basket is a candidate portfolio from one round of selection
type Basket struct {
	Weights    domain.Weights
	Mean       float64
	Stdev      float64
	Sharpe     float64
	Score      float64
	Converged  bool
	Degenerate bool

	// correlation thresholds of the round that produced it
	PositiveThreshold float64
	NegativeThreshold float64
}

func DefaultOptimizePortfolioInput() OptimizePortfolioInput {
	return OptimizePortfolioInput{
		Period:            5,
		Total:             1,
		MinPercent:        0.05,
		MaxCount:          12,
		PositiveThreshold: 0.9,
		NegativeThreshold: -0.5,
		Lambda:            0,
	}
}

// dfsScoreBase returns the constant subtracted from each component
// of a portfolio score of the given size
func dfsScoreBase(size int) float64 {
	if size == 1 {
		return 0.8
	}
	return 0.1 * float64(size-1)
}

func nanToZero(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}

type leastCorrelatedSearch struct {
	universe []string
	corr     domain.CorrelationMatrix
	stats    map[string]domain.SymbolStatistics
	in       LeastCorrelatedInput

	buf       []string
	best      []string
	bestScore float64
}

// score is lower for portfolios that are less correlated, draw
// down less and have higher Sharpe ratios
func (s *leastCorrelatedSearch) score(symbols []string) float64 {
	n := len(symbols)
	b := dfsScoreBase(n)

	avgCorr := 0.0
	if n > 1 {
		total := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				c, _ := s.corr.Get(symbols[i], symbols[j])
				total += nanToZero(c)
			}
		}
		avgCorr = total / float64(n*(n-1)/2)
	}

	avgDrawdown, avgSharpe := 0.0, 0.0
	for _, symbol := range symbols {
		st := s.stats[symbol]
		avgDrawdown += nanToZero(st.Drawdown)
		avgSharpe += nanToZero(st.Sharpe)
	}
	avgDrawdown /= float64(n)
	avgSharpe /= float64(n)

	return s.in.CorrelationWeight*(avgCorr-b) +
		s.in.DrawdownWeight*(avgDrawdown-b) -
		s.in.SharpeWeight*(avgSharpe-b)
}

func (s *leastCorrelatedSearch) contains(symbol string) bool {
	for _, b := range s.buf {
		if b == symbol {
			return true
		}
	}
	return false
}

func (s *leastCorrelatedSearch) dfs(i int, ban string) {
	if len(s.buf) == s.in.Size {
		score := s.score(s.buf)
		if score < s.bestScore {
			s.best = append([]string{}, s.buf...)
			s.bestScore = score
		}
		return
	}
	for j := i; j < len(s.universe); j++ {
		symbol := s.universe[j]
		if symbol == ban || s.contains(symbol) {
			continue
		}
		s.buf = append(s.buf, symbol)
		s.dfs(j+1, ban)
		s.buf = s.buf[:len(s.buf)-1]
	}
}

// leastCorrelatedPortfolio searches every portfolio of the
// requested size drawn from the universe and returns the lowest
// scoring one, sorted. nil when no portfolio can be formed.
func leastCorrelatedPortfolio(
	universe []string,
	corr domain.CorrelationMatrix,
	stats domain.StatisticsTable,
	in LeastCorrelatedInput,
) ([]string, error) {
	if len(universe) == 0 || in.Size <= 0 {
		return nil, nil
	}
	for _, o := range in.Optional {
		if o < 0 || o >= len(in.Provided) {
			return nil, fmt.Errorf("optional index %d out of range for %d provided symbols", o, len(in.Provided))
		}
	}

	s := &leastCorrelatedSearch{
		universe:  universe,
		corr:      corr,
		stats:     stats.BySymbol(),
		in:        in,
		buf:       append([]string{}, in.Provided...),
		bestScore: math.Inf(1),
	}

	if len(in.Optional) > 0 {
		for _, o := range in.Optional {
			banned := in.Provided[o]
			s.buf = append(append([]string{}, in.Provided[:o]...), in.Provided[o+1:]...)
			s.dfs(0, banned)
		}
	} else {
		s.dfs(0, "")
	}

	if s.best == nil {
		return nil, nil
	}
	sort.Strings(s.best)
	return s.best, nil
}

// basketScore rewards Sharpe, tilted towards higher or lower mean
// returns by lambda. Undefined scores (negative mean with a
// fractional power) are NaN.
func basketScore(sharpe, mean, lambda float64) float64 {
	return sharpe * math.Pow(mean, lambda/5)
}

type portfolioSelector struct {
	prices *domain.PriceMatrix
	corr   domain.CorrelationMatrix
	stats  map[string]domain.SymbolStatistics
	in     OptimizePortfolioInput
	rf     float64
	logger zerolog.Logger

	baskets []Basket
}

func (s *portfolioSelector) record(b Basket) {
	b.Score = basketScore(b.Sharpe, b.Mean, s.in.Lambda)
	if math.IsNaN(b.Score) {
		s.logger.Debug().
			Strs("symbols", b.Weights.Symbols()).
			Float64("sharpe", b.Sharpe).
			Float64("mean", b.Mean).
			Msg("discarding basket with undefined score")
		return
	}
	s.logger.Debug().
		Strs("symbols", b.Weights.Symbols()).
		Float64("score", b.Score).
		Float64("positiveThreshold", b.PositiveThreshold).
		Msg("recorded basket")
	s.baskets = append(s.baskets, b)
}

func (s *portfolioSelector) singleBasket(symbol string, posT, negT float64) Basket {
	st := s.stats[symbol]
	return Basket{
		Weights:           domain.Weights{symbol: s.in.Total},
		Mean:              util.Round(st.Mean, 3),
		Stdev:             util.Round(st.Stdev, 3),
		Sharpe:            util.Round(st.Sharpe, 3),
		Converged:         true,
		PositiveThreshold: posT,
		NegativeThreshold: negT,
	}
}

// run evicts the smallest holding until the optimal allocation of
// what remains satisfies the count and weight limits. Evicted
// symbols that are strongly correlated with the survivors are
// retried afterwards with relaxed thresholds.
func (s *portfolioSelector) run(candidates []string, posT, negT float64) error {
	remaining := util.NewSet(candidates...)
	backlog := util.NewSet()
	minWeight := s.in.MinPercent * s.in.Total

	for remaining.Length() > 0 {
		symbols := remaining.List()
		if len(symbols) == 1 {
			s.record(s.singleBasket(symbols[0], posT, negT))
			break
		}

		masked, err := s.prices.Mask(symbols...)
		if err != nil {
			return err
		}
		frontier, err := optimizer.NewFrontierFromPrices(masked, s.in.Period, s.rf, &s.logger)
		if err != nil {
			return err
		}
		allocation := frontier.FindOptimalRatio(s.in.Total)
		weakest, weight := allocation.Weights.Smallest()
		if weakest == "" {
			// every weight is undefined
			weakest = symbols[0]
		}

		feasible := !math.IsNaN(allocation.Mean) && !math.IsNaN(allocation.Stdev)
		withinCount := s.in.MaxCount <= 0 || len(symbols) <= s.in.MaxCount
		if feasible && weight >= minWeight && withinCount {
			s.record(Basket{
				Weights:           allocation.Weights,
				Mean:              allocation.Mean,
				Stdev:             allocation.Stdev,
				Sharpe:            allocation.Sharpe,
				Converged:         allocation.Converged,
				Degenerate:        allocation.Degenerate,
				PositiveThreshold: posT,
				NegativeThreshold: negT,
			})
			break
		}

		remaining.Remove(weakest)
		hi, lo, ok := s.corr.Extremes(weakest, remaining.List())
		retry := ok && (hi > posT || lo < negT)
		if retry {
			backlog.Add(weakest)
		}
		s.logger.Debug().
			Str("symbol", weakest).
			Float64("weight", weight).
			Int("remaining", remaining.Length()).
			Bool("backlog", retry).
			Msg("evicted")
	}

	if backlog.Length() == 0 {
		return nil
	}

	nextPos, nextNeg := relaxThresholds(posT, negT, backlog.Length(), s.in.MaxCount)
	return s.run(backlog.List(), nextPos, nextNeg)
}

// relaxThresholds widens the correlation band for a backlog retry.
// Near 1 the positive threshold creeps up slowly while the backlog
// is still larger than a basket can hold.
func relaxThresholds(posT, negT float64, backlog, maxCount int) (float64, float64) {
	if posT >= 0.99 && backlog > maxCount {
		return posT + 0.001, negT - 0.01
	}
	return posT + 0.005, negT - 0.01
}

// rank keeps baskets scoring within 10% of the best and sorts
// them ascending by score, then Sharpe, then mean. The best basket
// is last.
func rankBaskets(baskets []Basket) []Basket {
	if len(baskets) == 0 {
		return []Basket{}
	}
	best := math.Inf(-1)
	for _, b := range baskets {
		best = math.Max(best, b.Score)
	}
	cutoff := best - 0.1*math.Abs(best)

	out := []Basket{}
	for _, b := range baskets {
		if b.Score >= cutoff {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		if out[i].Sharpe != out[j].Sharpe {
			return out[i].Sharpe < out[j].Sharpe
		}
		return out[i].Mean < out[j].Mean
	})
	return out
}

func optimizePortfolio(
	m *domain.PriceMatrix,
	in OptimizePortfolioInput,
	rf float64,
	logger zerolog.Logger,
) ([]Basket, error) {
	if in.Total == 0 {
		in.Total = 1
	}
	if in.Lambda < -2 || in.Lambda > 2 {
		return nil, fmt.Errorf("lambda must be within [-2, 2], received %f", in.Lambda)
	}
	if in.Period < 1 {
		return nil, fmt.Errorf("period must be positive, received %d", in.Period)
	}

	candidates := in.Candidates
	if len(candidates) == 0 {
		candidates = m.Symbols()
	}
	candidates = util.NewSet(candidates...).List()
	if len(candidates) == 0 {
		return []Basket{}, nil
	}

	masked, err := m.Mask(candidates...)
	if err != nil {
		return nil, err
	}
	corr, err := metrics.CorrelationMatrix(masked, in.Period)
	if err != nil {
		return nil, err
	}
	// raw returns, the same series the frontier is estimated from
	stats := metrics.Statistics(masked, metrics.StatisticsInput{
		Period:       in.Period,
		RiskFreeRate: rf,
	})

	s := &portfolioSelector{
		prices: masked.Unmask(),
		corr:   corr,
		stats:  stats.BySymbol(),
		in:     in,
		rf:     rf,
		logger: logger,
	}
	err = s.run(candidates, in.PositiveThreshold, in.NegativeThreshold)
	if err != nil {
		return nil, err
	}

	return rankBaskets(s.baskets), nil
}
