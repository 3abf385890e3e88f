package service

import (
	"context"
	"fmt"
	folio_errors "folio/internal"
	"folio/internal/domain"
	"folio/internal/graph"
	"folio/internal/metrics"
	"folio/internal/optimizer"
	"folio/internal/prices"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// value every series starts at on a graph
	graphBase = 10000
	// name of the combined series on a graph
	PortfolioSeries = "Portfolio"
)

type AnalyticsConfig struct {
	// annual risk free rate, percent
	RiskFreeRate float64
	// yahoo, alphavantage or db
	PriceVendor string
	// compute returns over a period-wide rolling mean of price
	Smooth bool
	// instruments carrying this tag get the home market boost
	HomeTag string
	Logger  zerolog.Logger
	Now     func() time.Time
}

func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		RiskFreeRate: 2,
		PriceVendor:  prices.VendorYahoo,
		HomeTag:      "us",
		Logger:       zerolog.Nop(),
		Now:          time.Now,
	}
}

// AnalyticsConfigFromEnv starts from the defaults and applies
// RISK_FREE_RATE, PRICE_VENDOR, SMOOTH_PRICES and HOME_TAG when set.
func AnalyticsConfigFromEnv() (AnalyticsConfig, error) {
	cfg := DefaultAnalyticsConfig()
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		rf, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse RISK_FREE_RATE %q: %w", v, err)
		}
		cfg.RiskFreeRate = rf
	}
	if v := os.Getenv("PRICE_VENDOR"); v != "" {
		cfg.PriceVendor = strings.ToLower(v)
	}
	if v := os.Getenv("SMOOTH_PRICES"); v != "" {
		smooth, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse SMOOTH_PRICES %q: %w", v, err)
		}
		cfg.Smooth = smooth
	}
	if v := os.Getenv("HOME_TAG"); v != "" {
		cfg.HomeTag = v
	}
	return cfg, nil
}

type GraphResult struct {
	PNG        []byte
	Statistics domain.StatisticsTable
}

type AnalyticsService interface {
	LoadPrices(ctx context.Context, symbols []string, start time.Time) (*domain.PriceMatrix, error)

	Statistics(m *domain.PriceMatrix, period int, extraPeriods ...int) domain.StatisticsTable
	CorrelationMatrix(m *domain.PriceMatrix, period int) (domain.CorrelationMatrix, error)
	Optimize(m *domain.PriceMatrix, period int, target, total float64) (*optimizer.Allocation, error)
	FindOptimalRatio(m *domain.PriceMatrix, period int, total float64) (*optimizer.Allocation, error)

	LeastCorrelatedPortfolio(m *domain.PriceMatrix, in LeastCorrelatedInput) ([]string, error)
	OptimizePortfolio(m *domain.PriceMatrix, in OptimizePortfolioInput) ([]Basket, error)

	UpdateBoosts(m *domain.PriceMatrix, instruments []domain.Instrument, period int)
	Graph(m *domain.PriceMatrix, period int, portfolio domain.Weights) (*GraphResult, error)
}

type analyticsHandler struct {
	Config       AnalyticsConfig
	PriceFetcher prices.PriceFetcher
	logger       zerolog.Logger
}

func NewAnalyticsService(cfg AnalyticsConfig, fetcher prices.PriceFetcher) AnalyticsService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return analyticsHandler{
		Config:       cfg,
		PriceFetcher: fetcher,
		logger:       cfg.Logger.With().Str("component", "analytics").Logger(),
	}
}

func (h analyticsHandler) LoadPrices(ctx context.Context, symbols []string, start time.Time) (*domain.PriceMatrix, error) {
	if h.PriceFetcher == nil {
		return nil, fmt.Errorf("no price fetcher configured")
	}
	m, err := h.PriceFetcher.FetchPrices(ctx, symbols, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}
	return m, nil
}

func (h analyticsHandler) Statistics(m *domain.PriceMatrix, period int, extraPeriods ...int) domain.StatisticsTable {
	return metrics.Statistics(m, metrics.StatisticsInput{
		Period:       period,
		ExtraPeriods: extraPeriods,
		RiskFreeRate: h.Config.RiskFreeRate,
		Smooth:       h.Config.Smooth,
	})
}

func (h analyticsHandler) CorrelationMatrix(m *domain.PriceMatrix, period int) (domain.CorrelationMatrix, error) {
	return metrics.CorrelationMatrix(m, period)
}

func (h analyticsHandler) frontier(m *domain.PriceMatrix, period int) (*optimizer.Frontier, error) {
	f, err := optimizer.NewFrontierFromPrices(m, period, h.Config.RiskFreeRate, &h.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build efficient frontier: %w", err)
	}
	return f, nil
}

func (h analyticsHandler) Optimize(m *domain.PriceMatrix, period int, target, total float64) (*optimizer.Allocation, error) {
	if m.Width() == 0 {
		return &optimizer.Allocation{Weights: domain.Weights{}}, nil
	}
	f, err := h.frontier(m, period)
	if err != nil {
		return nil, err
	}
	allocation := f.Optimize(target, total)
	return &allocation, nil
}

func (h analyticsHandler) FindOptimalRatio(m *domain.PriceMatrix, period int, total float64) (*optimizer.Allocation, error) {
	if m.Width() == 0 {
		return &optimizer.Allocation{Weights: domain.Weights{}}, nil
	}
	f, err := h.frontier(m, period)
	if err != nil {
		return nil, err
	}
	allocation := f.FindOptimalRatio(total)
	return &allocation, nil
}

func (h analyticsHandler) LeastCorrelatedPortfolio(m *domain.PriceMatrix, in LeastCorrelatedInput) ([]string, error) {
	if m.Width() == 0 {
		return nil, nil
	}
	missing := []string{}
	for _, symbol := range in.Provided {
		if !m.Has(symbol) {
			missing = append(missing, symbol)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("failed to seed portfolio: %w", folio_errors.ErrSymbolNotFound{Symbols: missing})
	}
	corr, err := h.CorrelationMatrix(m, in.Period)
	if err != nil {
		return nil, err
	}
	stats := h.Statistics(m, in.Period)

	out, err := leastCorrelatedPortfolio(m.Symbols(), corr, stats, in)
	if err != nil {
		return nil, err
	}
	h.logger.Debug().Strs("symbols", out).Int("size", in.Size).Msg("least correlated portfolio")
	return out, nil
}

func (h analyticsHandler) OptimizePortfolio(m *domain.PriceMatrix, in OptimizePortfolioInput) ([]Basket, error) {
	if m.Width() == 0 && len(in.Candidates) == 0 {
		return []Basket{}, nil
	}
	baskets, err := optimizePortfolio(m, in, h.Config.RiskFreeRate, h.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize portfolio: %w", err)
	}
	if len(baskets) > 0 {
		best := baskets[len(baskets)-1]
		h.logger.Info().
			Int("baskets", len(baskets)).
			Strs("best", best.Weights.Symbols()).
			Float64("score", best.Score).
			Msg("portfolio selection complete")
	}
	return baskets, nil
}

func (h analyticsHandler) UpdateBoosts(m *domain.PriceMatrix, instruments []domain.Instrument, period int) {
	stats := h.Statistics(m.Unmask(), period).BySymbol()
	ScoreBoosts(instruments, stats, h.Config.HomeTag, h.Config.Now())
}

// normalize rescales a price series so its first valid price is
// graphBase. Series without any valid price stay NaN.
func normalize(series []float64) []float64 {
	out := make([]float64, len(series))
	base := math.NaN()
	for i, p := range series {
		if math.IsNaN(base) && !math.IsNaN(p) {
			base = p
		}
		out[i] = p / base * graphBase
	}
	return out
}

// portfolioValues sums normalized series by weight and rescales
// the result to start at graphBase. Dates where a held symbol is
// missing are NaN.
func portfolioValues(normalized map[string][]float64, weights domain.Weights, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		total := 0.0
		for symbol, w := range weights {
			total += w * normalized[symbol][i]
		}
		out[i] = total
	}
	return normalize(out)
}

func (h analyticsHandler) Graph(m *domain.PriceMatrix, period int, portfolio domain.Weights) (*GraphResult, error) {
	if m.Width() == 0 {
		return nil, fmt.Errorf("no symbols to graph")
	}
	if len(portfolio) > 0 {
		for _, symbol := range portfolio.Symbols() {
			if symbol == PortfolioSeries {
				return nil, fmt.Errorf("%s is reserved for the combined series", PortfolioSeries)
			}
		}
		if _, err := m.Mask(portfolio.Symbols()...); err != nil {
			return nil, err
		}
	}

	columns := map[string][]float64{}
	chart := graph.LineChart{
		Title: fmt.Sprintf("Growth of %d", graphBase),
		Dates: m.Dates(),
	}
	for _, symbol := range m.Symbols() {
		column, _ := m.Column(symbol)
		columns[symbol] = normalize(column)
		chart.Series = append(chart.Series, graph.Series{Name: symbol, Values: columns[symbol]})
	}

	if len(portfolio) > 0 {
		normalized := map[string][]float64{}
		for _, symbol := range portfolio.Symbols() {
			column, _ := m.Unmask().Column(symbol)
			normalized[symbol] = normalize(column)
		}
		values := portfolioValues(normalized, portfolio, m.Len())
		columns[PortfolioSeries] = values
		chart.Series = append(chart.Series, graph.Series{Name: PortfolioSeries, Values: values})
	}

	png, err := graph.RenderPNG(chart)
	if err != nil {
		return nil, fmt.Errorf("failed to render graph: %w", err)
	}

	normalizedMatrix, err := domain.NewPriceMatrix(m.Dates(), columns)
	if err != nil {
		return nil, err
	}

	return &GraphResult{
		PNG:        png,
		Statistics: h.Statistics(normalizedMatrix, period),
	}, nil
}
