package resolver

import (
	"context"
	"fmt"
	api "folio/api-types"
	"folio/internal/domain"
	"folio/internal/service"
	"math"
	"time"
)

// ErrBadRequest marks errors caused by the request itself
type ErrBadRequest struct {
	Reason string
}

func (e ErrBadRequest) Error() string {
	return e.Reason
}

// json has no NaN
func floatPtr(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func (r resolverHandler) loadWindow(ctx context.Context, w api.PriceWindow) (*domain.PriceMatrix, int, error) {
	if len(w.Symbols) == 0 {
		return nil, 0, ErrBadRequest{Reason: "at least one symbol is required"}
	}
	period := w.Period
	if period == 0 {
		period = 1
	}
	if period < 0 {
		return nil, 0, ErrBadRequest{Reason: fmt.Sprintf("period must be positive, received %d", period)}
	}
	lookback := defaultLookback
	if w.LookbackDays > 0 {
		lookback = time.Duration(w.LookbackDays) * 24 * time.Hour
	}

	m, err := r.AnalyticsService.LoadPrices(ctx, w.Symbols, r.Now().Add(-lookback))
	if err != nil {
		return nil, 0, err
	}
	return m, period, nil
}

func periodStatisticsToApi(s domain.PeriodStatistics) api.PeriodStatistics {
	return api.PeriodStatistics{
		Period: s.Period,
		Count:  s.Count,
		Mean:   floatPtr(s.Mean),
		Stdev:  floatPtr(s.Stdev),
		Sharpe: floatPtr(s.Sharpe),
	}
}

func (r resolverHandler) Statistics(ctx context.Context, req api.StatisticsRequest) (*api.StatisticsResponse, error) {
	m, period, err := r.loadWindow(ctx, req.PriceWindow)
	if err != nil {
		return nil, err
	}

	table := r.AnalyticsService.Statistics(m, period, req.ExtraPeriods...)
	out := []api.SymbolStatistics{}
	for _, s := range table {
		stats := api.SymbolStatistics{
			Symbol:           s.Symbol,
			PeriodStatistics: periodStatisticsToApi(s.PeriodStatistics),
			Yield:            floatPtr(s.Yield),
			Drawdown:         floatPtr(s.Drawdown),
		}
		for _, e := range s.Extra {
			stats.Extra = append(stats.Extra, periodStatisticsToApi(e))
		}
		out = append(out, stats)
	}

	return &api.StatisticsResponse{
		Statistics: out,
	}, nil
}

func (r resolverHandler) CorrelationMatrix(ctx context.Context, req api.CorrelationMatrixRequest) (*api.CorrelationMatrixResponse, error) {
	if len(req.Symbols) < 2 {
		return nil, ErrBadRequest{Reason: "must provide at least two symbols"}
	}
	m, period, err := r.loadWindow(ctx, req.PriceWindow)
	if err != nil {
		return nil, err
	}

	corr, err := r.AnalyticsService.CorrelationMatrix(m, period)
	if err != nil {
		return nil, err
	}

	out := []api.Correlation{}
	for _, c := range corr.Pairs() {
		out = append(out, api.Correlation{
			AssetOne:    c.AssetOne,
			AssetTwo:    c.AssetTwo,
			Correlation: floatPtr(c.Correlation),
		})
	}

	return &api.CorrelationMatrixResponse{
		Correlations: out,
	}, nil
}

func basketToApi(b service.Basket) api.Basket {
	return api.Basket{
		Weights:    b.Weights,
		Mean:       floatPtr(b.Mean),
		Stdev:      floatPtr(b.Stdev),
		Sharpe:     floatPtr(b.Sharpe),
		Score:      floatPtr(b.Score),
		Converged:  b.Converged,
		Degenerate: b.Degenerate,
	}
}

func (r resolverHandler) OptimizePortfolio(ctx context.Context, req api.OptimizePortfolioRequest) (*api.OptimizePortfolioResponse, error) {
	if req.Lambda < -2 || req.Lambda > 2 {
		return nil, ErrBadRequest{Reason: fmt.Sprintf("lambda must be within [-2, 2], received %f", req.Lambda)}
	}
	m, period, err := r.loadWindow(ctx, req.PriceWindow)
	if err != nil {
		return nil, err
	}

	in := service.DefaultOptimizePortfolioInput()
	in.Period = period
	in.Lambda = req.Lambda
	if req.Total > 0 {
		in.Total = req.Total
	}
	if req.MinPercent > 0 {
		in.MinPercent = req.MinPercent
	}
	if req.MaxCount > 0 {
		in.MaxCount = req.MaxCount
	}
	if req.PositiveThreshold != 0 {
		in.PositiveThreshold = req.PositiveThreshold
	}
	if req.NegativeThreshold != 0 {
		in.NegativeThreshold = req.NegativeThreshold
	}

	baskets, err := r.AnalyticsService.OptimizePortfolio(m, in)
	if err != nil {
		return nil, err
	}

	out := &api.OptimizePortfolioResponse{
		Baskets: []api.Basket{},
	}
	for _, b := range baskets {
		out.Baskets = append(out.Baskets, basketToApi(b))
	}
	if len(out.Baskets) > 0 {
		best := out.Baskets[len(out.Baskets)-1]
		out.Best = &best
	}
	return out, nil
}

func (r resolverHandler) LeastCorrelatedPortfolio(ctx context.Context, req api.LeastCorrelatedPortfolioRequest) (*api.LeastCorrelatedPortfolioResponse, error) {
	if req.Size <= 0 {
		return nil, ErrBadRequest{Reason: "size must be positive"}
	}
	m, period, err := r.loadWindow(ctx, req.PriceWindow)
	if err != nil {
		return nil, err
	}

	symbols, err := r.AnalyticsService.LeastCorrelatedPortfolio(m, service.LeastCorrelatedInput{
		Period:            period,
		Size:              req.Size,
		Provided:          req.Provided,
		Optional:          req.Optional,
		CorrelationWeight: req.CorrelationWeight,
		DrawdownWeight:    req.DrawdownWeight,
		SharpeWeight:      req.SharpeWeight,
	})
	if err != nil {
		return nil, err
	}
	if symbols == nil {
		symbols = []string{}
	}

	return &api.LeastCorrelatedPortfolioResponse{
		Symbols: symbols,
	}, nil
}
