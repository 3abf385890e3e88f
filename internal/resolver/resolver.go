package resolver

import (
	"context"
	api "folio/api-types"
	"folio/internal/service"
	"time"
)

const defaultLookback = 3 * 365 * 24 * time.Hour

type Resolver interface {
	Statistics(ctx context.Context, req api.StatisticsRequest) (*api.StatisticsResponse, error)
	CorrelationMatrix(ctx context.Context, req api.CorrelationMatrixRequest) (*api.CorrelationMatrixResponse, error)
	OptimizePortfolio(ctx context.Context, req api.OptimizePortfolioRequest) (*api.OptimizePortfolioResponse, error)
	LeastCorrelatedPortfolio(ctx context.Context, req api.LeastCorrelatedPortfolioRequest) (*api.LeastCorrelatedPortfolioResponse, error)
}

type resolverHandler struct {
	AnalyticsService service.AnalyticsService
	Now              func() time.Time
}

func NewResolver(analyticsService service.AnalyticsService) Resolver {
	return resolverHandler{
		AnalyticsService: analyticsService,
		Now:              time.Now,
	}
}
