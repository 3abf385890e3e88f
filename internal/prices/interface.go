package prices

import (
	"context"
	"folio/internal/domain"
	"time"
)

// PriceFetcher returns adjusted daily closes for symbols from
// start onwards, aligned on the union of trading dates.
type PriceFetcher interface {
	FetchPrices(ctx context.Context, symbols []string, start time.Time) (*domain.PriceMatrix, error)
}

// HistoricalPriceClient is implemented by vendors that serve one
// symbol per request
type HistoricalPriceClient interface {
	GetHistoricalPrices(ctx context.Context, symbol string, start time.Time) ([]domain.PriceObservation, error)
}
