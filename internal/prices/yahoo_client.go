package prices

import (
	"context"
	"fmt"
	"folio/internal/domain"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// YahooClient reads daily bars from the Yahoo chart endpoint
type YahooClient struct{}

func (c YahooClient) GetHistoricalPrices(ctx context.Context, symbol string, start time.Time) ([]domain.PriceObservation, error) {
	end := time.Now()
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	out := []domain.PriceObservation{}
	iter := chart.Get(params)
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bar := iter.Bar()
		price := bar.AdjClose
		if price.IsZero() {
			price = bar.Close
		}
		if !price.IsPositive() {
			continue
		}
		out = append(out, domain.PriceObservation{
			Symbol: symbol,
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Price:  price.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo chart request failed: %w", err)
	}

	return out, nil
}
