package metrics

import (
	"fmt"
	"folio/internal/domain"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type GrowthPoint struct {
	Date time.Time
	// growth of one unit invested at the first snapshot
	Growth decimal.Decimal
}

// TimeWeightedGrowth chains the holding period return of every
// consecutive pair of snapshots. Deposits made between snapshots,
// the change in cost, are added to the starting value so they do
// not count as performance.
func TimeWeightedGrowth(snapshots []domain.AccountSnapshot) ([]GrowthPoint, error) {
	if len(snapshots) < 2 {
		return nil, fmt.Errorf("at least two snapshots required to compute time weighted return")
	}
	sorted := append([]domain.AccountSnapshot{}, snapshots...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	growth := decimal.NewFromInt(1)
	out := make([]GrowthPoint, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		prev, current := sorted[i-1], sorted[i]
		period, err := hp(prev.Equity, current.Equity, current.Cost.Sub(prev.Cost))
		if err != nil {
			return nil, fmt.Errorf("failed on %s: %w", current.Date.Format(time.DateOnly), err)
		}
		growth = growth.Mul(period)
		out = append(out, GrowthPoint{
			Date:   current.Date,
			Growth: growth,
		})
	}

	return out, nil
}

// https://www.investopedia.com/terms/t/time-weightedror.asp
func hp(start, end, cashFlow decimal.Decimal) (decimal.Decimal, error) {
	denominator := start.Add(cashFlow)
	if denominator.IsZero() {
		return decimal.Zero, fmt.Errorf("holding period has zero starting value")
	}
	return end.Div(denominator), nil
}
