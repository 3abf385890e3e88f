package metrics

import (
	"folio/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SnapshotReturn is the percent return since the previous snapshot,
// treating deposits made in between as part of the starting value.
// Without a previous snapshot the comparison is against cost alone.
func SnapshotReturn(equity, cost decimal.Decimal, previous *domain.AccountSnapshot) decimal.Decimal {
	prevEquity, prevCost := decimal.Zero, decimal.Zero
	if previous != nil {
		prevEquity, prevCost = previous.Equity, previous.Cost
	}
	base := prevEquity.Add(cost).Sub(prevCost)
	if base.IsZero() {
		return decimal.Zero
	}
	return equity.Div(base).Mul(hundred).Sub(hundred).Round(2)
}

// SnapshotValues splits reported balances into stocks, coins and
// cash. Cash is whatever the stock account holds beyond its
// positions.
func SnapshotValues(b domain.AccountBalances) (equity, stocks, coins, cash decimal.Decimal) {
	stocks = b.StocksValue.Round(2)
	coins = b.CoinsValue.Round(2)
	cash = b.StockAccountEquity.Sub(b.StocksValue).Round(2)
	equity = stocks.Add(coins).Add(cash).Round(2)
	return
}
