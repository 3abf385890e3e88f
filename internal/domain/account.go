package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer is a cash deposit into the brokerage account
type Transfer struct {
	TransferID string
	CreatedAt  time.Time
	Amount     decimal.Decimal
}

// AccountSnapshot is the end-of-day state of the account.
// Cost is the total deposited so far; ReturnPct is the
// return since the previous snapshot net of new deposits.
type AccountSnapshot struct {
	AccountSnapshotID  uuid.UUID
	Date               time.Time
	Cost               decimal.Decimal
	Equity             decimal.Decimal
	StocksValue        decimal.Decimal
	CoinsValue         decimal.Decimal
	CashValue          decimal.Decimal
	ReturnPct          decimal.Decimal
	PreviousSnapshotID *uuid.UUID
	LastUpdate         time.Time
}

// AccountBalances is what the brokerage reports at snapshot time
type AccountBalances struct {
	StocksValue decimal.Decimal
	// equity reported by the stock account, stocks plus cash
	StockAccountEquity decimal.Decimal
	CoinsValue         decimal.Decimal
}
