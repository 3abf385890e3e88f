package db

import (
	"context"
	"database/sql"
	"fmt"
	"folio/internal/db/models/postgres/public/model"
	. "folio/internal/db/models/postgres/public/table"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

// AddPrices upserts on (symbol, date) so re-ingesting a range
// refreshes adjusted closes
func AddPrices(ctx context.Context, tx *sql.Tx, prices []model.Price) ([]model.Price, error) {
	if len(prices) == 0 {
		return []model.Price{}, nil
	}
	t := Price
	stmt := t.INSERT(t.Symbol, t.Date, t.Price, t.UpdatedAt).
		MODELS(prices).
		ON_CONFLICT(t.Symbol, t.Date).DO_UPDATE(
		SET(
			t.Price.SET(t.EXCLUDED.Price),
			t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
		),
	).
		RETURNING(t.AllColumns)

	result := []model.Price{}
	err := stmt.QueryContext(ctx, tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert prices: %w", err)
	}

	return result, nil
}

func GetAssetSplits(tx *sql.Tx, symbols []string) ([]model.AssetSplit, error) {
	symbolExpression := symbolExpression(symbols)
	query := AssetSplit.SELECT(AssetSplit.AllColumns).
		WHERE(AssetSplit.Symbol.IN(symbolExpression...))

	result := []model.AssetSplit{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset splits: %w", err)
	}
	return result, nil
}

func symbolExpression(symbols []string) []Expression {
	symbolExpression := []Expression{}
	for _, s := range symbols {
		symbolExpression = append(symbolExpression, String(s))
	}
	return symbolExpression
}

// prices adjusted for asset splits
func GetAdjustedPrices(tx *sql.Tx, symbols []string, start time.Time) ([]model.Price, error) {
	if len(symbols) == 0 {
		return []model.Price{}, nil
	}
	symbolExpression := symbolExpression(symbols)
	query := Price.SELECT(Price.AllColumns).
		WHERE(AND(
			Price.Symbol.IN(symbolExpression...),
			Price.Date.GT_EQ(DateT(start)),
		)).
		ORDER_BY(Price.Date.ASC())

	result := []model.Price{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}

	assetSplits, err := GetAssetSplits(tx, symbols)
	if err != nil {
		return nil, err
	}

	return AdjustForSplits(result, assetSplits), nil
}

// AdjustForSplits divides every price recorded before a split by
// the split ratio so the series is continuous
func AdjustForSplits(prices []model.Price, splits []model.AssetSplit) []model.Price {
	out := append([]model.Price{}, prices...)
	for i, p := range out {
		for _, split := range splits {
			if p.Symbol == split.Symbol && p.Date.Before(split.Date) && split.Ratio != 0 {
				out[i].Price = out[i].Price.Div(decimal.NewFromInt32(split.Ratio))
			}
		}
	}
	return out
}

// LatestPriceDates returns the most recent stored date per symbol
func LatestPriceDates(tx *sql.Tx, symbols []string) (map[string]time.Time, error) {
	if len(symbols) == 0 {
		return map[string]time.Time{}, nil
	}
	query := SELECT(
		Price.Symbol,
		MAX(Price.Date),
	).FROM(Price).
		WHERE(Price.Symbol.IN(symbolExpression(symbols)...)).
		GROUP_BY(Price.Symbol)

	stmt, args := query.Sql()
	rows, err := tx.Query(stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest price dates: %w", err)
	}
	defer rows.Close()

	out := map[string]time.Time{}
	for rows.Next() {
		var symbol string
		var date time.Time
		if err := rows.Scan(&symbol, &date); err != nil {
			return nil, fmt.Errorf("failed to scan latest price date: %w", err)
		}
		out[symbol] = date
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
