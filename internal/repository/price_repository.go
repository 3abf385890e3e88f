package repository

import (
	"context"
	"database/sql"
	"fmt"
	"folio/internal/db/models/postgres/public/model"
	db "folio/internal/db/query"
	"folio/internal/domain"
	"time"

	"github.com/shopspring/decimal"
)

type PriceRepository interface {
	// FetchPrices reads stored closes adjusted for splits. The
	// tx on ctx is used when present.
	FetchPrices(ctx context.Context, symbols []string, start time.Time) (*domain.PriceMatrix, error)
	Add(ctx context.Context, tx *sql.Tx, prices []domain.PriceObservation) (int, error)
	LatestDates(tx *sql.Tx, symbols []string) (map[string]time.Time, error)
	// AddSplit records a forward split of ratio shares for one.
	// Prices before date are divided by ratio when read.
	AddSplit(ctx context.Context, tx *sql.Tx, symbol string, ratio int32, date time.Time) error
}

type priceRepositoryHandler struct {
	DB *sql.DB
}

func NewPriceRepository(db *sql.DB) PriceRepository {
	return priceRepositoryHandler{
		DB: db,
	}
}

func (h priceRepositoryHandler) FetchPrices(ctx context.Context, symbols []string, start time.Time) (*domain.PriceMatrix, error) {
	tx, err := db.GetTx(ctx)
	if err != nil {
		tx, err = h.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
		if err != nil {
			return nil, err
		}
		defer tx.Rollback()
	}

	prices, err := db.GetAdjustedPrices(tx, symbols, start)
	if err != nil {
		return nil, err
	}

	return pricesToMatrix(prices)
}

func pricesToMatrix(prices []model.Price) (*domain.PriceMatrix, error) {
	observations := make([]domain.PriceObservation, 0, len(prices))
	for _, p := range prices {
		observations = append(observations, domain.PriceObservation{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  p.Price.InexactFloat64(),
		})
	}
	m, err := domain.NewPriceMatrixFromObservations(observations)
	if err != nil {
		return nil, fmt.Errorf("failed to build price matrix: %w", err)
	}
	// stored history has gaps around listings and holidays,
	// only compare dates every symbol traded
	return m.DropIncomplete(), nil
}

func (h priceRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, prices []domain.PriceObservation) (int, error) {
	now := time.Now().UTC()
	models := make([]model.Price, 0, len(prices))
	for _, p := range prices {
		models = append(models, model.Price{
			Symbol:    p.Symbol,
			Date:      p.Date,
			Price:     decimal.NewFromFloat(p.Price),
			UpdatedAt: now,
		})
	}
	out, err := db.AddPrices(ctx, tx, models)
	if err != nil {
		return 0, err
	}
	return len(out), nil
}

func (h priceRepositoryHandler) LatestDates(tx *sql.Tx, symbols []string) (map[string]time.Time, error) {
	return db.LatestPriceDates(tx, symbols)
}

func (h priceRepositoryHandler) AddSplit(ctx context.Context, tx *sql.Tx, symbol string, ratio int32, date time.Time) error {
	if ratio < 2 {
		return fmt.Errorf("split ratio must be at least 2, received %d", ratio)
	}
	_, err := db.AddAssetSplits(ctx, tx, []model.AssetSplit{{
		Symbol:    symbol,
		Ratio:     ratio,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}})
	return err
}
