package service

import (
	"context"
	"database/sql"
	"fmt"
	db "folio/internal/db/query"
	"folio/internal/domain"
	"folio/internal/metrics"
	"folio/internal/repository"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type AccountService interface {
	AddTransfer(ctx context.Context, tx *sql.Tx, transfer domain.Transfer) error
	// RecordSnapshot saves the account state on date, replacing
	// any snapshot already taken that day
	RecordSnapshot(ctx context.Context, tx *sql.Tx, date time.Time, balances domain.AccountBalances) (*domain.AccountSnapshot, error)
	Performance(ctx context.Context, tx *sql.Tx) ([]metrics.GrowthPoint, error)
}

type accountHandler struct {
	AccountRepository repository.AccountRepository
	WithSavepoint     func(tx *sql.Tx, fn func() error) error
	logger            zerolog.Logger
}

func NewAccountService(accountRepository repository.AccountRepository, logger zerolog.Logger) AccountService {
	return accountHandler{
		AccountRepository: accountRepository,
		WithSavepoint:     db.WithSavepoint,
		logger:            logger.With().Str("component", "account").Logger(),
	}
}

func (h accountHandler) AddTransfer(ctx context.Context, tx *sql.Tx, transfer domain.Transfer) error {
	if transfer.TransferID == "" {
		return fmt.Errorf("transfer id is required")
	}
	if !transfer.Amount.IsPositive() {
		return fmt.Errorf("transfer %s has non-positive amount %s", transfer.TransferID, transfer.Amount)
	}
	err := h.AccountRepository.AddTransfer(tx, transfer)
	if err != nil {
		return fmt.Errorf("failed to add transfer %s: %w", transfer.TransferID, err)
	}
	return nil
}

func (h accountHandler) cost(tx *sql.Tx, asOf time.Time) (decimal.Decimal, error) {
	transfers, err := h.AccountRepository.ListTransfers(tx)
	if err != nil {
		return decimal.Zero, err
	}
	cost := decimal.Zero
	for _, t := range transfers {
		if t.CreatedAt.After(asOf) {
			continue
		}
		cost = cost.Add(t.Amount)
	}
	return cost, nil
}

func (h accountHandler) RecordSnapshot(ctx context.Context, tx *sql.Tx, date time.Time, balances domain.AccountBalances) (*domain.AccountSnapshot, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := day.Add(24*time.Hour - time.Nanosecond)

	cost, err := h.cost(tx, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to compute cost: %w", err)
	}
	previous, err := h.AccountRepository.GetPreviousSnapshot(tx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous snapshot: %w", err)
	}

	equity, stocks, coins, cash := metrics.SnapshotValues(balances)
	snapshot := domain.AccountSnapshot{
		AccountSnapshotID: uuid.New(),
		Date:              day,
		Cost:              cost.Round(2),
		Equity:            equity,
		StocksValue:       stocks,
		CoinsValue:        coins,
		CashValue:         cash,
		ReturnPct:         metrics.SnapshotReturn(equity, cost, previous),
		LastUpdate:        time.Now().UTC(),
	}
	if previous != nil {
		snapshot.PreviousSnapshotID = &previous.AccountSnapshotID
	}

	var out *domain.AccountSnapshot
	err = h.WithSavepoint(tx, func() error {
		var err error
		out, err = h.AccountRepository.UpsertSnapshot(tx, snapshot)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot for %s: %w", day.Format(time.DateOnly), err)
	}

	h.logger.Info().
		Str("date", day.Format(time.DateOnly)).
		Str("equity", out.Equity.String()).
		Str("returnPct", out.ReturnPct.String()).
		Msg("recorded snapshot")
	return out, nil
}

func (h accountHandler) Performance(ctx context.Context, tx *sql.Tx) ([]metrics.GrowthPoint, error) {
	snapshots, err := h.AccountRepository.ListSnapshots(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return metrics.TimeWeightedGrowth(snapshots)
}
