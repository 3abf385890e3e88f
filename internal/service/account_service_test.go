package service

import (
	"context"
	"database/sql"
	"errors"
	"folio/internal/domain"
	"folio/internal/repository"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func newTestAccountService(repo repository.AccountRepository) accountHandler {
	return accountHandler{
		AccountRepository: repo,
		WithSavepoint: func(tx *sql.Tx, fn func() error) error {
			return fn()
		},
		logger: zerolog.Nop(),
	}
}

func TestAccountService_RecordSnapshot(t *testing.T) {
	ctx := context.Background()
	var tx *sql.Tx
	date := time.Date(2023, 3, 10, 21, 30, 0, 0, time.UTC)
	day := time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("against previous snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockAccountRepository(ctrl)
		service := newTestAccountService(repo)

		previousID := uuid.New()
		repo.EXPECT().ListTransfers(tx).Return([]domain.Transfer{
			{TransferID: "a", CreatedAt: day.AddDate(0, -1, 0), Amount: dec(1000)},
			{TransferID: "b", CreatedAt: day.Add(10 * time.Hour), Amount: dec(100)},
			{TransferID: "c", CreatedAt: day.AddDate(0, 0, 1), Amount: dec(5000)},
		}, nil)
		repo.EXPECT().GetPreviousSnapshot(tx, day).Return(&domain.AccountSnapshot{
			AccountSnapshotID: previousID,
			Cost:              dec(1000),
			Equity:            dec(1000),
		}, nil)
		repo.EXPECT().UpsertSnapshot(tx, gomock.Any()).DoAndReturn(
			func(tx *sql.Tx, s domain.AccountSnapshot) (*domain.AccountSnapshot, error) {
				return &s, nil
			},
		)

		out, err := service.RecordSnapshot(ctx, tx, date, domain.AccountBalances{
			StocksValue:        dec(900),
			StockAccountEquity: dec(1055),
			CoinsValue:         dec(100),
		})
		require.NoError(t, err)

		require.Equal(t, day, out.Date)
		require.Equal(t, &previousID, out.PreviousSnapshotID)
		require.True(t, dec(1100).Equal(out.Cost), out.Cost.String())
		require.True(t, dec(155).Equal(out.CashValue), out.CashValue.String())
		require.True(t, dec(1155).Equal(out.Equity), out.Equity.String())
		require.True(t, dec(5).Equal(out.ReturnPct), out.ReturnPct.String())
	})

	t.Run("first snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockAccountRepository(ctrl)
		service := newTestAccountService(repo)

		repo.EXPECT().ListTransfers(tx).Return([]domain.Transfer{
			{TransferID: "a", CreatedAt: day, Amount: dec(200)},
		}, nil)
		repo.EXPECT().GetPreviousSnapshot(tx, day).Return(nil, nil)
		repo.EXPECT().UpsertSnapshot(tx, gomock.Any()).DoAndReturn(
			func(tx *sql.Tx, s domain.AccountSnapshot) (*domain.AccountSnapshot, error) {
				return &s, nil
			},
		)

		out, err := service.RecordSnapshot(ctx, tx, date, domain.AccountBalances{
			StocksValue:        dec(150),
			StockAccountEquity: dec(210),
		})
		require.NoError(t, err)
		require.Nil(t, out.PreviousSnapshotID)
		require.True(t, dec(5).Equal(out.ReturnPct), out.ReturnPct.String())
	})

	t.Run("upsert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockAccountRepository(ctrl)
		service := newTestAccountService(repo)

		repo.EXPECT().ListTransfers(tx).Return(nil, nil)
		repo.EXPECT().GetPreviousSnapshot(tx, day).Return(nil, nil)
		repo.EXPECT().UpsertSnapshot(tx, gomock.Any()).Return(nil, errors.New("conflict"))

		_, err := service.RecordSnapshot(ctx, tx, date, domain.AccountBalances{})
		require.ErrorContains(t, err, "conflict")
	})
}

func TestAccountService_AddTransfer(t *testing.T) {
	ctx := context.Background()
	var tx *sql.Tx
	ctrl := gomock.NewController(t)
	repo := repository.NewMockAccountRepository(ctrl)
	service := newTestAccountService(repo)

	transfer := domain.Transfer{TransferID: "ach-1", CreatedAt: testStart, Amount: dec(250)}
	repo.EXPECT().AddTransfer(tx, transfer).Return(nil)
	require.NoError(t, service.AddTransfer(ctx, tx, transfer))

	require.Error(t, service.AddTransfer(ctx, tx, domain.Transfer{TransferID: "ach-2", Amount: dec(-5)}))
	require.Error(t, service.AddTransfer(ctx, tx, domain.Transfer{Amount: dec(5)}))
}

func TestAccountService_Performance(t *testing.T) {
	ctx := context.Background()
	var tx *sql.Tx
	ctrl := gomock.NewController(t)
	repo := repository.NewMockAccountRepository(ctrl)
	service := newTestAccountService(repo)

	repo.EXPECT().ListSnapshots(tx).Return([]domain.AccountSnapshot{
		{Date: testStart, Cost: dec(100), Equity: dec(100)},
		{Date: testStart.AddDate(0, 0, 1), Cost: dec(100), Equity: dec(110)},
	}, nil)

	out, err := service.Performance(ctx, tx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, dec(1.1).Equal(out[0].Growth), out[0].Growth.String())
}
