package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"folio/internal/db/models/postgres/public/model"
	. "folio/internal/db/models/postgres/public/table"
	db "folio/internal/db/query"
	"folio/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AccountRepository interface {
	ListTransfers(tx *sql.Tx) ([]domain.Transfer, error)
	AddTransfer(tx *sql.Tx, transfer domain.Transfer) error

	// GetSnapshot returns nil when there is no snapshot on date
	GetSnapshot(tx *sql.Tx, date time.Time) (*domain.AccountSnapshot, error)
	// GetPreviousSnapshot returns the latest snapshot strictly before date
	GetPreviousSnapshot(tx *sql.Tx, date time.Time) (*domain.AccountSnapshot, error)
	ListSnapshots(tx *sql.Tx) ([]domain.AccountSnapshot, error)
	UpsertSnapshot(tx *sql.Tx, snapshot domain.AccountSnapshot) (*domain.AccountSnapshot, error)
}

type accountRepositoryHandler struct{}

func NewAccountRepository() AccountRepository {
	return accountRepositoryHandler{}
}

func (h accountRepositoryHandler) ListTransfers(tx *sql.Tx) ([]domain.Transfer, error) {
	transfers, err := db.GetHistoricTransfers(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	out := make([]domain.Transfer, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, domain.Transfer{
			TransferID: t.TransferID,
			CreatedAt:  t.CreatedAt,
			Amount:     t.Amount,
		})
	}
	return out, nil
}

func (h accountRepositoryHandler) AddTransfer(tx *sql.Tx, transfer domain.Transfer) error {
	return db.AddTransfer(tx, &model.Transfer{
		TransferID: transfer.TransferID,
		CreatedAt:  transfer.CreatedAt,
		Amount:     transfer.Amount,
	})
}

func snapshotToDomain(s model.AccountSnapshot) domain.AccountSnapshot {
	return domain.AccountSnapshot{
		AccountSnapshotID:  s.AccountSnapshotID,
		Date:               s.Date,
		Cost:               s.Cost,
		Equity:             s.Equity,
		StocksValue:        s.StocksValue,
		CoinsValue:         s.CoinsValue,
		CashValue:          s.CashValue,
		ReturnPct:          s.ReturnPct,
		PreviousSnapshotID: s.PreviousSnapshotID,
		LastUpdate:         s.LastUpdate,
	}
}

func (h accountRepositoryHandler) querySnapshot(tx *sql.Tx, query postgres.SelectStatement) (*domain.AccountSnapshot, error) {
	var result model.AccountSnapshot
	err := query.Query(tx, &result)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	out := snapshotToDomain(result)
	return &out, nil
}

func (h accountRepositoryHandler) GetSnapshot(tx *sql.Tx, date time.Time) (*domain.AccountSnapshot, error) {
	query := AccountSnapshot.SELECT(AccountSnapshot.AllColumns).
		WHERE(AccountSnapshot.Date.EQ(postgres.DateT(date)))
	return h.querySnapshot(tx, query)
}

func (h accountRepositoryHandler) GetPreviousSnapshot(tx *sql.Tx, date time.Time) (*domain.AccountSnapshot, error) {
	query := AccountSnapshot.SELECT(AccountSnapshot.AllColumns).
		WHERE(AccountSnapshot.Date.LT(postgres.DateT(date))).
		ORDER_BY(AccountSnapshot.Date.DESC()).
		LIMIT(1)
	return h.querySnapshot(tx, query)
}

func (h accountRepositoryHandler) ListSnapshots(tx *sql.Tx) ([]domain.AccountSnapshot, error) {
	query := AccountSnapshot.SELECT(AccountSnapshot.AllColumns).
		ORDER_BY(AccountSnapshot.Date.ASC())

	result := []model.AccountSnapshot{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	out := make([]domain.AccountSnapshot, 0, len(result))
	for _, s := range result {
		out = append(out, snapshotToDomain(s))
	}
	return out, nil
}

// UpsertSnapshot keys on date, so recording twice in one day
// overwrites the earlier figures
func (h accountRepositoryHandler) UpsertSnapshot(tx *sql.Tx, s domain.AccountSnapshot) (*domain.AccountSnapshot, error) {
	id := s.AccountSnapshotID
	if id == uuid.Nil {
		id = uuid.New()
	}
	lastUpdate := s.LastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now().UTC()
	}

	t := AccountSnapshot
	query := t.INSERT(t.AllColumns).
		MODEL(model.AccountSnapshot{
			AccountSnapshotID:  id,
			Date:               s.Date,
			Cost:               s.Cost,
			Equity:             s.Equity,
			StocksValue:        s.StocksValue,
			CoinsValue:         s.CoinsValue,
			CashValue:          s.CashValue,
			ReturnPct:          s.ReturnPct,
			PreviousSnapshotID: s.PreviousSnapshotID,
			LastUpdate:         lastUpdate,
		}).
		ON_CONFLICT(t.Date).DO_UPDATE(
		postgres.SET(
			t.Cost.SET(t.EXCLUDED.Cost),
			t.Equity.SET(t.EXCLUDED.Equity),
			t.StocksValue.SET(t.EXCLUDED.StocksValue),
			t.CoinsValue.SET(t.EXCLUDED.CoinsValue),
			t.CashValue.SET(t.EXCLUDED.CashValue),
			t.ReturnPct.SET(t.EXCLUDED.ReturnPct),
			t.PreviousSnapshotID.SET(t.EXCLUDED.PreviousSnapshotID),
			t.LastUpdate.SET(t.EXCLUDED.LastUpdate),
		),
	).
		RETURNING(t.AllColumns)

	var result model.AccountSnapshot
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert snapshot for %s: %w", s.Date.Format(time.DateOnly), err)
	}
	out := snapshotToDomain(result)
	return &out, nil
}
