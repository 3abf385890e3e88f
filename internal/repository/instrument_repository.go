package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"folio/internal/db/models/postgres/public/model"
	. "folio/internal/db/models/postgres/public/table"
	"folio/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type InstrumentRepository interface {
	List(tx *sql.Tx) ([]domain.Instrument, error)
	Get(tx *sql.Tx, symbol string) (*domain.Instrument, error)
	Upsert(tx *sql.Tx, instrument domain.Instrument) error
	UpdateBoosts(tx *sql.Tx, instruments []domain.Instrument) error
}

type instrumentRepositoryHandler struct{}

func NewInstrumentRepository() InstrumentRepository {
	return instrumentRepositoryHandler{}
}

func instrumentToDomain(i model.Instrument, tags []model.InstrumentTag) domain.Instrument {
	out := domain.Instrument{
		Symbol:         i.Symbol,
		Name:           i.Name,
		Popularity:     i.Popularity,
		Sector:         i.Sector,
		ListDate:       i.ListDate,
		LastUpdate:     i.LastUpdate,
		Boost:          i.Boost,
		BoostUpdatedAt: i.BoostUpdatedAt,
		Tags:           []string{},
	}
	for _, t := range tags {
		out.Tags = append(out.Tags, t.Name)
	}
	return out
}

func (h instrumentRepositoryHandler) tagsBySymbol(tx *sql.Tx, symbol *string) (map[string][]model.InstrumentTag, error) {
	query := InstrumentTag.SELECT(InstrumentTag.AllColumns).
		ORDER_BY(InstrumentTag.Symbol.ASC(), InstrumentTag.Name.ASC())
	if symbol != nil {
		query = query.WHERE(InstrumentTag.Symbol.EQ(postgres.String(*symbol)))
	}

	tags := []model.InstrumentTag{}
	err := query.Query(tx, &tags)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to query instrument tags: %w", err)
	}
	out := map[string][]model.InstrumentTag{}
	for _, t := range tags {
		out[t.Symbol] = append(out[t.Symbol], t)
	}
	return out, nil
}

func (h instrumentRepositoryHandler) List(tx *sql.Tx) ([]domain.Instrument, error) {
	query := Instrument.SELECT(Instrument.AllColumns).
		ORDER_BY(Instrument.Symbol.ASC())

	result := []model.Instrument{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}

	tags, err := h.tagsBySymbol(tx, nil)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Instrument, 0, len(result))
	for _, i := range result {
		out = append(out, instrumentToDomain(i, tags[i.Symbol]))
	}
	return out, nil
}

func (h instrumentRepositoryHandler) Get(tx *sql.Tx, symbol string) (*domain.Instrument, error) {
	query := Instrument.SELECT(Instrument.AllColumns).
		WHERE(Instrument.Symbol.EQ(postgres.String(symbol)))

	var result model.Instrument
	err := query.Query(tx, &result)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get instrument %s: %w", symbol, err)
	}

	tags, err := h.tagsBySymbol(tx, &symbol)
	if err != nil {
		return nil, err
	}

	out := instrumentToDomain(result, tags[symbol])
	return &out, nil
}

// Upsert writes the instrument and adds any tags it does not
// have yet. Boost columns are left alone.
func (h instrumentRepositoryHandler) Upsert(tx *sql.Tx, instrument domain.Instrument) error {
	lastUpdate := instrument.LastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now().UTC()
	}
	query := Instrument.INSERT(
		Instrument.Symbol,
		Instrument.Name,
		Instrument.Popularity,
		Instrument.Sector,
		Instrument.ListDate,
		Instrument.LastUpdate,
	).MODEL(model.Instrument{
		Symbol:     instrument.Symbol,
		Name:       instrument.Name,
		Popularity: instrument.Popularity,
		Sector:     instrument.Sector,
		ListDate:   instrument.ListDate,
		LastUpdate: lastUpdate,
	}).ON_CONFLICT(Instrument.Symbol).DO_UPDATE(
		postgres.SET(
			Instrument.Name.SET(Instrument.EXCLUDED.Name),
			Instrument.Popularity.SET(Instrument.EXCLUDED.Popularity),
			Instrument.Sector.SET(Instrument.EXCLUDED.Sector),
			Instrument.ListDate.SET(Instrument.EXCLUDED.ListDate),
			Instrument.LastUpdate.SET(Instrument.EXCLUDED.LastUpdate),
		),
	)
	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert instrument %s: %w", instrument.Symbol, err)
	}

	if len(instrument.Tags) == 0 {
		return nil
	}
	tags := make([]model.InstrumentTag, 0, len(instrument.Tags))
	for _, t := range instrument.Tags {
		tags = append(tags, model.InstrumentTag{
			Symbol: instrument.Symbol,
			Name:   t,
		})
	}
	tagQuery := InstrumentTag.INSERT(InstrumentTag.Symbol, InstrumentTag.Name).
		MODELS(tags).
		ON_CONFLICT(InstrumentTag.Symbol, InstrumentTag.Name).DO_NOTHING()
	_, err = tagQuery.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add tags for %s: %w", instrument.Symbol, err)
	}

	return nil
}

// UpdateBoosts only touches boost and boost_updated_at
func (h instrumentRepositoryHandler) UpdateBoosts(tx *sql.Tx, instruments []domain.Instrument) error {
	for _, i := range instruments {
		var updatedAt postgres.TimestampzExpression = postgres.TimestampzT(time.Now().UTC())
		if i.BoostUpdatedAt != nil {
			updatedAt = postgres.TimestampzT(*i.BoostUpdatedAt)
		}
		query := Instrument.UPDATE(Instrument.Boost, Instrument.BoostUpdatedAt).
			SET(postgres.Float(i.Boost), updatedAt).
			WHERE(Instrument.Symbol.EQ(postgres.String(i.Symbol)))

		_, err := query.Exec(tx)
		if err != nil {
			return fmt.Errorf("failed to update boost for %s: %w", i.Symbol, err)
		}
	}
	return nil
}
