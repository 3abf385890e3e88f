package service

import (
	"context"
	"database/sql"
	"fmt"
	db "folio/internal/db/query"
	"folio/internal/domain"
	"folio/internal/repository"
	"time"

	"github.com/rs/zerolog"
)

type BoostService interface {
	// Refresh scores every stored instrument on its Sharpe ratio
	// over the lookback window and saves the boosts
	Refresh(ctx context.Context, tx *sql.Tx, lookback time.Duration, period int) ([]domain.Instrument, error)
}

type boostHandler struct {
	InstrumentRepository repository.InstrumentRepository
	AnalyticsService     AnalyticsService
	Now                  func() time.Time
	logger               zerolog.Logger
}

func NewBoostService(instrumentRepository repository.InstrumentRepository, analyticsService AnalyticsService, logger zerolog.Logger) BoostService {
	return boostHandler{
		InstrumentRepository: instrumentRepository,
		AnalyticsService:     analyticsService,
		Now:                  time.Now,
		logger:               logger.With().Str("component", "boost").Logger(),
	}
}

func (h boostHandler) Refresh(ctx context.Context, tx *sql.Tx, lookback time.Duration, period int) ([]domain.Instrument, error) {
	instruments, err := h.InstrumentRepository.List(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	if len(instruments) == 0 {
		return []domain.Instrument{}, nil
	}

	symbols := make([]string, 0, len(instruments))
	for _, i := range instruments {
		symbols = append(symbols, i.Symbol)
	}

	// stored prices are read inside the same tx
	m, err := h.AnalyticsService.LoadPrices(db.WithTx(ctx, tx), symbols, h.Now().Add(-lookback))
	if err != nil {
		return nil, err
	}

	missing := []string{}
	for _, symbol := range symbols {
		if !m.Has(symbol) {
			missing = append(missing, symbol)
		}
	}
	if len(missing) > 0 {
		h.logger.Warn().Strs("symbols", missing).Msg("no prices for instruments, boost reset to 1")
	}

	h.AnalyticsService.UpdateBoosts(m, instruments, period)
	err = h.InstrumentRepository.UpdateBoosts(tx, instruments)
	if err != nil {
		return nil, fmt.Errorf("failed to save boosts: %w", err)
	}

	h.logger.Info().Int("instruments", len(instruments)).Msg("boosts refreshed")
	return instruments, nil
}
