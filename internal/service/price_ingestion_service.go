package service

import (
	"context"
	"database/sql"
	"fmt"
	"folio/internal/domain"
	"folio/internal/prices"
	"folio/internal/repository"
	"folio/internal/util"
	"math"
	"time"

	"github.com/rs/zerolog"
)

type PriceIngestionService interface {
	// Ingest stores prices for symbols from start onwards. Symbols
	// that already have stored prices only get dates after their
	// latest one.
	Ingest(ctx context.Context, tx *sql.Tx, symbols []string, start time.Time) (int, error)
}

type priceIngestionHandler struct {
	PriceFetcher    prices.PriceFetcher
	PriceRepository repository.PriceRepository
	logger          zerolog.Logger
}

func NewPriceIngestionService(fetcher prices.PriceFetcher, priceRepository repository.PriceRepository, logger zerolog.Logger) PriceIngestionService {
	return priceIngestionHandler{
		PriceFetcher:    fetcher,
		PriceRepository: priceRepository,
		logger:          logger.With().Str("component", "ingestion").Logger(),
	}
}

// matrixObservations flattens the matrix, skipping missing cells
// and anything on or before the symbol's cutoff
func matrixObservations(m *domain.PriceMatrix, cutoffs map[string]time.Time) []domain.PriceObservation {
	out := []domain.PriceObservation{}
	dates := m.Dates()
	for _, symbol := range m.Symbols() {
		column, _ := m.Column(symbol)
		cutoff, hasCutoff := cutoffs[symbol]
		for i, p := range column {
			if math.IsNaN(p) {
				continue
			}
			if hasCutoff && !dates[i].After(cutoff) {
				continue
			}
			out = append(out, domain.PriceObservation{
				Symbol: symbol,
				Date:   dates[i],
				Price:  p,
			})
		}
	}
	return out
}

func (h priceIngestionHandler) Ingest(ctx context.Context, tx *sql.Tx, symbols []string, start time.Time) (int, error) {
	symbols = util.NewSet(symbols...).List()
	if len(symbols) == 0 {
		return 0, nil
	}

	latest, err := h.PriceRepository.LatestDates(tx, symbols)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest price dates: %w", err)
	}

	// fetch from the earliest date any symbol still needs
	fetchFrom := time.Time{}
	for _, symbol := range symbols {
		from := start
		if d, ok := latest[symbol]; ok && d.After(start) {
			from = d.AddDate(0, 0, 1)
		}
		if fetchFrom.IsZero() || from.Before(fetchFrom) {
			fetchFrom = from
		}
	}
	if !fetchFrom.Before(time.Now()) {
		h.logger.Debug().Strs("symbols", symbols).Msg("prices up to date")
		return 0, nil
	}

	m, err := h.PriceFetcher.FetchPrices(ctx, symbols, fetchFrom)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch prices: %w", err)
	}

	cutoffs := map[string]time.Time{}
	for symbol, d := range latest {
		if d.After(start) {
			cutoffs[symbol] = d
		} else {
			cutoffs[symbol] = start.AddDate(0, 0, -1)
		}
	}
	observations := matrixObservations(m, cutoffs)
	if len(observations) == 0 {
		return 0, nil
	}

	n, err := h.PriceRepository.Add(ctx, tx, observations)
	if err != nil {
		return 0, fmt.Errorf("failed to store prices: %w", err)
	}

	h.logger.Info().
		Strs("symbols", symbols).
		Str("from", fetchFrom.Format(time.DateOnly)).
		Int("rows", n).
		Msg("ingested prices")
	return n, nil
}
