package prices

import (
	"context"
	"fmt"
	folio_errors "folio/internal"
	"folio/internal/domain"
	"folio/internal/util"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	VendorYahoo        = "yahoo"
	VendorAlphaVantage = "alphavantage"

	// requests in flight per FetchPrices call
	defaultConcurrency = 4
)

type symbolFetcher struct {
	Client      HistoricalPriceClient
	Concurrency int
}

// NewFetcher picks the price vendor by name. Vendor names are
// case insensitive; an empty name means yahoo.
func NewFetcher(vendor string, secrets *util.Secrets) (PriceFetcher, error) {
	switch strings.ToLower(vendor) {
	case "", VendorYahoo:
		return NewSymbolFetcher(YahooClient{}), nil
	case VendorAlphaVantage:
		if secrets == nil || secrets.AlphaVantageKey == "" {
			return nil, fmt.Errorf("alpha vantage requires an api key in secrets")
		}
		// free tier keys are rate limited per minute
		return symbolFetcher{
			Client: AlphaVantageClient{
				HttpClient: &http.Client{Timeout: 30 * time.Second},
				ApiKey:     secrets.AlphaVantageKey,
			},
			Concurrency: 1,
		}, nil
	}
	return nil, folio_errors.ErrUnknownVendor{Vendor: vendor}
}

// NewSymbolFetcher builds a PriceFetcher that requests each symbol
// separately and aligns the results
func NewSymbolFetcher(client HistoricalPriceClient) PriceFetcher {
	return symbolFetcher{Client: client, Concurrency: defaultConcurrency}
}

func (f symbolFetcher) FetchPrices(ctx context.Context, symbols []string, start time.Time) (*domain.PriceMatrix, error) {
	unique := util.NewSet(symbols...).List()
	results := make([][]domain.PriceObservation, len(unique))

	g, gctx := errgroup.WithContext(ctx)
	if f.Concurrency > 0 {
		g.SetLimit(f.Concurrency)
	} else {
		g.SetLimit(1)
	}
	for i, symbol := range unique {
		i, symbol := i, symbol
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			series, err := f.Client.GetHistoricalPrices(gctx, symbol, start)
			if err != nil {
				return fmt.Errorf("failed to get prices for %s: %w", symbol, err)
			}
			if len(series) == 0 {
				return folio_errors.ErrInsufficientData{Symbol: symbol, Needed: 1}
			}
			results[i] = series
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	observations := []domain.PriceObservation{}
	for _, series := range results {
		observations = append(observations, series...)
	}
	return domain.NewPriceMatrixFromObservations(observations)
}
