package service

import (
	"context"
	"database/sql"
	"folio/internal/domain"
	"folio/internal/prices"
	"folio/internal/repository"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func Test_matrixObservations(t *testing.T) {
	m := newMatrix(t, map[string][]float64{
		"AAA": {1, 2, 3},
		"BBB": {math.NaN(), 5, 6},
	})
	out := matrixObservations(m, map[string]time.Time{"AAA": testStart.AddDate(0, 0, 1)})

	expected := []domain.PriceObservation{
		{Symbol: "AAA", Date: testStart.AddDate(0, 0, 2), Price: 3},
		{Symbol: "BBB", Date: testStart.AddDate(0, 0, 1), Price: 5},
		{Symbol: "BBB", Date: testStart.AddDate(0, 0, 2), Price: 6},
	}
	if diff := cmp.Diff(expected, out); diff != "" {
		t.Fatal(diff)
	}
}

func TestPriceIngestionService_Ingest(t *testing.T) {
	ctx := context.Background()
	var tx *sql.Tx

	t.Run("only new dates are stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := prices.NewMockPriceFetcher(ctrl)
		priceRepository := repository.NewMockPriceRepository(ctrl)
		service := NewPriceIngestionService(fetcher, priceRepository, zerolog.Nop())

		latestAAA := testStart.AddDate(0, 0, 1)
		priceRepository.EXPECT().LatestDates(tx, []string{"AAA", "BBB"}).Return(map[string]time.Time{
			"AAA": latestAAA,
		}, nil)
		m := newMatrix(t, map[string][]float64{
			"AAA": {1, 2, 3},
			"BBB": {4, 5, 6},
		})
		fetcher.EXPECT().FetchPrices(ctx, []string{"AAA", "BBB"}, testStart).Return(m, nil)
		priceRepository.EXPECT().Add(ctx, tx, []domain.PriceObservation{
			{Symbol: "AAA", Date: testStart.AddDate(0, 0, 2), Price: 3},
			{Symbol: "BBB", Date: testStart, Price: 4},
			{Symbol: "BBB", Date: testStart.AddDate(0, 0, 1), Price: 5},
			{Symbol: "BBB", Date: testStart.AddDate(0, 0, 2), Price: 6},
		}).Return(4, nil)

		n, err := service.Ingest(ctx, tx, []string{"BBB", "AAA", "AAA"}, testStart)
		require.NoError(t, err)
		require.Equal(t, 4, n)
	})

	t.Run("incremental fetch starts after latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := prices.NewMockPriceFetcher(ctrl)
		priceRepository := repository.NewMockPriceRepository(ctrl)
		service := NewPriceIngestionService(fetcher, priceRepository, zerolog.Nop())

		latest := testStart.AddDate(0, 0, 1)
		priceRepository.EXPECT().LatestDates(tx, []string{"AAA"}).Return(map[string]time.Time{"AAA": latest}, nil)
		m := newMatrix(t, map[string][]float64{"AAA": {1, 2, 3}})
		fetcher.EXPECT().FetchPrices(ctx, []string{"AAA"}, latest.AddDate(0, 0, 1)).Return(m, nil)
		priceRepository.EXPECT().Add(ctx, tx, []domain.PriceObservation{
			{Symbol: "AAA", Date: testStart.AddDate(0, 0, 2), Price: 3},
		}).Return(1, nil)

		n, err := service.Ingest(ctx, tx, []string{"AAA"}, testStart)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("no symbols", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewPriceIngestionService(prices.NewMockPriceFetcher(ctrl), repository.NewMockPriceRepository(ctrl), zerolog.Nop())
		n, err := service.Ingest(ctx, tx, nil, testStart)
		require.NoError(t, err)
		require.Zero(t, n)
	})
}
