package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"folio/internal/domain"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const alphaVantageURL = "https://www.alphavantage.co/query"

type AlphaVantageClient struct {
	HttpClient *http.Client
	ApiKey     string
	// overridden in tests
	BaseURL string
}

type alphaVantageDailyBar struct {
	Open             string `json:"open"`
	High             string `json:"high"`
	Low              string `json:"low"`
	Close            string `json:"close"`
	AdjustedClose    string `json:"adjusted close"`
	Volume           string `json:"volume"`
	DividendAmount   string `json:"dividend amount"`
	SplitCoefficient string `json:"split coefficient"`
}

type alphaVantageDailyResult struct {
	MetaData struct {
		Information   string `json:"Information"`
		Symbol        string `json:"Symbol"`
		LastRefreshed string `json:"Last Refreshed"`
	} `json:"Meta Data"`
	TimeSeries   map[string]alphaVantageDailyBar `json:"Time Series (Daily)"`
	Note         string                          `json:"Note"`
	ErrorMessage string                          `json:"Error Message"`
}

func (c AlphaVantageClient) url(symbol string) string {
	base := c.BaseURL
	if base == "" {
		base = alphaVantageURL
	}
	return fmt.Sprintf("%s?function=TIME_SERIES_DAILY_ADJUSTED&outputsize=full&symbol=%s&apikey=%s", base, symbol, c.ApiKey)
}

func (c AlphaVantageClient) GetHistoricalPrices(ctx context.Context, symbol string, start time.Time) ([]domain.PriceObservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(symbol), nil)
	if err != nil {
		return nil, err
	}
	httpClient := c.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alpha vantage returned status %d", response.StatusCode)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	// API uses odd format which includes numbers in JSON keys
	var responseJson alphaVantageDailyResult
	err = json.Unmarshal(cleanResponseBody(responseBytes), &responseJson)
	if err != nil {
		return nil, err
	}

	if strings.Contains(responseJson.Note, "API call frequency") {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Minute):
		}
		return c.GetHistoricalPrices(ctx, symbol, start)
	}
	if responseJson.ErrorMessage != "" {
		return nil, fmt.Errorf("alpha vantage error: %s", responseJson.ErrorMessage)
	}

	return parseDailySeries(symbol, responseJson.TimeSeries, start)
}

func parseDailySeries(symbol string, series map[string]alphaVantageDailyBar, start time.Time) ([]domain.PriceObservation, error) {
	out := []domain.PriceObservation{}
	for day, bar := range series {
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, fmt.Errorf("could not parse trading day %q from Alpha Vantage response: %w", day, err)
		}
		if date.Before(start) {
			continue
		}
		price, err := decimal.NewFromString(bar.AdjustedClose)
		if err != nil {
			return nil, fmt.Errorf("could not parse adjusted close %q on %s: %w", bar.AdjustedClose, day, err)
		}
		out = append(out, domain.PriceObservation{
			Symbol: symbol,
			Date:   date,
			Price:  price.InexactFloat64(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func cleanResponseBody(bytes []byte) []byte {
	r := regexp.MustCompile("\"[0-9]+\\. ")
	return r.ReplaceAll(bytes, []byte("\""))
}
