package main

import (
	"database/sql"
	"fmt"
	db "folio/internal/db/query"
	"folio/internal/prices"
	"folio/internal/service"
	"folio/internal/util"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type env struct {
	config  service.AnalyticsConfig
	logger  zerolog.Logger
	secrets *util.Secrets
	db      *sql.DB
	fetcher prices.PriceFetcher
}

// loadEnv reads .env driven config and secrets.json. The
// database is only opened when the command or vendor needs it.
func loadEnv(verbose, needDB bool) (*env, error) {
	cfg, err := service.AnalyticsConfigFromEnv()
	if err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	cfg.Logger = logger

	secrets, err := util.LoadSecrets()
	if err != nil {
		// yahoo works without secrets
		logger.Debug().Err(err).Msg("no secrets loaded")
		secrets = &util.Secrets{}
	}

	e := &env{
		config:  cfg,
		logger:  logger,
		secrets: secrets,
	}

	if needDB || strings.EqualFold(cfg.PriceVendor, service.VendorDB) {
		e.db, err = db.New(secrets.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	e.fetcher, err = service.NewPriceFetcher(cfg.PriceVendor, secrets, e.db)
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (e *env) analytics() service.AnalyticsService {
	return service.NewAnalyticsService(e.config, e.fetcher)
}

func (e *env) close() {
	if e.db != nil {
		e.db.Close()
	}
}

// splitList parses a comma separated flag value
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, strings.ToUpper(part))
		}
	}
	return out
}

func splitInts(s string) ([]int, error) {
	out := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", part, err)
		}
		out = append(out, i)
	}
	return out, nil
}

// parseWeights reads SYMBOL=weight pairs
func parseWeights(s string) (map[string]float64, error) {
	out := map[string]float64{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		symbol, weight, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("weight %q is not SYMBOL=weight", part)
		}
		w, err := strconv.ParseFloat(weight, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight for %s: %w", symbol, err)
		}
		out[strings.ToUpper(strings.TrimSpace(symbol))] = w
	}
	return out, nil
}

func lookbackStart(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}
