package main

import (
	"context"
	"database/sql"
	"folio/api"
	db "folio/internal/db/query"
	"folio/internal/prices"
	"folio/internal/resolver"
	"folio/internal/service"
	"folio/internal/util"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := service.AnalyticsConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg.Logger = logger

	secrets, err := util.LoadSecrets()
	if err != nil {
		log.Fatal(err)
	}

	var dbConn *sql.DB
	if strings.EqualFold(cfg.PriceVendor, service.VendorDB) {
		dbConn, err = db.New(secrets.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer dbConn.Close()
	}

	fetcher, err := service.NewPriceFetcher(cfg.PriceVendor, secrets, dbConn)
	if err != nil {
		log.Fatal(err)
	}

	// requests in a session usually share a universe
	fetcher = prices.NewCachedFetcher(fetcher, 15*time.Minute, logger)

	r := resolver.NewResolver(service.NewAnalyticsService(cfg, fetcher))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = api.StartApi(ctx, 5001, r, logger)
	if err != nil {
		log.Fatal(err)
	}
}
