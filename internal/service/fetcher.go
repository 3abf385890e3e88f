package service

import (
	"database/sql"
	"fmt"
	"folio/internal/prices"
	"folio/internal/repository"
	"folio/internal/util"
	"strings"
)

// VendorDB reads prices already stored by ingestion
const VendorDB = "db"

// NewPriceFetcher resolves the configured vendor. The db vendor
// needs a connection; the others may need secrets.
func NewPriceFetcher(vendor string, secrets *util.Secrets, dbConn *sql.DB) (prices.PriceFetcher, error) {
	if strings.ToLower(vendor) == VendorDB {
		if dbConn == nil {
			return nil, fmt.Errorf("price vendor %s requires a database connection", VendorDB)
		}
		return repository.NewPriceRepository(dbConn), nil
	}
	return prices.NewFetcher(vendor, secrets)
}
