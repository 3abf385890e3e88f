package folio_errors

import (
	"fmt"
	"strings"
)

type ErrSymbolNotFound struct {
	Symbols []string
}

func (e ErrSymbolNotFound) Error() string {
	return fmt.Sprintf("symbols not present in price matrix: %s", strings.Join(e.Symbols, ", "))
}

type ErrInsufficientData struct {
	Symbol string
	Points int
	Needed int
}

func (e ErrInsufficientData) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("not enough price data - have %d points, need %d", e.Points, e.Needed)
	}
	return fmt.Sprintf("not enough price data for %s - have %d points, need %d", e.Symbol, e.Points, e.Needed)
}

type ErrUnknownVendor struct {
	Vendor string
}

func (e ErrUnknownVendor) Error() string {
	return fmt.Sprintf("unknown price vendor %q", e.Vendor)
}
