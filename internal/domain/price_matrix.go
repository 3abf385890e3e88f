package domain

import (
	"fmt"
	folio_errors "folio/internal"
	"math"
	"sort"
	"time"
)

// PriceObservation is a single adjusted close, the shape
// price sources and storage hand back before alignment
type PriceObservation struct {
	Symbol string
	Date   time.Time
	Price  float64
}

// PriceMatrix is a date x symbol table of adjusted closes.
// It is never mutated after construction. Masking hands out
// a view that shares columns with the matrix it came from
// and remembers that origin so it can be restored.
//
// Missing cells are NaN.
type PriceMatrix struct {
	dates   []time.Time
	symbols []string
	columns map[string][]float64

	origin *PriceMatrix
}

func NewPriceMatrix(dates []time.Time, columns map[string][]float64) (*PriceMatrix, error) {
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, fmt.Errorf("dates must be strictly increasing - %s follows %s", dates[i].Format("2006-01-02"), dates[i-1].Format("2006-01-02"))
		}
	}

	symbols := make([]string, 0, len(columns))
	copied := make(map[string][]float64, len(columns))
	for symbol, prices := range columns {
		if symbol == "" {
			return nil, fmt.Errorf("price matrix column has empty symbol")
		}
		if len(prices) != len(dates) {
			return nil, fmt.Errorf("column %s has %d prices, expected %d", symbol, len(prices), len(dates))
		}
		for i, p := range prices {
			if !math.IsNaN(p) && p <= 0 {
				return nil, fmt.Errorf("column %s has non-positive price %f on %s", symbol, p, dates[i].Format("2006-01-02"))
			}
		}
		symbols = append(symbols, symbol)
		copied[symbol] = append([]float64{}, prices...)
	}
	sort.Strings(symbols)

	return &PriceMatrix{
		dates:   append([]time.Time{}, dates...),
		symbols: symbols,
		columns: copied,
	}, nil
}

// NewPriceMatrixFromObservations aligns observations on the
// union of their dates. Duplicate (symbol, date) pairs keep
// the last observation.
func NewPriceMatrixFromObservations(observations []PriceObservation) (*PriceMatrix, error) {
	dateSet := map[time.Time]struct{}{}
	bySymbol := map[string]map[time.Time]float64{}
	for _, o := range observations {
		day := truncateToDay(o.Date)
		dateSet[day] = struct{}{}
		if _, ok := bySymbol[o.Symbol]; !ok {
			bySymbol[o.Symbol] = map[time.Time]float64{}
		}
		bySymbol[o.Symbol][day] = o.Price
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	columns := map[string][]float64{}
	for symbol, priceByDate := range bySymbol {
		col := make([]float64, len(dates))
		for i, d := range dates {
			p, ok := priceByDate[d]
			if !ok {
				p = math.NaN()
			}
			col[i] = p
		}
		columns[symbol] = col
	}

	return NewPriceMatrix(dates, columns)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (m *PriceMatrix) Symbols() []string {
	return append([]string{}, m.symbols...)
}

func (m *PriceMatrix) Dates() []time.Time {
	return append([]time.Time{}, m.dates...)
}

func (m *PriceMatrix) Len() int {
	return len(m.dates)
}

func (m *PriceMatrix) Width() int {
	return len(m.symbols)
}

func (m *PriceMatrix) Start() time.Time {
	if len(m.dates) == 0 {
		return time.Time{}
	}
	return m.dates[0]
}

func (m *PriceMatrix) Has(symbol string) bool {
	_, ok := m.columns[symbol]
	if !ok {
		return false
	}
	if m.origin == nil {
		return true
	}
	i := sort.SearchStrings(m.symbols, symbol)
	return i < len(m.symbols) && m.symbols[i] == symbol
}

// Column returns a copy of the prices of symbol in date order
func (m *PriceMatrix) Column(symbol string) ([]float64, bool) {
	if !m.Has(symbol) {
		return nil, false
	}
	return append([]float64{}, m.columns[symbol]...), true
}

// Mask returns a view restricted to exactly symbols. Masking
// is always relative to the unmasked origin, so masking a
// masked view with a different set does not compound.
func (m *PriceMatrix) Mask(symbols ...string) (*PriceMatrix, error) {
	origin := m.Unmask()

	seen := map[string]struct{}{}
	missing := []string{}
	visible := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := origin.columns[s]; !ok {
			missing = append(missing, s)
			continue
		}
		visible = append(visible, s)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, folio_errors.ErrSymbolNotFound{Symbols: missing}
	}
	sort.Strings(visible)

	return &PriceMatrix{
		dates:   origin.dates,
		symbols: visible,
		columns: origin.columns,
		origin:  origin,
	}, nil
}

// Unmask returns the full matrix this view was cut from.
// On an unmasked matrix it returns the receiver.
func (m *PriceMatrix) Unmask() *PriceMatrix {
	if m.origin == nil {
		return m
	}
	return m.origin
}

func (m *PriceMatrix) IsMasked() bool {
	return m.origin != nil
}

// Since returns a new unmasked matrix holding the visible
// columns from start onwards
func (m *PriceMatrix) Since(start time.Time) *PriceMatrix {
	i := sort.Search(len(m.dates), func(i int) bool {
		return !m.dates[i].Before(start)
	})
	columns := make(map[string][]float64, len(m.symbols))
	for _, s := range m.symbols {
		columns[s] = append([]float64{}, m.columns[s][i:]...)
	}
	return &PriceMatrix{
		dates:   append([]time.Time{}, m.dates[i:]...),
		symbols: m.Symbols(),
		columns: columns,
	}
}

// DropIncomplete returns a new unmasked matrix holding only the
// dates on which every visible symbol has a price
func (m *PriceMatrix) DropIncomplete() *PriceMatrix {
	keep := []int{}
	for i := range m.dates {
		complete := true
		for _, s := range m.symbols {
			if math.IsNaN(m.columns[s][i]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}

	dates := make([]time.Time, len(keep))
	for j, i := range keep {
		dates[j] = m.dates[i]
	}
	columns := make(map[string][]float64, len(m.symbols))
	for _, s := range m.symbols {
		col := make([]float64, len(keep))
		for j, i := range keep {
			col[j] = m.columns[s][i]
		}
		columns[s] = col
	}

	return &PriceMatrix{
		dates:   dates,
		symbols: m.Symbols(),
		columns: columns,
	}
}
