package domain

import (
	"math"
	"sort"
)

// PeriodStatistics summarises the return series of one symbol
// measured over a fixed number of trading periods. Undefined
// values (too few observations, zero variance) are NaN.
type PeriodStatistics struct {
	Period int
	Count  int
	Mean   float64
	Stdev  float64
	Sharpe float64
}

type SymbolStatistics struct {
	Symbol string
	PeriodStatistics
	// percent change from first to last price
	Yield float64
	// largest peak-to-trough drop in percent. NaN if the
	// price never fell below a previous peak
	Drawdown float64
	// statistics for any additional periods requested
	Extra []PeriodStatistics
}

func (s SymbolStatistics) HasDrawdown() bool {
	return !math.IsNaN(s.Drawdown)
}

type StatisticsTable []SymbolStatistics

// SortBySharpe orders the table by descending Sharpe ratio,
// undefined ratios last
func (t StatisticsTable) SortBySharpe() {
	sort.SliceStable(t, func(i, j int) bool {
		a, b := t[i].Sharpe, t[j].Sharpe
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})
}

func (t StatisticsTable) Get(symbol string) (SymbolStatistics, bool) {
	for _, s := range t {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return SymbolStatistics{}, false
}

func (t StatisticsTable) Symbols() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = s.Symbol
	}
	return out
}

func (t StatisticsTable) BySymbol() map[string]SymbolStatistics {
	out := make(map[string]SymbolStatistics, len(t))
	for _, s := range t {
		out[s.Symbol] = s
	}
	return out
}
