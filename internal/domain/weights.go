package domain

import (
	"math"
	"sort"
)

// Weights maps symbol to portfolio weight. They sum to the
// budget they were solved for, which is 1 unless a cash
// residual was requested.
type Weights map[string]float64

func (w Weights) Symbols() []string {
	out := make([]string, 0, len(w))
	for s := range w {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (w Weights) Sum() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// Smallest returns the symbol with the lowest weight. Ties go
// to the alphabetically first symbol so eviction order is stable.
func (w Weights) Smallest() (string, float64) {
	symbol, min := "", math.Inf(1)
	for _, s := range w.Symbols() {
		if w[s] < min {
			symbol, min = s, w[s]
		}
	}
	return symbol, min
}
