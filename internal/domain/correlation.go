package domain

import (
	"math"
	"sort"
)

// CorrelationMatrix holds pairwise return correlations.
// It is symmetric with a unit diagonal.
type CorrelationMatrix struct {
	symbols []string
	index   map[string]int
	values  [][]float64
}

// NewCorrelationMatrix expects values ordered like symbols
func NewCorrelationMatrix(symbols []string, values [][]float64) CorrelationMatrix {
	index := make(map[string]int, len(symbols))
	for i, s := range symbols {
		index[s] = i
	}
	return CorrelationMatrix{
		symbols: append([]string{}, symbols...),
		index:   index,
		values:  values,
	}
}

func (c CorrelationMatrix) Symbols() []string {
	return append([]string{}, c.symbols...)
}

// Get returns the correlation of a and b. Unknown symbols
// report ok=false.
func (c CorrelationMatrix) Get(a, b string) (float64, bool) {
	i, ok := c.index[a]
	if !ok {
		return 0, false
	}
	j, ok := c.index[b]
	if !ok {
		return 0, false
	}
	return c.values[i][j], true
}

// Extremes returns the highest and lowest correlation of
// symbol against others, skipping itself, unknown symbols and
// undefined correlations. ok is false when there was nothing to
// compare against.
func (c CorrelationMatrix) Extremes(symbol string, others []string) (max float64, min float64, ok bool) {
	for _, o := range others {
		if o == symbol {
			continue
		}
		v, found := c.Get(symbol, o)
		if !found || math.IsNaN(v) {
			continue
		}
		if !ok || v > max {
			max = v
		}
		if !ok || v < min {
			min = v
		}
		ok = true
	}
	return max, min, ok
}

type AssetCorrelation struct {
	AssetOne    string
	AssetTwo    string
	Correlation float64
}

// Pairs flattens the upper triangle, ordered by symbol
func (c CorrelationMatrix) Pairs() []AssetCorrelation {
	symbols := c.Symbols()
	sort.Strings(symbols)
	out := []AssetCorrelation{}
	for i, s1 := range symbols {
		for j := i + 1; j < len(symbols); j++ {
			v, _ := c.Get(s1, symbols[j])
			out = append(out, AssetCorrelation{
				AssetOne:    s1,
				AssetTwo:    symbols[j],
				Correlation: v,
			})
		}
	}
	return out
}
