package metrics

import (
	"folio/internal/domain"
	"math"
)

// PercentChange returns the change over period observations,
// r[i] = (p[i+period] - p[i]) / p[i]. The result is shorter than
// the input by period. Missing prices produce missing returns.
func PercentChange(prices []float64, period int) domain.PercentData {
	if period < 1 || len(prices) <= period {
		return domain.PercentData{}
	}
	out := make(domain.PercentData, 0, len(prices)-period)
	for i := period; i < len(prices); i++ {
		prev, current := prices[i-period], prices[i]
		if math.IsNaN(prev) || math.IsNaN(current) || prev == 0 {
			out = append(out, domain.Percent(math.NaN()))
			continue
		}
		out = append(out, domain.PercentFromFraction((current-prev)/prev))
	}
	return out
}

// RollingMean averages each full window of prices. The first
// window-1 entries, and any window containing a missing price,
// are NaN.
func RollingMean(prices []float64, window int) []float64 {
	out := make([]float64, len(prices))
	if window <= 1 {
		copy(out, prices)
		return out
	}
	for i := range prices {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for _, p := range prices[i-window+1 : i+1] {
			sum += p
		}
		// NaN propagates through the sum
		out[i] = sum / float64(window)
	}
	return out
}

// Returns computes the percent change series of every visible
// symbol in the matrix. When smooth is set prices are replaced by
// their period-wide rolling mean first.
func Returns(m *domain.PriceMatrix, period int, smooth bool) map[string]domain.PercentData {
	out := map[string]domain.PercentData{}
	for _, symbol := range m.Symbols() {
		prices, _ := m.Column(symbol)
		if smooth {
			prices = RollingMean(prices, period)
		}
		out[symbol] = PercentChange(prices, period)
	}
	return out
}

// Yield is the total percent change from the first to the last
// known price.
func Yield(prices []float64) float64 {
	first, last := math.NaN(), math.NaN()
	for _, p := range prices {
		if math.IsNaN(p) {
			continue
		}
		if math.IsNaN(first) {
			first = p
		}
		last = p
	}
	if math.IsNaN(first) {
		return math.NaN()
	}
	return last/first*100 - 100
}

// MaxDrawdown walks the series once tracking the running peak.
// Whenever the absolute drop from the peak beats the largest drop
// so far, the drawdown is recorded relative to that peak, in
// percent. NaN when the price never falls.
func MaxDrawdown(prices []float64) float64 {
	peak := math.Inf(-1)
	maxDrop := 0.0
	result := math.NaN()
	for _, p := range prices {
		if math.IsNaN(p) {
			continue
		}
		drop := peak - p
		if drop > maxDrop {
			maxDrop = drop
			result = maxDrop / peak * 100
		}
		peak = math.Max(peak, p)
	}
	return result
}
