package metrics

import (
	"fmt"
	"folio/internal/domain"
	"math"

	"github.com/montanaflynn/stats"
)

// this layer should not have any external deps. prices are
// provided by the caller and everything here is plain float64;
// decimal only makes sense for amounts we actually hold.

// pairwise drops any observation missing from either series
func pairwise(a, b domain.PercentData) (stats.Float64Data, stats.Float64Data) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	outA := make(stats.Float64Data, 0, n)
	outB := make(stats.Float64Data, 0, n)
	for i := 0; i < n; i++ {
		if !a[i].IsValid() || !b[i].IsValid() {
			continue
		}
		outA = append(outA, a[i].AsPercent())
		outB = append(outB, b[i].AsPercent())
	}
	return outA, outB
}

// Correlation of two aligned return series. A series with no
// variance is reported as uncorrelated.
func Correlation(changesA domain.PercentData, changesB domain.PercentData) (float64, error) {
	if len(changesA) != len(changesB) {
		return 0, fmt.Errorf("datasets must be same length to calculate correlation - received %d and %d", len(changesA), len(changesB))
	}
	a, b := pairwise(changesA, changesB)
	if len(a) < 2 {
		return math.NaN(), nil
	}

	corr, err := stats.Correlation(a, b)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate correlation: %w", err)
	}

	return corr, nil
}

// Covariance is the sample covariance of two aligned return series
func Covariance(changesA domain.PercentData, changesB domain.PercentData) (float64, error) {
	if len(changesA) != len(changesB) {
		return 0, fmt.Errorf("datasets must be same length to calculate covariance - received %d and %d", len(changesA), len(changesB))
	}
	a, b := pairwise(changesA, changesB)
	if len(a) < 2 {
		return math.NaN(), nil
	}

	c, err := stats.Covariance(a, b)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate covariance: %w", err)
	}
	return c, nil
}

// CorrelationMatrix correlates the period returns of every
// visible symbol in the matrix.
func CorrelationMatrix(m *domain.PriceMatrix, period int) (domain.CorrelationMatrix, error) {
	returns := Returns(m, period, false)
	symbols := m.Symbols()
	values := make([][]float64, len(symbols))
	for i := range values {
		values[i] = make([]float64, len(symbols))
		values[i][i] = 1
	}

	for i, s1 := range symbols {
		for j := i + 1; j < len(symbols); j++ {
			s2 := symbols[j]
			corr, err := Correlation(returns[s1], returns[s2])
			if err != nil {
				return domain.CorrelationMatrix{}, fmt.Errorf("failed on %s-%s: %w", s1, s2, err)
			}
			values[i][j] = corr
			values[j][i] = corr
		}
	}

	return domain.NewCorrelationMatrix(symbols, values), nil
}

// MeanCovariance returns the mean period return of each symbol and
// the sample covariance matrix of those returns, both in percent
// and ordered like m.Symbols().
func MeanCovariance(m *domain.PriceMatrix, period int) ([]float64, [][]float64, error) {
	returns := Returns(m, period, false)
	symbols := m.Symbols()

	means := make([]float64, len(symbols))
	cov := make([][]float64, len(symbols))
	for i, s := range symbols {
		cov[i] = make([]float64, len(symbols))
		data := returns[s].ToStatsData()
		if len(data) == 0 {
			means[i] = math.NaN()
			continue
		}
		mean, err := stats.Mean(data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to calculate mean of %s: %w", s, err)
		}
		means[i] = mean
	}

	for i, s1 := range symbols {
		for j := i; j < len(symbols); j++ {
			s2 := symbols[j]
			c, err := Covariance(returns[s1], returns[s2])
			if err != nil {
				return nil, nil, fmt.Errorf("failed on %s-%s: %w", s1, s2, err)
			}
			cov[i][j] = c
			cov[j][i] = c
		}
	}

	return means, cov, nil
}
