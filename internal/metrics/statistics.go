package metrics

import (
	"folio/internal/domain"
	"math"

	"github.com/montanaflynn/stats"
)

const TradingDaysPerYear = 252

type StatisticsInput struct {
	Period       int
	ExtraPeriods []int
	// annual risk free rate in percent
	RiskFreeRate float64
	// use the period-wide rolling mean of price instead of raw price
	Smooth bool
}

// Statistics builds the per-symbol statistics table for every
// visible symbol in the matrix, sorted by Sharpe ratio.
func Statistics(m *domain.PriceMatrix, in StatisticsInput) domain.StatisticsTable {
	returns := Returns(m, in.Period, in.Smooth)
	extraReturns := make([]map[string]domain.PercentData, len(in.ExtraPeriods))
	for i, p := range in.ExtraPeriods {
		extraReturns[i] = Returns(m, p, in.Smooth)
	}

	out := domain.StatisticsTable{}
	for _, symbol := range m.Symbols() {
		prices, _ := m.Column(symbol)
		s := domain.SymbolStatistics{
			Symbol:           symbol,
			PeriodStatistics: SummarizeReturns(returns[symbol], in.Period, in.RiskFreeRate),
			Yield:            Yield(prices),
			Drawdown:         MaxDrawdown(prices),
		}
		for i, p := range in.ExtraPeriods {
			s.Extra = append(s.Extra, SummarizeReturns(extraReturns[i][symbol], p, in.RiskFreeRate))
		}
		out = append(out, s)
	}
	out.SortBySharpe()

	return out
}

// SummarizeReturns reports count, sample mean, sample stdev and
// Sharpe ratio of a return series, in percent. Missing
// observations are ignored.
func SummarizeReturns(returns domain.PercentData, period int, riskFreeRate float64) domain.PeriodStatistics {
	data := returns.ToStatsData()
	out := domain.PeriodStatistics{
		Period: period,
		Count:  len(data),
		Mean:   math.NaN(),
		Stdev:  math.NaN(),
		Sharpe: math.NaN(),
	}
	if len(data) == 0 {
		return out
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return out
	}
	out.Mean = mean
	if len(data) < 2 {
		return out
	}
	stdev, err := stats.StandardDeviationSample(data)
	if err != nil {
		return out
	}
	out.Stdev = stdev
	out.Sharpe = SharpeRatio(mean, stdev, period, riskFreeRate)

	return out
}

// SharpeRatio compares a per-period mean return against the
// risk free rate scaled down to the same period.
func SharpeRatio(mean, stdev float64, period int, riskFreeRate float64) float64 {
	return (mean - riskFreeRate*float64(period)/TradingDaysPerYear) / stdev
}
