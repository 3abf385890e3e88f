package service

import (
	"folio/internal/domain"
	"math"
	"time"
)

const (
	// Sharpe ratio at which an instrument is neither boosted nor penalized
	boostNeutralSharpe = 0.8
	homeMarketBoost    = 1.5
)

// Boost turns a Sharpe ratio into a ranking multiplier. Every 1.0
// of Sharpe above or below neutral doubles or halves the boost.
// An undefined Sharpe ratio leaves the instrument at 1.
func Boost(sharpe float64, home bool) float64 {
	if math.IsNaN(sharpe) || math.IsInf(sharpe, 0) {
		return 1
	}
	boost := math.Pow(2, sharpe-boostNeutralSharpe)
	if home {
		boost *= homeMarketBoost
	}
	return boost
}

// ScoreBoosts sets Boost and BoostUpdatedAt on each instrument in
// place. Nothing else on an instrument changes.
func ScoreBoosts(instruments []domain.Instrument, stats map[string]domain.SymbolStatistics, homeTag string, now time.Time) {
	for i := range instruments {
		sharpe := math.NaN()
		if s, ok := stats[instruments[i].Symbol]; ok {
			sharpe = s.Sharpe
		}
		home := homeTag != "" && instruments[i].HasTag(homeTag)

		updatedAt := now
		instruments[i].Boost = Boost(sharpe, home)
		instruments[i].BoostUpdatedAt = &updatedAt
	}
}
