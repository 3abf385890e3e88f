package domain

import (
	"math"

	"github.com/montanaflynn/stats"
)

// kind of experimental. but i've been toying
// with the idea of using typed numbers that
// represent the actual unit we want. this
// reduces ambiguity when looking at a float
// and wondering what unit it represents

type Percent float64
type PercentData []Percent

func (p Percent) AsFraction() float64 {
	return float64(p)
}

func (p Percent) AsPercent() float64 {
	return p.AsFraction() * 100
}

func (p Percent) IsValid() bool {
	return !math.IsNaN(float64(p)) && !math.IsInf(float64(p), 0)
}

func PercentFromFraction(f float64) Percent {
	return Percent(f)
}

// ToStatsData drops missing observations and converts
// to percent units, which is what every statistic we
// report is expressed in
func (pd PercentData) ToStatsData() stats.Float64Data {
	out := make(stats.Float64Data, 0, len(pd))
	for _, n := range pd {
		if !n.IsValid() {
			continue
		}
		out = append(out, n.AsPercent())
	}
	return out
}

// Valid reports how many observations are usable
func (pd PercentData) Valid() int {
	count := 0
	for _, n := range pd {
		if n.IsValid() {
			count++
		}
	}
	return count
}
