package domain

import "time"

type Instrument struct {
	Symbol     string
	Name       string
	Popularity int32
	Sector     *string
	Tags       []string
	ListDate   *time.Time
	LastUpdate time.Time

	// written by the boost scorer only
	Boost          float64
	BoostUpdatedAt *time.Time
}

func (i Instrument) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
