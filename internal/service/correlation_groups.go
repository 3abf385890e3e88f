package service

import (
	"folio/internal/domain"
	"folio/internal/util"
	"sort"
	"strings"
)

// adjacency of symbols by pairwise correlation
type correlationGraph map[string]map[string]float64

func newCorrelationGraph(corr domain.CorrelationMatrix) correlationGraph {
	g := correlationGraph{}
	for _, symbol := range corr.Symbols() {
		g[symbol] = map[string]float64{}
	}
	for _, p := range corr.Pairs() {
		g[p.AssetOne][p.AssetTwo] = p.Correlation
		g[p.AssetTwo][p.AssetOne] = p.Correlation
	}
	return g
}

func (g correlationGraph) neighbors(symbol string) []string {
	out := make([]string, 0, len(g[symbol]))
	for n := range g[symbol] {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// grow adds symbol to group, then every neighbor correlated at
// least threshold with all current members
func (g correlationGraph) grow(symbol string, visited, group *util.Set, threshold float64) {
	visited.Add(symbol)
	group.Add(symbol)

	for _, neighbor := range g.neighbors(symbol) {
		if visited.Contains(neighbor) {
			continue
		}
		ok := true
		for member, corr := range g[neighbor] {
			if group.Contains(member) && corr < threshold {
				ok = false
			}
		}
		if ok {
			g.grow(neighbor, visited, group, threshold)
		}
	}
}

func createGroupsWithThreshold(g correlationGraph, threshold float64) [][]string {
	symbols := make([]string, 0, len(g))
	for s := range g {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	groups := util.NewSet()
	for _, symbol := range symbols {
		group := util.NewSet()
		g.grow(symbol, util.NewSet(), group, threshold)
		groups.Add(strings.Join(group.List(), ","))
	}

	out := [][]string{}
	for _, group := range groups.List() {
		out = append(out, strings.Split(group, ","))
	}
	return out
}

// keepLargestGroups resolves symbols that sit in more than one
// group in favor of the group with the most weight
func keepLargestGroups(groups [][]string, weights domain.Weights) [][]string {
	type weightedGroup struct {
		symbols []string
		weight  float64
	}
	weighted := []weightedGroup{}
	for _, group := range groups {
		w := 0.0
		for _, symbol := range group {
			w += weights[symbol]
		}
		weighted = append(weighted, weightedGroup{symbols: group, weight: w})
	}
	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].weight > weighted[j].weight
	})

	used := util.NewSet()
	out := [][]string{}
	for _, group := range weighted {
		overlaps := false
		for _, symbol := range group.symbols {
			if used.Contains(symbol) {
				overlaps = true
			} else {
				used.Add(symbol)
			}
		}
		if !overlaps {
			out = append(out, group.symbols)
		}
	}
	return out
}

// CorrelationGroups clusters symbols whose returns all move
// together at or above threshold. With weights, overlapping
// clusters are resolved towards the heavier one.
func CorrelationGroups(corr domain.CorrelationMatrix, threshold float64, weights domain.Weights) [][]string {
	groups := createGroupsWithThreshold(newCorrelationGraph(corr), threshold)
	if len(weights) == 0 {
		return groups
	}
	return keepLargestGroups(groups, weights)
}
