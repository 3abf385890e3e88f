package graph

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vicanso/go-charts/v2"
)

type Series struct {
	Name   string
	Values []float64
}

type LineChart struct {
	Title  string
	Dates  []time.Time
	Series []Series
}

// labelCount caps how many dates are printed on the x axis
const labelCount = 12

// RenderPNG draws every series as a line against the shared
// dates. Missing values are drawn at the previous known value.
func RenderPNG(c LineChart) ([]byte, error) {
	if len(c.Series) == 0 {
		return nil, fmt.Errorf("nothing to draw")
	}
	if len(c.Dates) < 2 {
		return nil, fmt.Errorf("need at least two dates to draw, have %d", len(c.Dates))
	}

	series := append([]Series{}, c.Series...)
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Name < series[j].Name
	})

	names := make([]string, len(series))
	values := make([][]float64, len(series))
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i, s := range series {
		if len(s.Values) != len(c.Dates) {
			return nil, fmt.Errorf("series %s has %d values, expected %d", s.Name, len(s.Values), len(c.Dates))
		}
		names[i] = s.Name
		values[i] = fillForward(s.Values)
		for _, v := range values[i] {
			if math.IsNaN(v) {
				continue
			}
			yMin = math.Min(yMin, v)
			yMax = math.Max(yMax, v)
		}
	}
	if math.IsInf(yMin, 0) {
		return nil, fmt.Errorf("all series are empty")
	}
	pad := (yMax - yMin) * 0.05
	yMin, yMax = yMin-pad, yMax+pad

	labels := make([]string, len(c.Dates))
	for i, d := range c.Dates {
		labels[i] = d.Format("2006-01-02")
	}

	seriesList := charts.NewSeriesListDataFromValues(values, charts.ChartTypeLine)
	for i := range seriesList {
		seriesList[i].Name = names[i]
	}

	painter, err := charts.Render(
		charts.ChartOption{
			SeriesList: seriesList,
			Width:      1200,
			Height:     800,
		},
		charts.TitleTextOptionFunc(c.Title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: labelCount}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 8}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return painter.Bytes()
}

func fillForward(values []float64) []float64 {
	out := make([]float64, len(values))
	last := math.NaN()
	for i, v := range values {
		if !math.IsNaN(v) {
			last = v
		}
		out[i] = last
	}
	// leading gaps take the first known value
	for i := range out {
		if !math.IsNaN(out[i]) {
			break
		}
		for _, v := range out {
			if !math.IsNaN(v) {
				out[i] = v
				break
			}
		}
	}
	return out
}
