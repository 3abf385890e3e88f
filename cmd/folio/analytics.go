package main

import (
	"context"
	"flag"
	"fmt"
	"folio/internal/domain"
	"folio/internal/service"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"
)

var analyticsCommands = []subcommands.Command{
	&statsCmd{},
	&optimizeCmd{},
	&selectCmd{},
	&diversifyCmd{},
	&graphCmd{},
}

type windowFlags struct {
	symbols  string
	lookback int
	period   int
	verbose  bool
}

func (w *windowFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&w.symbols, "symbols", "", "comma separated symbols")
	f.IntVar(&w.lookback, "lookback", 3*365, "days of price history")
	f.IntVar(&w.period, "period", 1, "return period in trading days")
	f.BoolVar(&w.verbose, "v", false, "debug logging")
}

// load sets up the environment and fetches prices for the window
func (w *windowFlags) load(ctx context.Context) (*env, *domain.PriceMatrix, error) {
	symbols := splitList(w.symbols)
	if len(symbols) == 0 {
		return nil, nil, fmt.Errorf("-symbols is required")
	}
	e, err := loadEnv(w.verbose, false)
	if err != nil {
		return nil, nil, err
	}
	m, err := e.analytics().LoadPrices(ctx, symbols, lookbackStart(w.lookback))
	if err != nil {
		e.close()
		return nil, nil, err
	}
	return e, m, nil
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "-"
	}
	return fmt.Sprintf("%.3f", f)
}

func printWeights(w domain.Weights) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, symbol := range w.Symbols() {
		fmt.Fprintf(tw, "%s\t%s\n", symbol, formatFloat(w[symbol]))
	}
	tw.Flush()
}

func printStatistics(table domain.StatisticsTable) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := []string{"symbol", "count", "mean", "std", "sharpe", "yield", "drawdown"}
	if len(table) > 0 {
		for _, e := range table[0].Extra {
			header = append(header, fmt.Sprintf("mean%d", e.Period), fmt.Sprintf("std%d", e.Period), fmt.Sprintf("sharpe%d", e.Period))
		}
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, s := range table {
		row := []string{
			s.Symbol,
			fmt.Sprint(s.Count),
			formatFloat(s.Mean),
			formatFloat(s.Stdev),
			formatFloat(s.Sharpe),
			formatFloat(s.Yield),
			formatFloat(s.Drawdown),
		}
		for _, e := range s.Extra {
			row = append(row, formatFloat(e.Mean), formatFloat(e.Stdev), formatFloat(e.Sharpe))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

type statsCmd struct {
	window windowFlags
	extra  string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "print return statistics per symbol" }
func (*statsCmd) Usage() string {
	return `folio stats -symbols <a,b,...> [-period n] [-extra n,m] [-lookback days]

  Prints count, mean, std, Sharpe ratio, yield and max drawdown
  per symbol, best Sharpe first.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	c.window.setFlags(f)
	f.StringVar(&c.extra, "extra", "", "additional comma separated return periods")
}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	extra, err := splitInts(c.extra)
	if err != nil {
		return fail(err)
	}
	e, m, err := c.window.load(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	printStatistics(e.analytics().Statistics(m, c.window.period, extra...))
	return subcommands.ExitSuccess
}

type optimizeCmd struct {
	window windowFlags
	target float64
	total  float64
}

func (*optimizeCmd) Name() string     { return "optimize" }
func (*optimizeCmd) Synopsis() string { return "minimum variance weights for the given symbols" }
func (*optimizeCmd) Usage() string {
	return `folio optimize -symbols <a,b,...> [-target pct] [-total n]

  Without -target the return with the best risk per unit of
  return is searched for.
`
}

func (c *optimizeCmd) SetFlags(f *flag.FlagSet) {
	c.window.setFlags(f)
	f.Float64Var(&c.target, "target", math.NaN(), "target mean period return, percent")
	f.Float64Var(&c.total, "total", 1, "budget the weights sum to")
}

func (c *optimizeCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e, m, err := c.window.load(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	analytics := e.analytics()
	if math.IsNaN(c.target) {
		allocation, err := analytics.FindOptimalRatio(m, c.window.period, c.total)
		if err != nil {
			return fail(err)
		}
		printWeights(allocation.Weights)
		fmt.Printf("target %s mean %s std %s sharpe %s converged %t\n",
			formatFloat(allocation.Target), formatFloat(allocation.Mean), formatFloat(allocation.Stdev), formatFloat(allocation.Sharpe), allocation.Converged)
		return subcommands.ExitSuccess
	}

	allocation, err := analytics.Optimize(m, c.window.period, c.target, c.total)
	if err != nil {
		return fail(err)
	}
	printWeights(allocation.Weights)
	fmt.Printf("mean %s std %s sharpe %s\n", formatFloat(allocation.Mean), formatFloat(allocation.Stdev), formatFloat(allocation.Sharpe))
	return subcommands.ExitSuccess
}

type selectCmd struct {
	window     windowFlags
	total      float64
	minPercent float64
	maxCount   int
	positive   float64
	negative   float64
	lambda     float64
	all        bool
}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "greedily build a concentrated, diversified basket" }
func (*selectCmd) Usage() string {
	return `folio select -symbols <a,b,...> [-max n] [-min pct] [-lambda l] [-all]

  Repeatedly optimizes the candidates, evicting the smallest
  holding until every weight clears -min and at most -max remain.
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {
	defaults := service.DefaultOptimizePortfolioInput()
	c.window.setFlags(f)
	f.Float64Var(&c.total, "total", defaults.Total, "budget the weights sum to")
	f.Float64Var(&c.minPercent, "min", defaults.MinPercent, "smallest weight as a fraction of total")
	f.IntVar(&c.maxCount, "max", defaults.MaxCount, "most symbols in a basket")
	f.Float64Var(&c.positive, "pos", defaults.PositiveThreshold, "retry evicted symbols correlated above this")
	f.Float64Var(&c.negative, "neg", defaults.NegativeThreshold, "retry evicted symbols correlated below this")
	f.Float64Var(&c.lambda, "lambda", defaults.Lambda, "prefer higher (positive) or lower (negative) returns, [-2, 2]")
	f.BoolVar(&c.all, "all", false, "print every kept basket, not only the best")
}

func (c *selectCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e, m, err := c.window.load(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	baskets, err := e.analytics().OptimizePortfolio(m, service.OptimizePortfolioInput{
		Period:            c.window.period,
		Total:             c.total,
		MinPercent:        c.minPercent,
		MaxCount:          c.maxCount,
		PositiveThreshold: c.positive,
		NegativeThreshold: c.negative,
		Lambda:            c.lambda,
	})
	if err != nil {
		return fail(err)
	}
	if len(baskets) == 0 {
		fmt.Println("no basket found")
		return subcommands.ExitSuccess
	}

	if !c.all {
		baskets = baskets[len(baskets)-1:]
	}
	for _, b := range baskets {
		printWeights(b.Weights)
		fmt.Printf("score %s mean %s std %s sharpe %s\n\n", formatFloat(b.Score), formatFloat(b.Mean), formatFloat(b.Stdev), formatFloat(b.Sharpe))
	}
	return subcommands.ExitSuccess
}

type diversifyCmd struct {
	window      windowFlags
	size        int
	provided    string
	optional    string
	corrWeight  float64
	drawWeight  float64
	sharpWeight float64
	threshold   float64
}

func (*diversifyCmd) Name() string     { return "diversify" }
func (*diversifyCmd) Synopsis() string { return "find the least correlated portfolio of a given size" }
func (*diversifyCmd) Usage() string {
	return `folio diversify -symbols <a,b,...> -size n [-provided a,b] [-optional i,j]

  Searches every portfolio of -size symbols, scoring on average
  correlation, drawdown and Sharpe ratio. Also prints clusters
  of symbols correlated above -threshold.
`
}

func (c *diversifyCmd) SetFlags(f *flag.FlagSet) {
	c.window.setFlags(f)
	f.IntVar(&c.size, "size", 3, "number of symbols in the portfolio")
	f.StringVar(&c.provided, "provided", "", "symbols that must be held")
	f.StringVar(&c.optional, "optional", "", "indexes into -provided that may be swapped out")
	f.Float64Var(&c.corrWeight, "cr", 1, "weight of average correlation")
	f.Float64Var(&c.drawWeight, "dr", 1, "weight of average drawdown")
	f.Float64Var(&c.sharpWeight, "sr", 1, "weight of average Sharpe ratio")
	f.Float64Var(&c.threshold, "threshold", 0.8, "correlation at which symbols are clustered")
}

func (c *diversifyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	optional, err := splitInts(c.optional)
	if err != nil {
		return fail(err)
	}
	e, m, err := c.window.load(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	analytics := e.analytics()
	symbols, err := analytics.LeastCorrelatedPortfolio(m, service.LeastCorrelatedInput{
		Period:            c.window.period,
		Size:              c.size,
		Provided:          splitList(c.provided),
		Optional:          optional,
		CorrelationWeight: c.corrWeight,
		DrawdownWeight:    c.drawWeight,
		SharpeWeight:      c.sharpWeight,
	})
	if err != nil {
		return fail(err)
	}
	if symbols == nil {
		fmt.Println("no portfolio of that size")
	} else {
		fmt.Println(strings.Join(symbols, ", "))
	}

	corr, err := analytics.CorrelationMatrix(m, c.window.period)
	if err != nil {
		return fail(err)
	}
	fmt.Println("\nclusters:")
	for _, group := range service.CorrelationGroups(corr, c.threshold, nil) {
		fmt.Println("  " + strings.Join(group, ", "))
	}
	return subcommands.ExitSuccess
}

type graphCmd struct {
	window  windowFlags
	weights string
	out     string
}

func (*graphCmd) Name() string     { return "graph" }
func (*graphCmd) Synopsis() string { return "chart growth of 10000 in each symbol" }
func (*graphCmd) Usage() string {
	return `folio graph -symbols <a,b,...> [-weights a=0.5,b=0.5] [-out file.png]

  Writes a PNG line chart and prints statistics of the charted
  series, including the weighted portfolio when given.
`
}

func (c *graphCmd) SetFlags(f *flag.FlagSet) {
	c.window.setFlags(f)
	f.StringVar(&c.weights, "weights", "", "portfolio weights as SYMBOL=weight pairs")
	f.StringVar(&c.out, "out", "graph.png", "output file")
}

func (c *graphCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	weights, err := parseWeights(c.weights)
	if err != nil {
		return fail(err)
	}
	e, m, err := c.window.load(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	result, err := e.analytics().Graph(m, c.window.period, weights)
	if err != nil {
		return fail(err)
	}
	err = os.WriteFile(c.out, result.PNG, 0644)
	if err != nil {
		return fail(err)
	}
	printStatistics(result.Statistics)
	fmt.Println("wrote", c.out)
	return subcommands.ExitSuccess
}
