package main

import (
	"context"
	"flag"
	"fmt"
	"folio/internal/domain"
	"folio/internal/metrics"
	"folio/internal/prices"
	"folio/internal/repository"
	"folio/internal/service"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

var dataCommands = []subcommands.Command{
	&boostsCmd{},
	&ingestCmd{},
	&snapshotCmd{},
	&transferCmd{},
	&splitCmd{},
}

type boostsCmd struct {
	lookback int
	period   int
	verbose  bool
}

func (*boostsCmd) Name() string     { return "boosts" }
func (*boostsCmd) Synopsis() string { return "rescore instrument boosts from recent Sharpe ratios" }
func (*boostsCmd) Usage() string {
	return `folio boosts [-lookback days] [-period n]
`
}

func (c *boostsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.lookback, "lookback", 365, "days of price history")
	f.IntVar(&c.period, "period", 1, "return period in trading days")
	f.BoolVar(&c.verbose, "v", false, "debug logging")
}

func (c *boostsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e, err := loadEnv(c.verbose, true)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	tx, err := e.db.Begin()
	if err != nil {
		return fail(err)
	}
	defer tx.Rollback()

	boostService := service.NewBoostService(repository.NewInstrumentRepository(), e.analytics(), e.logger)
	instruments, err := boostService.Refresh(ctx, tx, time.Duration(c.lookback)*24*time.Hour, c.period)
	if err != nil {
		return fail(err)
	}
	if err := tx.Commit(); err != nil {
		return fail(err)
	}

	for _, i := range instruments {
		fmt.Printf("%-8s %.3f\n", i.Symbol, i.Boost)
	}
	return subcommands.ExitSuccess
}

type ingestCmd struct {
	symbols  string
	universe bool
	start    string
	verbose  bool
}

func (*ingestCmd) Name() string     { return "ingest" }
func (*ingestCmd) Synopsis() string { return "store daily prices from the configured vendor" }
func (*ingestCmd) Usage() string {
	return `folio ingest [-symbols a,b | -universe] [-start yyyy-mm-dd]

  Symbols that already have prices are only updated from their
  latest stored date.
`
}

func (c *ingestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbols, "symbols", "", "comma separated symbols")
	f.BoolVar(&c.universe, "universe", false, "ingest the tracked universe and etfs")
	f.StringVar(&c.start, "start", "2018-01-01", "first date to store")
	f.BoolVar(&c.verbose, "v", false, "debug logging")
}

func (c *ingestCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	start, err := time.Parse(time.DateOnly, c.start)
	if err != nil {
		return fail(err)
	}
	symbols := splitList(c.symbols)
	if c.universe {
		symbols = append(symbols, prices.GetUniverseAssets()...)
		symbols = append(symbols, prices.GetEtfSymbols()...)
	}
	if len(symbols) == 0 {
		return fail(fmt.Errorf("-symbols or -universe is required"))
	}

	e, err := loadEnv(c.verbose, true)
	if err != nil {
		return fail(err)
	}
	defer e.close()
	if e.config.PriceVendor == service.VendorDB {
		return fail(fmt.Errorf("cannot ingest from the database, set PRICE_VENDOR"))
	}

	tx, err := e.db.Begin()
	if err != nil {
		return fail(err)
	}
	defer tx.Rollback()

	ingestion := service.NewPriceIngestionService(e.fetcher, repository.NewPriceRepository(e.db), e.logger)
	n, err := ingestion.Ingest(ctx, tx, symbols, start)
	if err != nil {
		return fail(err)
	}
	if err := tx.Commit(); err != nil {
		return fail(err)
	}

	fmt.Printf("stored %d prices\n", n)
	return subcommands.ExitSuccess
}

type snapshotCmd struct {
	date        string
	stocks      float64
	stockEquity float64
	coins       float64
	performance bool
	verbose     bool
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record the account balances for a day" }
func (*snapshotCmd) Usage() string {
	return `folio snapshot -stocks n -equity n [-coins n] [-d yyyy-mm-dd]
folio snapshot -performance

  Records stock, coin and cash values with the return since the
  previous snapshot. -performance prints time weighted growth.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "snapshot date, defaults to today")
	f.Float64Var(&c.stocks, "stocks", 0, "market value of stock positions")
	f.Float64Var(&c.stockEquity, "equity", 0, "stock account equity, positions plus cash")
	f.Float64Var(&c.coins, "coins", 0, "market value of crypto positions")
	f.BoolVar(&c.performance, "performance", false, "print growth across snapshots instead")
	f.BoolVar(&c.verbose, "v", false, "debug logging")
}

func (c *snapshotCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	date, err := parseDate(c.date)
	if err != nil {
		return fail(err)
	}
	e, err := loadEnv(c.verbose, true)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	tx, err := e.db.Begin()
	if err != nil {
		return fail(err)
	}
	defer tx.Rollback()

	accountService := service.NewAccountService(repository.NewAccountRepository(), e.logger)

	if c.performance {
		points, err := accountService.Performance(ctx, tx)
		if err != nil {
			return fail(err)
		}
		printGrowth(points)
		return subcommands.ExitSuccess
	}

	snapshot, err := accountService.RecordSnapshot(ctx, tx, date, domain.AccountBalances{
		StocksValue:        decimal.NewFromFloat(c.stocks),
		StockAccountEquity: decimal.NewFromFloat(c.stockEquity),
		CoinsValue:         decimal.NewFromFloat(c.coins),
	})
	if err != nil {
		return fail(err)
	}
	if err := tx.Commit(); err != nil {
		return fail(err)
	}

	fmt.Printf("%s equity %s cost %s cash %s return %s%%\n",
		snapshot.Date.Format(time.DateOnly),
		usd(snapshot.Equity),
		usd(snapshot.Cost),
		usd(snapshot.CashValue),
		snapshot.ReturnPct.StringFixed(2),
	)
	return subcommands.ExitSuccess
}

// usd formats an amount in dollars, rounded to the cent
func usd(amount decimal.Decimal) string {
	cents := amount.Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}

func printGrowth(points []metrics.GrowthPoint) {
	for _, p := range points {
		fmt.Printf("%s %s\n", p.Date.Format(time.DateOnly), p.Growth.StringFixed(4))
	}
}

type transferCmd struct {
	id      string
	date    string
	amount  float64
	verbose bool
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "record a deposit into the account" }
func (*transferCmd) Usage() string {
	return `folio transfer -id <ach id> -amount n [-d yyyy-mm-dd]
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "transfer id from the brokerage")
	f.StringVar(&c.date, "d", "", "transfer date, defaults to today")
	f.Float64Var(&c.amount, "amount", 0, "amount deposited")
	f.BoolVar(&c.verbose, "v", false, "debug logging")
}

func (c *transferCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	date, err := parseDate(c.date)
	if err != nil {
		return fail(err)
	}
	e, err := loadEnv(c.verbose, true)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	tx, err := e.db.Begin()
	if err != nil {
		return fail(err)
	}
	defer tx.Rollback()

	err = service.NewAccountService(repository.NewAccountRepository(), e.logger).AddTransfer(ctx, tx, domain.Transfer{
		TransferID: c.id,
		CreatedAt:  date,
		Amount:     decimal.NewFromFloat(c.amount),
	})
	if err != nil {
		return fail(err)
	}
	if err := tx.Commit(); err != nil {
		return fail(err)
	}
	fmt.Printf("recorded %s on %s\n", usd(decimal.NewFromFloat(c.amount)), date.Format(time.DateOnly))
	return subcommands.ExitSuccess
}

type splitCmd struct {
	symbol  string
	ratio   int
	date    string
	verbose bool
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "record a stock split so stored prices are adjusted" }
func (*splitCmd) Usage() string {
	return `folio split -symbol <s> -ratio n -d yyyy-mm-dd
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "split symbol")
	f.IntVar(&c.ratio, "ratio", 0, "new shares per old share")
	f.StringVar(&c.date, "d", "", "first trading day after the split")
	f.BoolVar(&c.verbose, "v", false, "debug logging")
}

func (c *splitCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	symbols := splitList(c.symbol)
	if len(symbols) != 1 {
		return fail(fmt.Errorf("exactly one -symbol is required"))
	}
	if c.date == "" {
		return fail(fmt.Errorf("-d is required"))
	}
	date, err := parseDate(c.date)
	if err != nil {
		return fail(err)
	}
	e, err := loadEnv(c.verbose, true)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	tx, err := e.db.Begin()
	if err != nil {
		return fail(err)
	}
	defer tx.Rollback()

	err = repository.NewPriceRepository(e.db).AddSplit(ctx, tx, symbols[0], int32(c.ratio), date)
	if err != nil {
		return fail(err)
	}
	if err := tx.Commit(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
