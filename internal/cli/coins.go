package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/utils"
	"github.com/google/subcommands"
)

type coinsCmd struct {
	app    *App
	search string
	limit  int
}

func (*coinsCmd) Name() string     { return "coins" }
func (*coinsCmd) Synopsis() string { return "list market coins by market cap" }
func (*coinsCmd) Usage() string {
	return `portfolio_cli coins [-search <term>] [-limit <n>]

  Fetches the market and lists coins priced in the display currency.
`
}

func (c *coinsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "filter by name or symbol")
	f.IntVar(&c.limit, "limit", 20, "maximum number of coins to list")
}

func (c *coinsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.limit < 1 {
		fmt.Fprintln(c.app.Err, "Error: -limit must be at least 1")
		return subcommands.ExitUsageError
	}
	c.app.prime(ctx, true)

	snapshot := c.app.Services.MarketData.Snapshot()
	if snapshot.IsEmpty() {
		return c.app.failf("market data is unavailable")
	}
	coins := c.app.Services.MarketData.SearchCoins(c.search, c.limit)
	if len(coins) == 0 {
		fmt.Fprintf(c.app.Out, "No coin matches %q\n", c.search)
		return subcommands.ExitSuccess
	}

	cs := c.app.Services.Currency
	quote := snapshot.QuoteCurrency
	rows := make([][]string, 0, len(coins))
	for i, coin := range coins {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			coin.ID,
			coin.Name,
			strings.ToUpper(coin.Symbol),
			cs.Format(coin.CurrentPrice, quote),
			signed(coin.PriceChangePercent24h, percent(coin.PriceChangePercent24h)),
			utils.FormatCompact(coin.MarketCap),
			utils.FormatCompact(coin.TotalVolume),
		})
	}
	fmt.Fprintln(c.app.Out, renderTable(
		[]string{"#", "ID", "Name", "Symbol", "Price", "24h", "Market cap", "Volume"},
		rows, 4, 5, 6, 7))
	return subcommands.ExitSuccess
}
