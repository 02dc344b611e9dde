package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/google/subcommands"
)

type ratesCmd struct {
	app *App
	all bool
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show USD exchange rates" }
func (*ratesCmd) Usage() string {
	return `portfolio_cli rates [-all]

  Fetches the latest exchange rates and prints them for the supported display
  currencies, or for every currency the provider returned with -all.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "list every currency returned by the provider")
}

func (c *ratesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.app.prime(ctx, false)

	cs := c.app.Services.Currency
	if cs.Loading() {
		return c.app.failf("exchange rates are unavailable")
	}
	table := cs.ExchangeRates()

	var codes []string
	if c.all {
		codes = table.Codes()
	} else {
		codes = supportedCodes(cs.ListSupportedCurrencies())
	}

	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		rate, ok := table.Rate(code)
		value := "n/a"
		if ok {
			value = rate.String()
		}
		rows = append(rows, []string{code, value})
	}
	fmt.Fprintf(c.app.Out, "1 %s equals (fetched %s)\n", domain.CanonicalCurrency, table.FetchedAt.Format(time.RFC3339))
	fmt.Fprintln(c.app.Out, renderTable([]string{"Currency", "Rate"}, rows, 1))
	return subcommands.ExitSuccess
}
