package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/google/subcommands"
)

// currencyCmd shows or changes the display currency.
type currencyCmd struct {
	app *App
}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or set the display currency" }
func (*currencyCmd) Usage() string {
	return `portfolio_cli currency [code]

  Without an argument, prints the active display currency and the supported set.
  With a code (e.g. EUR), makes it the display currency.
`
}

func (*currencyCmd) SetFlags(*flag.FlagSet) {}

func (c *currencyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cs := c.app.Services.Currency
	switch f.NArg() {
	case 0:
		active := cs.Currency()
		rows := make([][]string, 0, len(domain.SupportedCurrencies))
		for _, sc := range cs.ListSupportedCurrencies() {
			marker := ""
			if sc.Code == active {
				marker = "*"
			}
			rows = append(rows, []string{marker, sc.Code, sc.Symbol, sc.Locale.String()})
		}
		fmt.Fprintf(c.app.Out, "Display currency: %s\n", active)
		fmt.Fprintln(c.app.Out, renderTable([]string{"", "Code", "Symbol", "Locale"}, rows))
		return subcommands.ExitSuccess
	case 1:
		code := strings.ToUpper(f.Arg(0))
		if !cs.SetCurrency(ctx, code) {
			fmt.Fprintf(c.app.Err, "Error: %q is not supported; choose one of %s\n", f.Arg(0), strings.Join(supportedCodes(cs.ListSupportedCurrencies()), ", "))
			return subcommands.ExitFailure
		}
		fmt.Fprintf(c.app.Out, "Display currency set to %s\n", code)
		return subcommands.ExitSuccess
	default:
		fmt.Fprint(c.app.Err, c.Usage())
		return subcommands.ExitUsageError
	}
}

func supportedCodes(list []domain.SupportedCurrency) []string {
	codes := make([]string, len(list))
	for i, sc := range list {
		codes[i] = sc.Code
	}
	return codes
}
