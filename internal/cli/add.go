package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/utils/valuation"
	"github.com/charmbracelet/huh"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// searchResultLimit is how many matches the interactive coin picker offers.
const searchResultLimit = 10

// addCmd records a new holding.
type addCmd struct {
	app         *App
	coinID      string
	amount      string
	price       string
	currency    string
	interactive bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a holding" }
func (*addCmd) Usage() string {
	return `portfolio_cli add -coin <id> -amount <qty> -price <unit price> [-currency <code>]
portfolio_cli add -i

  Records a holding. The purchase price is given per coin in -currency (the
  active display currency by default) and stored in USD.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coinID, "coin", "", "coin id as listed by `coins` (e.g. bitcoin)")
	f.StringVar(&c.amount, "amount", "", "quantity held")
	f.StringVar(&c.price, "price", "", "purchase price per coin")
	f.StringVar(&c.currency, "currency", "", "currency of -price (default: display currency)")
	f.BoolVar(&c.interactive, "i", false, "pick the coin and enter values interactively")
}

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.app.prime(ctx, true)

	if c.currency == "" {
		c.currency = c.app.Services.Currency.Currency()
	}
	c.currency = strings.ToUpper(c.currency)

	var coin domain.Coin
	if c.interactive {
		selected, err := c.runDialog()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return subcommands.ExitSuccess
			}
			return c.app.failf("running add dialog: %v", err)
		}
		// Prices may have moved while the dialog was open.
		resolved, ok := valuation.ResolveCoin(&selected, c.app.Services.MarketData.Snapshot().Coins)
		if !ok {
			return c.app.failf("coin %q is no longer in the market data", selected.ID)
		}
		coin = resolved
	} else {
		if c.coinID == "" {
			fmt.Fprintln(c.app.Err, "Error: -coin is required (or use -i)")
			return subcommands.ExitUsageError
		}
		found, ok := c.app.Services.MarketData.FindByID(c.coinID)
		if !ok && !c.app.Services.MarketData.Snapshot().IsEmpty() {
			return c.app.failf("unknown coin %q; see `portfolio_cli coins -search`", c.coinID)
		}
		coin = found
		coin.ID = c.coinID
	}

	amount, price, err := parseHoldingValues(c.amount, c.price)
	if err != nil {
		fmt.Fprintf(c.app.Err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	h, err := c.app.Services.Holdings.AddHolding(ctx, coin.ID, amount, price, c.currency)
	if err != nil {
		return c.app.failf("adding holding: %v", err)
	}

	name := coin.Name
	if name == "" {
		name = coin.ID
	}
	fmt.Fprintf(c.app.Out, "Added %s %s at %s (id %s)\n",
		h.Amount.String(), name, c.app.Services.Currency.Format(price, c.currency), h.ID)
	return subcommands.ExitSuccess
}

// parseHoldingValues parses the amount and price flags.
func parseHoldingValues(amountStr, priceStr string) (decimal.Decimal, decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid amount %q", amountStr)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(priceStr))
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid price %q", priceStr)
	}
	return amount, price, nil
}

// coinOptions builds picker options for the coins matching term.
func coinOptions(coins []domain.Coin, term string, formatPrice func(decimal.Decimal) string) []huh.Option[string] {
	matches := valuation.FilterCoins(coins, term, searchResultLimit)
	options := make([]huh.Option[string], 0, len(matches))
	for _, coin := range matches {
		label := fmt.Sprintf("%s (%s) %s", coin.Name, strings.ToUpper(coin.Symbol), formatPrice(coin.CurrentPrice))
		options = append(options, huh.NewOption(label, coin.ID))
	}
	return options
}

func validateDecimal(positive bool) func(string) error {
	return func(s string) error {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if positive && !d.IsPositive() {
			return fmt.Errorf("must be greater than zero")
		}
		if d.IsNegative() {
			return fmt.Errorf("cannot be negative")
		}
		return nil
	}
}

// runDialog asks for a search term, a coin from the matches, the amount and
// the purchase price. It fills c.amount and c.price and returns the chosen coin.
func (c *addCmd) runDialog() (domain.Coin, error) {
	snapshot := c.app.Services.MarketData.Snapshot()
	if snapshot.IsEmpty() {
		return domain.Coin{}, errors.New("market data is unavailable, try again later")
	}
	quote := snapshot.QuoteCurrency
	formatPrice := func(d decimal.Decimal) string { return c.app.Services.Currency.Format(d, quote) }

	var term string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search coin").
				Description("Name or symbol, empty lists the largest coins").
				Value(&term),
		),
	).Run()
	if err != nil {
		return domain.Coin{}, err
	}

	options := coinOptions(snapshot.Coins, term, formatPrice)
	if len(options) == 0 {
		return domain.Coin{}, fmt.Errorf("no coin matches %q", term)
	}

	var coinID string
	c.price = ""
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Coin").
				Options(options...).
				Value(&coinID),
			huh.NewInput().
				Title("Amount").
				Value(&c.amount).
				Validate(validateDecimal(true)),
			huh.NewInput().
				Title(fmt.Sprintf("Purchase price per coin (%s)", c.currency)).
				Description("Enter 0 for a gift or airdrop").
				Value(&c.price).
				Validate(validateDecimal(false)),
		),
	).Run()
	if err != nil {
		return domain.Coin{}, err
	}

	coin, ok := snapshot.FindCoin(coinID)
	if !ok {
		return domain.Coin{}, fmt.Errorf("coin %q not found", coinID)
	}
	return coin, nil
}
