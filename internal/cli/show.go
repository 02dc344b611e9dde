package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/google/subcommands"
)

// showCmd prints the valued portfolio.
type showCmd struct {
	app      *App
	markdown bool
	offline  bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display holdings valued at current market prices" }
func (*showCmd) Usage() string {
	return `portfolio_cli show [-md] [-offline]

  Fetches exchange rates and market prices, then prints every holding with its
  current value, profit/loss and the allocation across coins.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "render the report as markdown")
	f.BoolVar(&c.offline, "offline", false, "skip provider fetches")
}

func (c *showCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.offline {
		c.app.prime(ctx, true)
	}
	view := c.app.Services.Portfolio.GetPortfolio(ctx)
	if c.markdown {
		printMarkdown(c.app.Out, c.portfolioMarkdown(view))
		return subcommands.ExitSuccess
	}
	fmt.Fprint(c.app.Out, c.portfolioText(view))
	return subcommands.ExitSuccess
}

func (c *showCmd) holdingRows(view domain.PortfolioView, colour bool) [][]string {
	cs := c.app.Services.Currency
	rows := make([][]string, 0, len(view.Items))
	for _, it := range view.Items {
		pl := cs.Format(it.ProfitLoss, view.QuoteCurrency)
		if colour {
			pl = signed(it.ProfitLoss, pl)
		}
		rows = append(rows, []string{
			it.ID,
			it.Coin.Name,
			strings.ToUpper(it.Coin.Symbol),
			it.Amount.String(),
			cs.Format(it.Coin.CurrentPrice, view.QuoteCurrency),
			cs.Format(it.CurrentValue, view.QuoteCurrency),
			pl,
			percent(it.ProfitLossPercent),
		})
	}
	return rows
}

var holdingHeaders = []string{"ID", "Coin", "Symbol", "Amount", "Price", "Value", "P/L", "P/L %"}

func allocationRows(view domain.PortfolioView) [][]string {
	rows := make([][]string, 0, len(view.Allocation))
	for _, s := range view.Allocation {
		rows = append(rows, []string{s.CoinSymbol, s.CoinName, percent(s.Percentage)})
	}
	return rows
}

func (c *showCmd) portfolioText(view domain.PortfolioView) string {
	cs := c.app.Services.Currency
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Portfolio (%s)", view.QuoteCurrency)) + "\n")
	if len(view.Items) == 0 {
		b.WriteString(noteStyle.Render("No holdings yet. Add one with `portfolio_cli add`.") + "\n")
	} else {
		b.WriteString(renderTable(holdingHeaders, c.holdingRows(view, true), 3, 4, 5, 6, 7) + "\n")
	}

	fmt.Fprintf(&b, "Total value:  %s\n", cs.Format(view.Summary.TotalValue, view.QuoteCurrency))
	fmt.Fprintf(&b, "Total P/L:    %s (%s)\n",
		signed(view.Summary.TotalProfitLoss, cs.Format(view.Summary.TotalProfitLoss, view.QuoteCurrency)),
		percent(view.Summary.TotalProfitLossPercent))

	if len(view.Allocation) > 0 {
		b.WriteString("\n" + titleStyle.Render("Allocation") + "\n")
		b.WriteString(renderTable([]string{"Symbol", "Coin", "Share"}, allocationRows(view), 2) + "\n")
	}
	if notes := viewNotes(view); notes != "" {
		b.WriteString(noteStyle.Render(notes) + "\n")
	}
	return b.String()
}

func (c *showCmd) portfolioMarkdown(view domain.PortfolioView) string {
	cs := c.app.Services.Currency
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio (%s)\n\n", view.QuoteCurrency)
	if len(view.Items) > 0 {
		b.WriteString(markdownTable(holdingHeaders, c.holdingRows(view, false)))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "**Total value:** %s  \n", cs.Format(view.Summary.TotalValue, view.QuoteCurrency))
	fmt.Fprintf(&b, "**Total P/L:** %s (%s)\n\n",
		cs.Format(view.Summary.TotalProfitLoss, view.QuoteCurrency),
		percent(view.Summary.TotalProfitLossPercent))
	if len(view.Allocation) > 0 {
		b.WriteString("## Allocation\n\n")
		b.WriteString(markdownTable([]string{"Symbol", "Coin", "Share"}, allocationRows(view)))
	}
	if notes := viewNotes(view); notes != "" {
		b.WriteString("\n> " + notes + "\n")
	}
	return b.String()
}

// viewNotes explains why the report may be incomplete.
func viewNotes(view domain.PortfolioView) string {
	var parts []string
	if view.UnmatchedHoldings > 0 {
		parts = append(parts, fmt.Sprintf("%d holding(s) hidden: coin not in the current market data.", view.UnmatchedHoldings))
	}
	if view.RatesLoading {
		parts = append(parts, "Exchange rates not loaded yet; conversions use a rate of 1.")
	}
	return strings.Join(parts, " ")
}
