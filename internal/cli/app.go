// Package cli implements the terminal front end of the portfolio tracker.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/platform/config"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

// App is shared by every subcommand. A CLI process is short lived, so the
// container is built once in main and handed to all commands.
type App struct {
	Config   *config.Config
	Services *portssvc.ServiceContainer
	Logger   *slog.Logger
	Out      io.Writer
	Err      io.Writer
}

// NewApp returns an App writing to stdout and stderr.
func NewApp(cfg *config.Config, services *portssvc.ServiceContainer, logger *slog.Logger) *App {
	return &App{
		Config:   cfg,
		Services: services,
		Logger:   logger,
		Out:      os.Stdout,
		Err:      os.Stderr,
	}
}

// Commands returns every subcommand bound to app.
func Commands(app *App) []subcommands.Command {
	return []subcommands.Command{
		&showCmd{app: app},
		&addCmd{app: app},
		&removeCmd{app: app},
		&currencyCmd{app: app},
		&coinsCmd{app: app},
		&ratesCmd{app: app},
		&tokenCmd{app: app},
	}
}

// Register adds the subcommands to c, grouped the way `help` lists them.
func Register(c *subcommands.Commander, app *App) {
	for _, cmd := range Commands(app) {
		group := "portfolio"
		switch cmd.Name() {
		case "currency", "rates":
			group = "currency"
		case "coins":
			group = "market"
		case "token":
			group = "api"
		}
		c.Register(cmd, group)
	}
}

// prime performs the one-shot provider fetches a command needs before it can
// show prices. Failures are logged and the command continues with what it has.
func (a *App) prime(ctx context.Context, market bool) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.Services.Currency.RefreshRates(gctx); err != nil {
			a.Logger.Warn("Exchange rates unavailable", slog.String("error", err.Error()))
		}
		return nil
	})
	if market {
		g.Go(func() error {
			if _, err := a.Services.MarketData.Refresh(gctx, a.Services.Currency.Currency()); err != nil {
				a.Logger.Warn("Market data unavailable", slog.String("error", err.Error()))
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (a *App) failf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, "Error "+format+"\n", args...)
	return subcommands.ExitFailure
}
