package services

import (
	"context"

	portsrepo "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Persisted state (preferred currency, holdings) is restored before it returns; provider
// fetches only start once Refresher.Start is called.
func NewServiceContainer(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency first since holdings and valuation convert through it
	container.Currency = NewCurrencyService(ctx, repos.Store, repos.ExchangeRate)

	container.Holdings = NewHoldingsService(repos.Store, container.Currency)
	container.Holdings.LoadHoldings(ctx)

	container.MarketData = NewMarketDataService(repos.MarketData, WithPageSize(cfg.MarketPageSize))
	container.Portfolio = NewPortfolioService(container.Holdings, container.MarketData, container.Currency)
	container.Refresher = NewRefresher(container.Currency, container.MarketData,
		cfg.RatesRefreshInterval, cfg.MarketRefreshInterval)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.HoldingsSvcFacade   = (*holdingsService)(nil)
	_ portssvc.MarketDataSvcFacade = (*marketDataService)(nil)
)
