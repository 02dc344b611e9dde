package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/utils/valuation"
)

// portfolioService recomputes the valued portfolio from scratch on every call.
type portfolioService struct {
	BaseService
	holdings portssvc.HoldingsReaderSvc
	market   portssvc.MarketDataReaderSvc
	currency portssvc.CurrencySvcFacade
}

// NewPortfolioService creates the valuation orchestrator.
func NewPortfolioService(holdings portssvc.HoldingsReaderSvc, market portssvc.MarketDataReaderSvc, currency portssvc.CurrencySvcFacade) portssvc.PortfolioService {
	return &portfolioService{
		holdings: holdings,
		market:   market,
		currency: currency,
	}
}

// Ensure portfolioService implements the PortfolioService interface
var _ portssvc.PortfolioService = (*portfolioService)(nil)

func (s *portfolioService) GetPortfolio(ctx context.Context) domain.PortfolioView {
	holdings := s.holdings.ListHoldings(ctx)
	snapshot := s.market.Snapshot()
	display := s.currency.Currency()

	// Prices are valued in whatever currency the cached snapshot was fetched in.
	quote := snapshot.QuoteCurrency
	if quote == "" {
		quote = display
	}

	items := valuation.ComputeLineItems(holdings, snapshot.Coins, quote, s.currency)
	summary := valuation.Aggregate(items)

	if quote != display {
		s.LogDebug(ctx, "Market data quoted in a different currency than the display currency",
			slog.String("quote_currency", quote),
			slog.String("display_currency", display))
	}

	return domain.PortfolioView{
		DisplayCurrency:   display,
		QuoteCurrency:     quote,
		Items:             items,
		Summary:           summary,
		Allocation:        valuation.Allocation(items, summary.TotalValue),
		UnmatchedHoldings: len(holdings) - len(items),
		RatesLoading:      s.currency.Loading(),
	}
}
