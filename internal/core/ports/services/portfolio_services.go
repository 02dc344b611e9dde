package services

import (
	"context"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
)

// PortfolioService derives valued views from holdings, market data and the active currency.
type PortfolioService interface {
	// GetPortfolio recomputes line items, summary and allocation from current inputs.
	GetPortfolio(ctx context.Context) domain.PortfolioView
}

// RefresherSvc drives the periodic and event-triggered provider fetches.
type RefresherSvc interface {
	// Start performs the startup fetches and launches the refresh loops.
	Start(ctx context.Context)

	// TriggerMarketRefresh starts an asynchronous market refresh in the active currency.
	TriggerMarketRefresh(ctx context.Context)

	// Stop cancels the loops and waits for in-flight work to return.
	Stop()
}
