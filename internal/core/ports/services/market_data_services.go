package services

import (
	"context"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
)

// MarketDataReaderSvc defines read operations on the market data cache.
type MarketDataReaderSvc interface {
	// Snapshot returns a copy of the cached market data.
	Snapshot() domain.MarketSnapshot

	// FindByID returns the cached coin with the given id.
	FindByID(coinID string) (domain.Coin, bool)

	// SearchCoins filters the cached coins by name or symbol.
	SearchCoins(term string, limit int) []domain.Coin
}

// MarketDataWriterSvc defines refresh operations on the market data cache.
type MarketDataWriterSvc interface {
	// Refresh fetches coins priced in quoteCurrency and replaces the cache on success.
	// On failure the cache is left unchanged.
	Refresh(ctx context.Context, quoteCurrency string) ([]domain.Coin, error)
}

// MarketDataSvcFacade combines all market-data-related service interfaces
type MarketDataSvcFacade interface {
	MarketDataReaderSvc
	MarketDataWriterSvc
}
