package repositories

import (
	"context"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
)

// MarketDataProvider fetches ranked coin market data from an external source.
type MarketDataProvider interface {
	// FetchMarkets returns one page of coins ordered by market capitalisation,
	// priced in quoteCurrency.
	FetchMarkets(ctx context.Context, quoteCurrency string, perPage, page int) ([]domain.Coin, error)
}

// ExchangeRateProvider fetches the latest USD-pivoted exchange-rate table.
type ExchangeRateProvider interface {
	FetchLatestRates(ctx context.Context) (domain.ExchangeRateTable, error)
}
