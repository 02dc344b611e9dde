package services

import (
	"context"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// HoldingsReaderSvc defines read operations on the holdings list.
type HoldingsReaderSvc interface {
	// ListHoldings returns a copy of the in-memory holdings list.
	ListHoldings(ctx context.Context) []domain.Holding
}

// HoldingsWriterSvc defines mutations of the holdings list. Every mutation is
// followed by a full persist of the resulting list.
type HoldingsWriterSvc interface {
	// LoadHoldings restores the list from persistent storage. Absence or a parse
	// failure yields an empty list.
	LoadHoldings(ctx context.Context) []domain.Holding

	// AddHolding converts purchasePrice from priceCurrency into the canonical
	// currency, assigns a fresh id, appends and persists.
	AddHolding(ctx context.Context, coinID string, amount, purchasePrice decimal.Decimal, priceCurrency string) (*domain.Holding, error)

	// RemoveHolding filters out holdingID and persists. Unknown ids are a no-op.
	RemoveHolding(ctx context.Context, holdingID string) error
}

// HoldingsSvcFacade combines all holdings-related service interfaces
type HoldingsSvcFacade interface {
	HoldingsReaderSvc
	HoldingsWriterSvc
}
