package services

import (
	"context"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyChangeFunc is invoked after the active display currency changed.
type CurrencyChangeFunc func(ctx context.Context, previous, current string)

// CurrencyReaderSvc defines read operations on the active currency and the rate table.
type CurrencyReaderSvc interface {
	// Currency returns the active display currency.
	Currency() string

	// ListSupportedCurrencies returns the selectable currencies in display order.
	ListSupportedCurrencies() []domain.SupportedCurrency

	// ExchangeRates returns a copy of the current rate table.
	ExchangeRates() domain.ExchangeRateTable

	// Loading reports whether no rate fetch has succeeded yet.
	Loading() bool
}

// CurrencyConverterSvc converts and formats monetary amounts.
type CurrencyConverterSvc interface {
	// Convert converts amount from one currency to another through the USD pivot.
	Convert(amount decimal.Decimal, from, to string) decimal.Decimal

	// Format renders amount, already denominated in currency, for display.
	Format(amount decimal.Decimal, currency string) string

	// FormatCanonical converts a USD amount into currency and formats it.
	FormatCanonical(amountUSD decimal.Decimal, currency string) string
}

// CurrencyWriterSvc defines mutations of the currency state.
type CurrencyWriterSvc interface {
	// SetCurrency selects a new display currency. Unsupported codes are rejected
	// and leave the state unchanged; the return value reports acceptance.
	SetCurrency(ctx context.Context, code string) bool

	// RefreshRates fetches a new rate table. On failure the previous table is kept.
	RefreshRates(ctx context.Context) error

	// Subscribe registers fn to be called after every accepted currency change.
	Subscribe(fn CurrencyChangeFunc)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
	CurrencyWriterSvc
}
