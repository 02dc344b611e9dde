package dto

import (
	"time"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetCurrencyRequest selects the active display currency.
type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}

// CurrencyStateResponse reports the active display currency.
type CurrencyStateResponse struct {
	Currency string `json:"currency"`
	Loading  bool   `json:"loading"`
}

// SupportedCurrencyResponse defines the data returned for a selectable currency.
type SupportedCurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Locale string `json:"locale"`
}

// ToSupportedCurrencyResponse converts a domain.SupportedCurrency to SupportedCurrencyResponse DTO
func ToSupportedCurrencyResponse(c domain.SupportedCurrency) SupportedCurrencyResponse {
	return SupportedCurrencyResponse{
		Code:   c.Code,
		Symbol: c.Symbol,
		Locale: c.Locale.String(),
	}
}

// ToListSupportedCurrencyResponse converts a slice of domain.SupportedCurrency to DTOs
func ToListSupportedCurrencyResponse(currencies []domain.SupportedCurrency) []SupportedCurrencyResponse {
	res := make([]SupportedCurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToSupportedCurrencyResponse(c)
	}
	return res
}

// ExchangeRatesResponse is the current USD-based rate table.
type ExchangeRatesResponse struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates" swaggertype:"object,string"`
	FetchedAt *time.Time                 `json:"fetchedAt,omitempty"`
	Loading   bool                       `json:"loading"`
}

// ToExchangeRatesResponse converts a domain.ExchangeRateTable to ExchangeRatesResponse DTO
func ToExchangeRatesResponse(table domain.ExchangeRateTable, loading bool) ExchangeRatesResponse {
	res := ExchangeRatesResponse{
		Base:    table.Base,
		Rates:   table.Rates,
		Loading: loading,
	}
	if res.Rates == nil {
		res.Rates = map[string]decimal.Decimal{}
	}
	if !table.FetchedAt.IsZero() {
		fetchedAt := table.FetchedAt
		res.FetchedAt = &fetchedAt
	}
	return res
}

// ConvertParams are the query parameters of a conversion.
type ConvertParams struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required,len=3"`
	To     string `form:"to" binding:"required,len=3"`
}

// ConvertResponse reports a converted amount.
type ConvertResponse struct {
	From   Money `json:"from"`
	Result Money `json:"result"`
}
