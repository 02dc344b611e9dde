package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateTable maps a currency code to its value relative to USD, such that
// amountInCurrency = amountInUSD * Rates[currency]. USD is implicitly 1.
type ExchangeRateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
}

// NewExchangeRateTable builds a USD-pivoted table from rates.
// The input map is copied.
func NewExchangeRateTable(rates map[string]decimal.Decimal, fetchedAt time.Time) ExchangeRateTable {
	copied := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}
	return ExchangeRateTable{Base: CanonicalCurrency, Rates: copied, FetchedAt: fetchedAt}
}

// Rate returns the USD-relative rate for code. A missing or non-positive rate
// reports false; USD always reports 1.
func (t ExchangeRateTable) Rate(code string) (decimal.Decimal, bool) {
	if code == CanonicalCurrency {
		return decimal.NewFromInt(1), true
	}
	rate, ok := t.Rates[code]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}

// Codes returns the currency codes present in the table in sorted order.
func (t ExchangeRateTable) Codes() []string {
	codes := make([]string, 0, len(t.Rates))
	for code := range t.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Clone returns a deep copy of the table.
func (t ExchangeRateTable) Clone() ExchangeRateTable {
	out := NewExchangeRateTable(t.Rates, t.FetchedAt)
	if t.Base != "" {
		out.Base = t.Base
	}
	return out
}

// Convert converts amount between two currencies by normalising through USD.
// Identical codes return amount unchanged. A missing rate is treated as 1, which
// degrades to an approximate identity instead of failing.
func (t ExchangeRateTable) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	one := decimal.NewFromInt(1)
	fromRate, ok := t.Rate(from)
	if !ok {
		fromRate = one
	}
	toRate, ok := t.Rate(to)
	if !ok {
		toRate = one
	}
	return amount.Div(fromRate).Mul(toRate)
}
