package dto

import "github.com/shopspring/decimal"

// Formatter renders amounts for display.
type Formatter interface {
	Format(amount decimal.Decimal, currency string) string
}

// Money carries an exact amount together with its display rendering.
type Money struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	Currency  string          `json:"currency"`
	Formatted string          `json:"formatted"`
}

// NewMoney formats amount in currency.
func NewMoney(f Formatter, amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:    amount,
		Currency:  currency,
		Formatted: f.Format(amount, currency),
	}
}
