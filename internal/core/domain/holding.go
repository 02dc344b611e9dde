package domain

import (
	"github.com/shopspring/decimal"
)

// Holding is a user-owned position. PurchasePrice is always stored in
// CanonicalCurrency regardless of the currency active when it was entered.
type Holding struct {
	ID            string          `json:"id"`
	CoinID        string          `json:"coinId"`
	Amount        decimal.Decimal `json:"amount"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}
