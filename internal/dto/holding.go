package dto

import (
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddHoldingRequest defines the data needed to add a holding. PurchasePrice is
// per unit and denominated in Currency, which defaults to the active display currency.
type AddHoldingRequest struct {
	CoinID        string          `json:"coinId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"0.5"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" swaggertype:"string" example:"30000"`
	Currency      string          `json:"currency" binding:"omitempty,oneof=USD EUR GBP INR CAD" enums:"USD,EUR,GBP,INR,CAD"`
}

// HoldingResponse defines the data returned for a stored holding. The purchase
// price is always in USD.
type HoldingResponse struct {
	ID               string          `json:"id"`
	CoinID           string          `json:"coinId"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"string"`
	PurchasePriceUSD decimal.Decimal `json:"purchasePriceUsd" swaggertype:"string"`
}

// ToHoldingResponse converts a domain.Holding to HoldingResponse DTO
func ToHoldingResponse(h domain.Holding) HoldingResponse {
	return HoldingResponse{
		ID:               h.ID,
		CoinID:           h.CoinID,
		Amount:           h.Amount,
		PurchasePriceUSD: h.PurchasePrice,
	}
}

// ToListHoldingResponse converts a slice of domain.Holding to a slice of HoldingResponse DTOs
func ToListHoldingResponse(holdings []domain.Holding) []HoldingResponse {
	res := make([]HoldingResponse, len(holdings))
	for i, h := range holdings {
		res[i] = ToHoldingResponse(h)
	}
	return res
}
