package dto

import (
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PortfolioItemResponse is one valued holding.
type PortfolioItemResponse struct {
	HoldingID         string          `json:"holdingId"`
	CoinID            string          `json:"coinId"`
	CoinName          string          `json:"coinName"`
	CoinSymbol        string          `json:"coinSymbol"`
	ImageURL          string          `json:"imageUrl"`
	Amount            decimal.Decimal `json:"amount" swaggertype:"string"`
	CurrentPrice      Money           `json:"currentPrice"`
	PurchasePrice     Money           `json:"purchasePrice"`
	CurrentValue      Money           `json:"currentValue"`
	ProfitLoss        Money           `json:"profitLoss"`
	ProfitLossPercent decimal.Decimal `json:"profitLossPercent" swaggertype:"string"`
	PriceChange24h    decimal.Decimal `json:"priceChange24h" swaggertype:"string"`
}

// PortfolioSummaryResponse aggregates all valued holdings.
type PortfolioSummaryResponse struct {
	TotalValue             Money           `json:"totalValue"`
	TotalProfitLoss        Money           `json:"totalProfitLoss"`
	TotalProfitLossPercent decimal.Decimal `json:"totalProfitLossPercent" swaggertype:"string"`
}

// AllocationResponse is one slice of the allocation chart.
type AllocationResponse struct {
	Name       string          `json:"name"`
	FullName   string          `json:"fullName"`
	Value      Money           `json:"value"`
	Percentage decimal.Decimal `json:"percentage" swaggertype:"string"`
}

// PortfolioResponse is the complete valued portfolio.
type PortfolioResponse struct {
	DisplayCurrency   string                   `json:"displayCurrency"`
	QuoteCurrency     string                   `json:"quoteCurrency"`
	RatesLoading      bool                     `json:"ratesLoading"`
	UnmatchedHoldings int                      `json:"unmatchedHoldings"`
	Items             []PortfolioItemResponse  `json:"items"`
	Summary           PortfolioSummaryResponse `json:"summary"`
	Allocation        []AllocationResponse     `json:"allocation"`
}

// ToPortfolioResponse converts a domain.PortfolioView to PortfolioResponse DTO.
// Every amount is rendered in the view's quote currency.
func ToPortfolioResponse(view domain.PortfolioView, f Formatter) PortfolioResponse {
	quote := view.QuoteCurrency

	items := make([]PortfolioItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = PortfolioItemResponse{
			HoldingID:         item.ID,
			CoinID:            item.CoinID,
			CoinName:          item.Coin.Name,
			CoinSymbol:        item.Coin.Symbol,
			ImageURL:          item.Coin.ImageURL,
			Amount:            item.Amount,
			CurrentPrice:      NewMoney(f, item.Coin.CurrentPrice, quote),
			PurchasePrice:     NewMoney(f, item.PurchasePriceInQuoteCurrency, quote),
			CurrentValue:      NewMoney(f, item.CurrentValue, quote),
			ProfitLoss:        NewMoney(f, item.ProfitLoss, quote),
			ProfitLossPercent: item.ProfitLossPercent.Round(2),
			PriceChange24h:    item.Coin.PriceChangePercent24h.Round(2),
		}
	}

	allocation := make([]AllocationResponse, len(view.Allocation))
	for i, slice := range view.Allocation {
		allocation[i] = AllocationResponse{
			Name:       slice.CoinSymbol,
			FullName:   slice.CoinName,
			Value:      NewMoney(f, slice.Value, quote),
			Percentage: slice.Percentage.Round(2),
		}
	}

	return PortfolioResponse{
		DisplayCurrency:   view.DisplayCurrency,
		QuoteCurrency:     quote,
		RatesLoading:      view.RatesLoading,
		UnmatchedHoldings: view.UnmatchedHoldings,
		Items:             items,
		Summary: PortfolioSummaryResponse{
			TotalValue:             NewMoney(f, view.Summary.TotalValue, quote),
			TotalProfitLoss:        NewMoney(f, view.Summary.TotalProfitLoss, quote),
			TotalProfitLossPercent: view.Summary.TotalProfitLossPercent.Round(2),
		},
		Allocation: allocation,
	}
}
