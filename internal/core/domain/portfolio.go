package domain

import (
	"github.com/shopspring/decimal"
)

// PortfolioLineItem joins a holding to its matched coin. All monetary fields are
// denominated in QuoteCurrency.
type PortfolioLineItem struct {
	Holding
	Coin                         Coin            `json:"coin"`
	QuoteCurrency                string          `json:"quoteCurrency"`
	PurchasePriceInQuoteCurrency decimal.Decimal `json:"purchasePriceInQuoteCurrency"`
	CurrentValue                 decimal.Decimal `json:"currentValue"`
	ProfitLoss                   decimal.Decimal `json:"profitLoss"`
	ProfitLossPercent            decimal.Decimal `json:"profitLossPercent"`
}

// PortfolioSummary is the aggregate over a set of line items.
type PortfolioSummary struct {
	TotalValue             decimal.Decimal `json:"totalValue"`
	TotalProfitLoss        decimal.Decimal `json:"totalProfitLoss"`
	TotalProfitLossPercent decimal.Decimal `json:"totalProfitLossPercent"`
}

// AllocationSlice is one coin's share of the total portfolio value.
type AllocationSlice struct {
	CoinSymbol string          `json:"coinSymbol"`
	CoinName   string          `json:"coinName"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

// PortfolioView is everything a presentation layer needs to render the portfolio.
type PortfolioView struct {
	DisplayCurrency string              `json:"displayCurrency"`
	QuoteCurrency   string              `json:"quoteCurrency"`
	Items           []PortfolioLineItem `json:"items"`
	Summary         PortfolioSummary    `json:"summary"`
	Allocation      []AllocationSlice   `json:"allocation"`
	// UnmatchedHoldings counts holdings whose coin is absent from the market snapshot.
	UnmatchedHoldings int  `json:"unmatchedHoldings"`
	RatesLoading      bool `json:"ratesLoading"`
}
