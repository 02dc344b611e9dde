package dto

import (
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/utils"
	"github.com/shopspring/decimal"
)

// ListCoinsParams are the query parameters of the coin search.
type ListCoinsParams struct {
	Search    string `form:"search"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=250"`
	PageToken string `form:"pageToken"`
}

// CoinResponse defines the data returned for a market coin.
type CoinResponse struct {
	ID             string          `json:"id"`
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`
	ImageURL       string          `json:"imageUrl"`
	CurrentPrice   Money           `json:"currentPrice"`
	PriceChange24h decimal.Decimal `json:"priceChange24h" swaggertype:"string"`
	MarketCap      string          `json:"marketCap"`
	TotalVolume    string          `json:"totalVolume"`
}

// ListCoinsResponse wraps the coins with the currency they are priced in.
type ListCoinsResponse struct {
	QuoteCurrency string         `json:"quoteCurrency"`
	Coins         []CoinResponse `json:"coins"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

// ToCoinResponse converts a domain.Coin to CoinResponse DTO
func ToCoinResponse(c domain.Coin, quote string, f Formatter) CoinResponse {
	return CoinResponse{
		ID:             c.ID,
		Symbol:         c.Symbol,
		Name:           c.Name,
		ImageURL:       c.ImageURL,
		CurrentPrice:   NewMoney(f, c.CurrentPrice, quote),
		PriceChange24h: c.PriceChangePercent24h.Round(2),
		MarketCap:      utils.FormatCompact(c.MarketCap),
		TotalVolume:    utils.FormatCompact(c.TotalVolume),
	}
}

// ToListCoinsResponse converts a slice of domain.Coin to ListCoinsResponse DTO
func ToListCoinsResponse(coins []domain.Coin, quote string, f Formatter) ListCoinsResponse {
	res := make([]CoinResponse, len(coins))
	for i, c := range coins {
		res[i] = ToCoinResponse(c, quote, f)
	}
	return ListCoinsResponse{QuoteCurrency: quote, Coins: res}
}
