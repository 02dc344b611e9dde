package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coin is one entry of the market data feed. CurrentPrice, MarketCap and
// TotalVolume are denominated in the quote currency of the fetch that produced it.
type Coin struct {
	ID                    string          `json:"id"`
	Symbol                string          `json:"symbol"`
	Name                  string          `json:"name"`
	ImageURL              string          `json:"imageUrl"`
	CurrentPrice          decimal.Decimal `json:"currentPrice"`
	PriceChangePercent24h decimal.Decimal `json:"priceChangePercent24h"`
	MarketCap             decimal.Decimal `json:"marketCap"`
	TotalVolume           decimal.Decimal `json:"totalVolume"`
}

// MarketSnapshot is a wholesale replacement unit for the market data cache.
type MarketSnapshot struct {
	QuoteCurrency string    `json:"quoteCurrency"`
	Coins         []Coin    `json:"coins"`
	FetchedAt     time.Time `json:"fetchedAt"`
}

// FindCoin returns the coin with the given id from the snapshot.
func (s MarketSnapshot) FindCoin(coinID string) (Coin, bool) {
	for _, c := range s.Coins {
		if c.ID == coinID {
			return c, true
		}
	}
	return Coin{}, false
}

// IsEmpty reports whether the snapshot has never been populated.
func (s MarketSnapshot) IsEmpty() bool {
	return len(s.Coins) == 0
}
