// Package coingecko implements the market data provider against the CoinGecko
// public REST API.
package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/crypto_portfolio_tracker/pkg/httpclient"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public v3 API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Client fetches coin market data.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a market data provider rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

var _ portsrepo.MarketDataProvider = (*Client)(nil)

// marketCoin is one element of the /coins/markets response. Numeric fields can be null.
type marketCoin struct {
	ID                       string              `json:"id"`
	Symbol                   string              `json:"symbol"`
	Name                     string              `json:"name"`
	Image                    string              `json:"image"`
	CurrentPrice             decimal.NullDecimal `json:"current_price"`
	PriceChangePercentage24h decimal.NullDecimal `json:"price_change_percentage_24h"`
	MarketCap                decimal.NullDecimal `json:"market_cap"`
	TotalVolume              decimal.NullDecimal `json:"total_volume"`
}

func (c marketCoin) toDomain() domain.Coin {
	return domain.Coin{
		ID:                    c.ID,
		Symbol:                c.Symbol,
		Name:                  c.Name,
		ImageURL:              c.Image,
		CurrentPrice:          orZero(c.CurrentPrice),
		PriceChangePercent24h: orZero(c.PriceChangePercentage24h),
		MarketCap:             orZero(c.MarketCap),
		TotalVolume:           orZero(c.TotalVolume),
	}
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// MarketsURL builds the /coins/markets request for the top coins by market cap.
func (c *Client) MarketsURL(quoteCurrency string, perPage, page int) string {
	q := url.Values{}
	q.Set("vs_currency", strings.ToLower(quoteCurrency))
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	q.Set("sparkline", "false")
	q.Set("price_change_percentage", "24h")
	return c.baseURL + "/coins/markets?" + q.Encode()
}

// FetchMarkets returns the coins ordered by market cap, priced in quoteCurrency.
func (c *Client) FetchMarkets(ctx context.Context, quoteCurrency string, perPage, page int) ([]domain.Coin, error) {
	var payload []marketCoin
	err := httpclient.GetJSON(ctx, c.httpClient, c.MarketsURL(quoteCurrency, perPage, page),
		map[string]string{"Cache-Control": "no-cache"}, &payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch coins: %w", apperrors.ErrUpstream, err)
	}

	coins := make([]domain.Coin, 0, len(payload))
	for _, mc := range payload {
		coins = append(coins, mc.toDomain())
	}
	return coins, nil
}
