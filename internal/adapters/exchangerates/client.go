// Package exchangerates implements the exchange-rate provider against
// exchangerate-api.com style endpoints ({"base":"USD","rates":{...}}).
package exchangerates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/crypto_portfolio_tracker/pkg/httpclient"
	"github.com/shopspring/decimal"
)

// DefaultURL serves USD-based rates.
const DefaultURL = "https://api.exchangerate-api.com/v4/latest/USD"

const (
	ratesPath   = "$.rates"
	updatedPath = "$.time_last_updated"
)

// Client fetches the latest USD-based rate table.
type Client struct {
	url        string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates an exchange-rate provider for url.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{url: url, httpClient: httpClient, now: time.Now}
}

var _ portsrepo.ExchangeRateProvider = (*Client)(nil)

// FetchLatestRates returns the rate table keyed by currency code. Entries that
// are not positive numbers are skipped.
func (c *Client) FetchLatestRates(ctx context.Context) (domain.ExchangeRateTable, error) {
	var payload any
	if err := httpclient.GetJSON(ctx, c.httpClient, c.url, nil, &payload); err != nil {
		return domain.ExchangeRateTable{}, fmt.Errorf("%w: failed to fetch exchange rates: %w", apperrors.ErrUpstream, err)
	}

	raw, err := jsonpath.Get(ratesPath, payload)
	if err != nil {
		return domain.ExchangeRateTable{}, fmt.Errorf("%w: response has no %s: %w", apperrors.ErrUpstream, ratesPath, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.ExchangeRateTable{}, fmt.Errorf("%w: %s is not an object", apperrors.ErrUpstream, ratesPath)
	}

	rates := make(map[string]decimal.Decimal, len(obj))
	for code, v := range obj {
		rate, ok := toDecimal(v)
		if !ok || !rate.IsPositive() {
			continue
		}
		rates[strings.ToUpper(code)] = rate
	}

	return domain.NewExchangeRateTable(rates, c.fetchedAt(payload)), nil
}

// fetchedAt uses the provider's update timestamp when present.
func (c *Client) fetchedAt(payload any) time.Time {
	raw, err := jsonpath.Get(updatedPath, payload)
	if err != nil {
		return c.now()
	}
	secs, ok := toDecimal(raw)
	if !ok || !secs.IsPositive() {
		return c.now()
	}
	return time.Unix(secs.IntPart(), 0).UTC()
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}
