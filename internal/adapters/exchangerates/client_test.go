package exchangerates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/crypto_portfolio_tracker/pkg/httpclient"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchLatestRates(t *testing.T) {
	srv := serve(t, http.StatusOK, `{
		"base": "USD",
		"date": "2024-05-01",
		"time_last_updated": 1714521601,
		"rates": {"USD": 1, "EUR": 0.935, "GBP": 0.8, "INR": 83.45, "BAD": "x", "ZERO": 0}
	}`)

	table, err := NewClient(srv.URL, httpclient.New(time.Second)).FetchLatestRates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "USD", table.Base)
	assert.Equal(t, time.Unix(1714521601, 0).UTC(), table.FetchedAt)
	assert.Len(t, table.Rates, 4)
	eur, ok := table.Rate("EUR")
	assert.True(t, ok)
	assert.True(t, eur.Equal(decimal.RequireFromString("0.935")))
	_, ok = table.Rate("ZERO")
	assert.False(t, ok)
}

func TestFetchLatestRatesWithoutTimestamp(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"rates": {"EUR": 0.9}}`)
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	client := NewClient(srv.URL, httpclient.New(time.Second))
	client.now = func() time.Time { return fixed }

	table, err := client.FetchLatestRates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fixed, table.FetchedAt)
}

func TestFetchLatestRatesErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "missing rates", status: http.StatusOK, body: `{"result":"error"}`},
		{name: "rates not an object", status: http.StatusOK, body: `{"rates":[1,2]}`},
		{name: "not json", status: http.StatusOK, body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.body)
			_, err := NewClient(srv.URL, httpclient.New(time.Second)).FetchLatestRates(context.Background())
			assert.ErrorIs(t, err, apperrors.ErrUpstream)
		})
	}
}
