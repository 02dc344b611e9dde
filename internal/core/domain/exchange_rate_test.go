package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExchangeRateTable_ConvertSameCurrencyIsExact(t *testing.T) {
	table := NewExchangeRateTable(map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.9")}, time.Now())
	amounts := []string{"0", "1", "0.1", "123456789.123456789", "-42.5"}
	for _, code := range []string{"USD", "EUR", "XYZ"} {
		for _, a := range amounts {
			amount := decimal.RequireFromString(a)
			assert.True(t, table.Convert(amount, code, code).Equal(amount), "%s %s", a, code)
		}
	}
}

func TestExchangeRateTable_RoundTripThroughPivot(t *testing.T) {
	table := NewExchangeRateTable(map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.92"),
		"GBP": decimal.RequireFromString("0.79"),
		"INR": decimal.RequireFromString("83.12"),
		"CAD": decimal.RequireFromString("1.36"),
	}, time.Now())
	codes := []string{"USD", "EUR", "GBP", "INR", "CAD"}
	amount := decimal.RequireFromString("1234.5678")
	tolerance := decimal.RequireFromString("0.0000001")

	for _, from := range codes {
		for _, to := range codes {
			back := table.Convert(table.Convert(amount, from, to), to, from)
			assert.True(t, back.Sub(amount).Abs().LessThan(tolerance), "%s->%s->%s gave %s", from, to, from, back)
		}
	}
}

func TestExchangeRateTable_CanonicalPurchasePrice(t *testing.T) {
	table := NewExchangeRateTable(map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.9")}, time.Now())
	got := table.Convert(decimal.NewFromInt(90), "EUR", CanonicalCurrency)
	assert.True(t, decimal.NewFromInt(100).Equal(got), "got %s", got)
}

func TestExchangeRateTable_MissingRateTreatedAsOne(t *testing.T) {
	empty := NewExchangeRateTable(nil, time.Time{})
	amount := decimal.NewFromInt(50)
	assert.True(t, empty.Convert(amount, "EUR", "GBP").Equal(amount))

	partial := NewExchangeRateTable(map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.5")}, time.Now())
	assert.True(t, partial.Convert(amount, "XYZ", "EUR").Equal(decimal.NewFromInt(25)))
	assert.True(t, partial.Convert(amount, "EUR", "XYZ").Equal(decimal.NewFromInt(100)))
}

func TestExchangeRateTable_ZeroRateTreatedAsMissing(t *testing.T) {
	table := NewExchangeRateTable(map[string]decimal.Decimal{"EUR": decimal.Zero}, time.Now())
	_, ok := table.Rate("EUR")
	assert.False(t, ok)
	assert.True(t, table.Convert(decimal.NewFromInt(7), "EUR", "USD").Equal(decimal.NewFromInt(7)))
}

func TestExchangeRateTable_CloneIsIndependent(t *testing.T) {
	table := NewExchangeRateTable(map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.9")}, time.Now())
	clone := table.Clone()
	clone.Rates["EUR"] = decimal.NewFromInt(2)
	rate, _ := table.Rate("EUR")
	assert.True(t, rate.Equal(decimal.RequireFromString("0.9")))
}

func TestExchangeRateTable_CodesSorted(t *testing.T) {
	table := NewExchangeRateTable(map[string]decimal.Decimal{
		"INR": decimal.NewFromInt(83),
		"EUR": decimal.RequireFromString("0.9"),
		"USD": decimal.NewFromInt(1),
	}, time.Now())
	assert.Equal(t, []string{"EUR", "INR", "USD"}, table.Codes())
	assert.Empty(t, ExchangeRateTable{}.Codes())
}

func TestSupportedCurrencies(t *testing.T) {
	assert.True(t, IsSupportedCurrency("INR"))
	assert.False(t, IsSupportedCurrency("XYZ"))
	assert.False(t, IsSupportedCurrency("eur"))

	c, ok := LookupSupportedCurrency("EUR")
	assert.True(t, ok)
	assert.Equal(t, "€", c.Symbol)
	assert.Equal(t, "de-DE", c.Locale.String())
}
