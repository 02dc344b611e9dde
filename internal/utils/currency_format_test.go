package utils

import (
	"testing"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func supported(t *testing.T, code string) domain.SupportedCurrency {
	t.Helper()
	c, ok := domain.LookupSupportedCurrency(code)
	if !ok {
		t.Fatalf("currency %s not supported", code)
	}
	return c
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{"usd grouping", "1234.56", "USD", "$1,234.56"},
		{"usd rounds half up", "0.005", "USD", "$0.01"},
		{"usd negative", "-1234.5", "USD", "-$1,234.50"},
		{"usd zero", "0", "USD", "$0.00"},
		{"eur german layout", "1234.5", "EUR", "1.234,50\u00a0€"},
		{"eur millions", "1234567.891", "EUR", "1.234.567,89\u00a0€"},
		{"gbp", "987654.3", "GBP", "£987,654.30"},
		{"inr lakh grouping", "123456.78", "INR", "₹1,23,456.78"},
		{"inr crore grouping", "12345678.9", "INR", "₹1,23,45,678.90"},
		{"inr small", "999", "INR", "₹999.00"},
		{"cad symbol", "42", "CAD", "C$42.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCurrency(decimal.RequireFromString(tt.amount), supported(t, tt.currency))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "1234.57", FormatPlain(decimal.RequireFromString("1234.567")))
	assert.Equal(t, "0.00", FormatPlain(decimal.Zero))
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"1234567890", "1.23B"},
		{"1000000000", "1.00B"},
		{"5500000", "5.50M"},
		{"1500", "1.50K"},
		{"999.999", "1000.00"},
		{"12.3", "12.30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCompact(decimal.RequireFromString(tt.value)), tt.value)
	}
}

func TestGroupLakh(t *testing.T) {
	assert.Equal(t, "-₹1,00,000.00", groupLakh("-₹100000.00", ","))
	assert.Equal(t, "₹12.00", groupLakh("₹12.00", ","))
	assert.Equal(t, "abc", groupLakh("abc", ","))
}
