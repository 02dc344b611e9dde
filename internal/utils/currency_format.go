package utils

import (
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// displayFraction is the number of fractional digits shown for every currency.
const displayFraction = 2

// localeLayout describes how a locale lays out a currency amount.
// In template, "$" stands for the symbol and "1" for the number.
type localeLayout struct {
	decimal  string
	thousand string
	template string
	lakh     bool // Indian grouping: last three digits, then pairs
}

var localeLayouts = map[string]localeLayout{
	"en-US": {decimal: ".", thousand: ",", template: "$1"},
	"de-DE": {decimal: ",", thousand: ".", template: "1\u00a0$"},
	"en-GB": {decimal: ".", thousand: ",", template: "$1"},
	"en-IN": {decimal: ".", thousand: ",", template: "$1", lakh: true},
	"en-CA": {decimal: ".", thousand: ",", template: "$1"},
}

// FormatCurrency formats an amount already denominated in currency using the
// currency's locale, fixed at two fractional digits.
// Example: 1234.5 EUR returns "1.234,50\u00a0€"
// Example: 123456.78 INR returns "₹1,23,456.78"
func FormatCurrency(amount decimal.Decimal, currency domain.SupportedCurrency) string {
	layout, ok := localeLayouts[currency.Locale.String()]
	if !ok {
		layout = localeLayouts["en-US"]
	}

	thousand := layout.thousand
	if layout.lakh {
		thousand = ""
	}
	minor := amount.Round(displayFraction).Shift(displayFraction).IntPart()
	formatted := money.NewFormatter(displayFraction, layout.decimal, thousand, currency.Symbol, layout.template).Format(minor)
	if layout.lakh {
		formatted = groupLakh(formatted, layout.thousand)
	}
	return formatted
}

// FormatPlain formats an amount as a bare two-decimal number, used for currencies
// outside the supported set.
func FormatPlain(amount decimal.Decimal) string {
	return amount.StringFixed(displayFraction)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

var (
	billion  = decimal.NewFromInt(1_000_000_000)
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// FormatCompact abbreviates large values for market cap and volume columns.
// Example: 1234567890 returns "1.23B"
func FormatCompact(value decimal.Decimal) string {
	switch {
	case value.GreaterThanOrEqual(billion):
		return value.Div(billion).StringFixed(2) + "B"
	case value.GreaterThanOrEqual(million):
		return value.Div(million).StringFixed(2) + "M"
	case value.GreaterThanOrEqual(thousand):
		return value.Div(thousand).StringFixed(2) + "K"
	default:
		return value.StringFixed(2)
	}
}

// groupLakh inserts sep into the first run of digits in s using Indian grouping.
func groupLakh(s, sep string) string {
	start := strings.IndexFunc(s, unicode.IsDigit)
	if start < 0 {
		return s
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	digits := s[start:end]
	if len(digits) <= 3 {
		return s
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)
	return s[:start] + strings.Join(groups, sep) + s[end:]
}
