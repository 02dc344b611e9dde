package domain

import (
	"golang.org/x/text/language"
)

// CanonicalCurrency is the currency purchase prices are stored in at rest.
const CanonicalCurrency = "USD"

// SupportedCurrency describes a currency that can be selected for display.
type SupportedCurrency struct {
	Code   string       `json:"code"`   // ISO 4217 code, e.g. "EUR"
	Symbol string       `json:"symbol"` // e.g. "€"
	Locale language.Tag `json:"locale"` // BCP 47 tag used for formatting, e.g. de-DE
}

// SupportedCurrencies is the fixed, ordered set of selectable display currencies.
var SupportedCurrencies = []SupportedCurrency{
	{Code: "USD", Symbol: "$", Locale: language.MustParse("en-US")},
	{Code: "EUR", Symbol: "€", Locale: language.MustParse("de-DE")},
	{Code: "GBP", Symbol: "£", Locale: language.MustParse("en-GB")},
	{Code: "INR", Symbol: "₹", Locale: language.MustParse("en-IN")},
	{Code: "CAD", Symbol: "C$", Locale: language.MustParse("en-CA")},
}

// LookupSupportedCurrency returns the supported currency for code, if any.
// The lookup is exact: codes are expected upper-case.
func LookupSupportedCurrency(code string) (SupportedCurrency, bool) {
	for _, c := range SupportedCurrencies {
		if c.Code == code {
			return c, true
		}
	}
	return SupportedCurrency{}, false
}

// IsSupportedCurrency reports whether code belongs to the supported set.
func IsSupportedCurrency(code string) bool {
	_, ok := LookupSupportedCurrency(code)
	return ok
}
