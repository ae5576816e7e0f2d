package enums

import (
	"fmt"
	"strings"
)

// Currency is an ISO 4217 alphabetic code.
type Currency string

const (
	CurrencyAED Currency = "AED"
	CurrencyAUD Currency = "AUD"
	CurrencyBRL Currency = "BRL"
	CurrencyCAD Currency = "CAD"
	CurrencyCHF Currency = "CHF"
	CurrencyCNY Currency = "CNY"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyHKD Currency = "HKD"
	CurrencyINR Currency = "INR"
	CurrencyJPY Currency = "JPY"
	CurrencyMXN Currency = "MXN"
	CurrencyNOK Currency = "NOK"
	CurrencyNZD Currency = "NZD"
	CurrencyPLN Currency = "PLN"
	CurrencySEK Currency = "SEK"
	CurrencySGD Currency = "SGD"
	CurrencyUSD Currency = "USD"
	CurrencyZAR Currency = "ZAR"
)

var validCurrencies = []Currency{
	CurrencyAED, CurrencyAUD, CurrencyBRL, CurrencyCAD, CurrencyCHF,
	CurrencyCNY, CurrencyEUR, CurrencyGBP, CurrencyHKD, CurrencyINR,
	CurrencyJPY, CurrencyMXN, CurrencyNOK, CurrencyNZD, CurrencyPLN,
	CurrencySEK, CurrencySGD, CurrencyUSD, CurrencyZAR,
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Currency.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts raw input into a Currency.
func ParseCurrency(value string) (Currency, error) {
	normalized := Currency(strings.ToUpper(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
