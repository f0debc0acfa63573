// Package money converts integer minor-unit amounts into processor representations.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zero-decimal currencies are sent as whole units.
var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "ISK": {}, "JPY": {}, "KMF": {}, "KRW": {},
	"PYG": {}, "RWF": {}, "UGX": {}, "VND": {}, "VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// Exponent returns the number of decimal places of currency (2 unless zero-decimal).
func Exponent(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToUpper(strings.TrimSpace(currency))]; ok {
		return 0
	}
	return 2
}

// ToDecimal converts minor units to a major-unit decimal.
func ToDecimal(minor int64, currency string) decimal.Decimal {
	return decimal.New(minor, -Exponent(currency))
}

// Format renders minor units as a fixed-point string, e.g. 1000 USD -> "10.00".
func Format(minor int64, currency string) string {
	return ToDecimal(minor, currency).StringFixed(Exponent(currency))
}

// Float renders minor units as a JSON-friendly major-unit number.
func Float(minor int64, currency string) float64 {
	f, _ := ToDecimal(minor, currency).Float64()
	return f
}

// FromDecimal converts a major-unit amount back to minor units, rounding half away from zero.
func FromDecimal(major decimal.Decimal, currency string) int64 {
	return major.Shift(Exponent(currency)).Round(0).IntPart()
}

// Parse reads a major-unit string such as "10.5" into minor units.
func Parse(s, currency string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return FromDecimal(d, currency), nil
}
