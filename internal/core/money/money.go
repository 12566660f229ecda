// Package money holds the decimal helpers used for charge amounts
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a charge omits its currency
const DefaultCurrency = "BRL"

// Scale is the number of fractional digits stored for an amount
const Scale = 2

// Zero is decimal zero
var Zero = decimal.Zero

// Max is the largest amount a numeric(12,2) column can hold
var Max = decimal.RequireFromString("9999999999.99")

// FromString parses an amount and rounds it to Scale places
func FromString(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Zero, err
	}
	return d.Round(Scale), nil
}

// IsPositive returns true if d is greater than zero
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}

// InRange reports whether d is positive and fits the storage column
func InRange(d decimal.Decimal) bool {
	return IsPositive(d) && d.LessThanOrEqual(Max)
}

// Currency upper cases an ISO 4217 code and falls back to DefaultCurrency
func Currency(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return DefaultCurrency
	}
	return c
}

// ValidCurrency reports whether c looks like a three letter code
func ValidCurrency(c string) bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		ch := c[i] | 0x20
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
