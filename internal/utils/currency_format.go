package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyPrecision maps ISO currency codes to their minor-unit exponent.
// Codes not listed here default to two decimal places.
var currencyPrecision = map[string]int32{
	"USD": 2,
	"EUR": 2,
	"GBP": 2,
	"INR": 2,
	"JPY": 0,
	"KWD": 3,
}

// PrecisionForCurrency returns the minor-unit exponent for a currency code.
func PrecisionForCurrency(code string) int32 {
	if p, ok := currencyPrecision[strings.ToUpper(code)]; ok {
		return p
	}
	return 2
}

// FormatMinorUnits renders an integer minor-unit amount as a decimal string
// at the currency's precision.
// Example: 123456 USD -> "1234.56"; 500 JPY -> "500".
func FormatMinorUnits(amount int64, currency string) string {
	return decimal.New(amount, -PrecisionForCurrency(currency)).StringFixed(PrecisionForCurrency(currency))
}
