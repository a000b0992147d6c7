package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const CurrencySymbol = "₹"

var pricePrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice renders a plan price with the rupee sign, digit grouping and
// at most two decimals.
func FormatPrice(price float64) string {
	return CurrencySymbol + pricePrinter.Sprint(number.Decimal(price, number.MaxFractionDigits(2)))
}
