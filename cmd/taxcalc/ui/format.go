package ui

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money formats an amount as currency: $1,234,567.89, with the minus sign
// ahead of the dollar sign for negative values.
func Money(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// MoneyWhole formats an amount with no cents: $11,925. Used for bracket
// bounds, which are whole-dollar figures.
func MoneyWhole(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return sign + "$" + groupThousands(amount.StringFixed(0))
}

// PercentWhole renders a rate fraction as a whole percentage: 0.22 -> "22%".
func PercentWhole(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}

// Percent renders a rate fraction with two decimals: 0.0899 -> "8.99%".
func Percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// BracketRange describes a bracket's income span: "$0 to $11,925", or
// "$626,350 and up" for the unbounded top bracket.
func BracketRange(lower decimal.Decimal, upper *decimal.Decimal) string {
	if upper == nil {
		return MoneyWhole(lower) + " and up"
	}
	return MoneyWhole(lower) + " to " + MoneyWhole(*upper)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
