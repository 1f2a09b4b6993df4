// Package money holds the decimal helpers shared by the menu and orders.
//
// Importing it switches shopspring/decimal to encode amounts as JSON numbers
// (12.99) rather than strings ("12.99"). It is the only place that global is set.
package money

import "github.com/shopspring/decimal"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MustParse parses a decimal literal and panics on malformed input.
// It is meant for compiled-in amounts such as the seeded menu.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Times returns amount multiplied by n.
func Times(amount decimal.Decimal, n int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(n)))
}

// Sum adds amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
