package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts user-entered text into a decimal amount. A comma decimal
// separator is normalized to a period, and anything that still does not parse
// as a number degrades to zero instead of failing. Strict positivity checks
// belong to the entry points that need them, not here.
func Parse(input string) decimal.Decimal {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return decimal.Zero
	}
	raw = strings.ReplaceAll(raw, ",", ".")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
