package api

import (
	"encoding/json"

	"github.com/flujofacil/flujofacil/pkg/money"
	"github.com/shopspring/decimal"
)

// Money is the amount type used in request and response DTOs. Clients may
// send a JSON number or a string (including the comma decimal separator);
// anything unparsable becomes zero and is caught by the services' positive
// amount checks.
type Money struct {
	decimal.Decimal
}

func MoneyOf(d decimal.Decimal) Money {
	return Money{d}
}

func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			m.Decimal = decimal.Zero
			return nil
		}
		m.Decimal = money.Parse(s)
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		m.Decimal = decimal.Zero
		return nil
	}
	m.Decimal = d
	return nil
}
