package backup

import (
	"encoding/json"

	"github.com/flujofacil/flujofacil/pkg/money"
	"github.com/shopspring/decimal"
)

// Document is the current portable backup schema (version 2). It is also the
// shape flushed to the local snapshot store, so the two paths can never drift
// apart.
type Document struct {
	BaseIncome    BaseIncomeDoc     `json:"baseIncome"`
	FixedExpenses []FixedExpenseDoc `json:"fixedExpenses"`
	Envelopes     []EnvelopeDoc     `json:"envelopes"`
	PiggyBanks    []PiggyBankDoc    `json:"piggyBanks"`
	OneOffIncome  []IncomeDoc       `json:"oneOffIncome"`
	Expenses      []ExpenseDoc      `json:"expenses"`
	NotesByMonth  map[string]string `json:"notesByMonth"`
	Preferences   PreferencesDoc    `json:"preferences"`
}

type BaseIncomeDoc struct {
	Primary   Amount `json:"primary"`
	Secondary Amount `json:"secondary"`
	Other     Amount `json:"other"`
}

type FixedExpenseDoc struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	MonthlyAmount Amount `json:"monthlyAmount"`
}

type EnvelopeDoc struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MonthlyBudget Amount `json:"monthlyBudget"`
}

type PiggyBankDoc struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GoalAmount Amount `json:"goalAmount"`
	Balance    Amount `json:"currentBalance"`
}

type IncomeDoc struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
	Type        string `json:"type,omitempty"`
	PiggyBankID string `json:"piggyBankId,omitempty"`
}

type ExpenseDoc struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
	Type        string `json:"type,omitempty"`
	PiggyBankID string `json:"piggyBankId,omitempty"`
}

type PreferencesDoc struct {
	PrimaryIncomeLabel string `json:"primaryIncomeLabel"`
	Theme              string `json:"theme"`
}

// Amount is a decimal that survives whatever old exports contain: JSON
// numbers, numeric strings with comma or period separators, null, or plain
// garbage, which all degrade to zero instead of failing the import.
type Amount struct {
	decimal.Decimal
}

func amountOf(d decimal.Decimal) Amount {
	return Amount{d}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = money.Parse(s)
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}
