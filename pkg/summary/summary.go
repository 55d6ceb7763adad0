package summary

import (
	"github.com/flujofacil/flujofacil/pkg/month"
	"github.com/shopspring/decimal"
)

type EnvelopeTier string

const (
	// TierUndefined marks envelopes without a budget: no ratio can be computed.
	TierUndefined  EnvelopeTier = "undefined"
	TierOK         EnvelopeTier = "ok"
	TierNearLimit  EnvelopeTier = "near-limit"
	TierOverBudget EnvelopeTier = "over-budget"
)

type EnvelopeStatus struct {
	ID      string
	Name    string
	Budget  decimal.Decimal
	Spent   decimal.Decimal
	Tier    EnvelopeTier
	Percent float64
}

type PiggyBankStatus struct {
	ID            string
	Name          string
	GoalAmount    decimal.Decimal
	Balance       decimal.Decimal
	ProgressRatio float64
}

// Summary is the derived view of one month. Everything here is computed from
// the ledger on demand; nothing is stored.
type Summary struct {
	Month                month.YearMonth
	TotalIncome          decimal.Decimal
	TotalFixedExpense    decimal.Decimal
	TotalVariableExpense decimal.Decimal
	TotalExpense         decimal.Decimal
	Balance              decimal.Decimal
	Positive             bool
	Envelopes            []EnvelopeStatus
	PiggyBanks           []PiggyBankStatus
	TotalSavings         decimal.Decimal
}
