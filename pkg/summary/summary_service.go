package summary

import (
	"context"
	"strings"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/flujofacil/flujofacil/pkg/month"
	"github.com/shopspring/decimal"
)

var nearLimitRatio = decimal.NewFromFloat(0.9)

type SummaryService interface {
	MonthlySummary(ctx context.Context, ym month.YearMonth) (Summary, error)
}

type SummaryServiceImpl struct {
	store *ledger.Store
}

func NewSummaryServiceImpl(store *ledger.Store) *SummaryServiceImpl {
	return &SummaryServiceImpl{store: store}
}

// MonthlySummary derives the full view of one month from the ledger. Records
// whose dates do not parse are skipped rather than failing the whole month,
// and fixed expenses always count in full regardless of the month asked for.
func (s *SummaryServiceImpl) MonthlySummary(ctx context.Context, ym month.YearMonth) (Summary, error) {
	result := Summary{
		Month:                ym,
		TotalIncome:          decimal.Zero,
		TotalFixedExpense:    decimal.Zero,
		TotalVariableExpense: decimal.Zero,
		TotalSavings:         decimal.Zero,
	}

	s.store.View(func(d *ledger.Data) {
		result.TotalIncome = d.BaseIncome.Total()
		for _, in := range d.Incomes {
			if inMonth(in.Date, ym) {
				result.TotalIncome = result.TotalIncome.Add(in.Amount)
			}
		}

		for _, f := range d.FixedExpenses {
			result.TotalFixedExpense = result.TotalFixedExpense.Add(f.MonthlyAmount)
		}

		monthly := make([]ledger.Expense, 0, len(d.Expenses))
		for _, e := range d.Expenses {
			if inMonth(e.Date, ym) {
				monthly = append(monthly, e)
				result.TotalVariableExpense = result.TotalVariableExpense.Add(e.Amount)
			}
		}

		result.Envelopes = make([]EnvelopeStatus, 0, len(d.Envelopes))
		for _, env := range d.Envelopes {
			result.Envelopes = append(result.Envelopes, envelopeStatus(env, monthly))
		}

		result.PiggyBanks = make([]PiggyBankStatus, 0, len(d.PiggyBanks))
		for _, bank := range d.PiggyBanks {
			result.TotalSavings = result.TotalSavings.Add(bank.Balance)
			result.PiggyBanks = append(result.PiggyBanks, PiggyBankStatus{
				ID:            bank.ID,
				Name:          bank.Name,
				GoalAmount:    bank.GoalAmount,
				Balance:       bank.Balance,
				ProgressRatio: progressRatio(bank),
			})
		}
	})

	result.TotalExpense = result.TotalFixedExpense.Add(result.TotalVariableExpense)
	result.Balance = result.TotalIncome.Sub(result.TotalExpense)
	result.Positive = !result.Balance.IsNegative()
	return result, nil
}

func inMonth(date string, ym month.YearMonth) bool {
	got, ok := month.FromDate(date)
	return ok && got == ym
}

// envelopeStatus totals the month's spending in the envelope's category.
// Category matching is case-insensitive so "comida" and "Comida" land in the
// same envelope.
func envelopeStatus(env ledger.Envelope, monthly []ledger.Expense) EnvelopeStatus {
	spent := decimal.Zero
	for _, e := range monthly {
		if strings.EqualFold(e.Category, env.Name) {
			spent = spent.Add(e.Amount)
		}
	}

	status := EnvelopeStatus{
		ID:     env.ID,
		Name:   env.Name,
		Budget: env.MonthlyBudget,
		Spent:  spent,
		Tier:   TierUndefined,
	}
	if !env.MonthlyBudget.IsPositive() {
		return status
	}

	ratio := spent.Div(env.MonthlyBudget)
	switch {
	case ratio.LessThan(nearLimitRatio):
		status.Tier = TierOK
	case ratio.LessThan(decimal.NewFromInt(1)):
		status.Tier = TierNearLimit
	default:
		status.Tier = TierOverBudget
	}

	percent, _ := ratio.Mul(decimal.NewFromInt(100)).Float64()
	if percent > 100 {
		percent = 100
	}
	status.Percent = percent
	return status
}

func progressRatio(bank ledger.PiggyBank) float64 {
	if !bank.GoalAmount.IsPositive() {
		return 0
	}
	ratio, _ := bank.Balance.Div(bank.GoalAmount).Float64()
	if ratio > 1 {
		return 1
	}
	return ratio
}
