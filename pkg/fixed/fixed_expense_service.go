package fixed

import (
	"context"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/shopspring/decimal"
)

// CategoryReportLine is one category's slice of the recurring monthly costs.
type CategoryReportLine struct {
	Category ledger.FixedCategory
	Total    decimal.Decimal
	Share    float64 // percentage of the overall fixed total
}

type FixedExpenseService interface {
	GetAll(ctx context.Context) ([]ledger.FixedExpense, error)
	Create(ctx context.Context, expense ledger.FixedExpense) (ledger.FixedExpense, error)
	Update(ctx context.Context, expense ledger.FixedExpense) (ledger.FixedExpense, error)
	Delete(ctx context.Context, id string) error
	Report(ctx context.Context) ([]CategoryReportLine, error)
}

type FixedExpenseServiceImpl struct {
	store *ledger.Store
}

func NewFixedExpenseServiceImpl(store *ledger.Store) *FixedExpenseServiceImpl {
	return &FixedExpenseServiceImpl{store: store}
}

func (s *FixedExpenseServiceImpl) GetAll(ctx context.Context) ([]ledger.FixedExpense, error) {
	var expenses []ledger.FixedExpense
	s.store.View(func(d *ledger.Data) {
		expenses = append(expenses, d.FixedExpenses...)
	})
	return expenses, nil
}

func (s *FixedExpenseServiceImpl) Create(ctx context.Context, expense ledger.FixedExpense) (ledger.FixedExpense, error) {
	if err := validate(expense); err != nil {
		return ledger.FixedExpense{}, err
	}
	expense.ID = s.store.NewID()
	err := s.store.Update(func(d *ledger.Data) error {
		d.AddFixedExpense(expense)
		return nil
	})
	if err != nil {
		return ledger.FixedExpense{}, err
	}
	return expense, nil
}

func (s *FixedExpenseServiceImpl) Update(ctx context.Context, expense ledger.FixedExpense) (ledger.FixedExpense, error) {
	if err := validate(expense); err != nil {
		return ledger.FixedExpense{}, err
	}
	err := s.store.Update(func(d *ledger.Data) error {
		return d.UpdateFixedExpense(expense)
	})
	if err != nil {
		return ledger.FixedExpense{}, err
	}
	return expense, nil
}

func (s *FixedExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	return s.store.Update(func(d *ledger.Data) error {
		return d.RemoveFixedExpense(id)
	})
}

// Report groups the recurring costs per category, in the fixed category
// order, with each category's share of the total. Empty categories are left
// out.
func (s *FixedExpenseServiceImpl) Report(ctx context.Context) ([]CategoryReportLine, error) {
	totals := map[ledger.FixedCategory]decimal.Decimal{}
	grandTotal := decimal.Zero
	s.store.View(func(d *ledger.Data) {
		for _, f := range d.FixedExpenses {
			current, ok := totals[f.Category]
			if !ok {
				current = decimal.Zero
			}
			totals[f.Category] = current.Add(f.MonthlyAmount)
			grandTotal = grandTotal.Add(f.MonthlyAmount)
		}
	})

	lines := make([]CategoryReportLine, 0, len(totals))
	for _, category := range ledger.FixedCategories {
		total, ok := totals[category]
		if !ok {
			continue
		}
		share := 0.0
		if grandTotal.IsPositive() {
			share, _ = total.Div(grandTotal).Mul(decimal.NewFromInt(100)).Float64()
		}
		lines = append(lines, CategoryReportLine{Category: category, Total: total, Share: share})
	}
	return lines, nil
}

func validate(expense ledger.FixedExpense) error {
	if expense.Name == "" {
		return ledger.Validationf("fixed expense name is required")
	}
	if expense.MonthlyAmount.IsNegative() {
		return ledger.Validationf("fixed expense amount must not be negative")
	}
	return nil
}
