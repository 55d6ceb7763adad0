package expense

import (
	"context"
	"sort"
	"strings"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/flujofacil/flujofacil/pkg/month"
)

type ExpenseService interface {
	GetAll(ctx context.Context) ([]ledger.Expense, error)
	Create(ctx context.Context, expense ledger.Expense) (ledger.Expense, error)
	Update(ctx context.Context, expense ledger.Expense) (ledger.Expense, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
}

type ExpenseServiceImpl struct {
	store *ledger.Store
}

func NewExpenseServiceImpl(store *ledger.Store) *ExpenseServiceImpl {
	return &ExpenseServiceImpl{store: store}
}

func (s *ExpenseServiceImpl) GetAll(ctx context.Context) ([]ledger.Expense, error) {
	var expenses []ledger.Expense
	s.store.View(func(d *ledger.Data) {
		expenses = append(expenses, d.Expenses...)
	})
	return expenses, nil
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, expense ledger.Expense) (ledger.Expense, error) {
	if err := validate(expense); err != nil {
		return ledger.Expense{}, err
	}
	expense.ID = s.store.NewID()
	expense.Kind = ledger.ExpenseOrdinary
	expense.PiggyBankID = ""
	err := s.store.Update(func(d *ledger.Data) error {
		d.AddExpense(expense)
		return nil
	})
	if err != nil {
		return ledger.Expense{}, err
	}
	return expense, nil
}

// Update edits an expense in place. Guarded mirrors are rejected by the
// ledger itself; the conflict travels up to the caller untouched.
func (s *ExpenseServiceImpl) Update(ctx context.Context, expense ledger.Expense) (ledger.Expense, error) {
	if err := validate(expense); err != nil {
		return ledger.Expense{}, err
	}
	var updated ledger.Expense
	err := s.store.Update(func(d *ledger.Data) error {
		if err := d.UpdateExpense(expense); err != nil {
			return err
		}
		stored, _ := d.FindExpense(expense.ID)
		updated = stored
		return nil
	})
	if err != nil {
		return ledger.Expense{}, err
	}
	return updated, nil
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	return s.store.Update(func(d *ledger.Data) error {
		return d.RemoveExpense(id)
	})
}

// Categories suggests category names for entry forms: every distinct
// category already used plus every envelope name, deduplicated without case
// sensitivity and sorted.
func (s *ExpenseServiceImpl) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]string{}
	s.store.View(func(d *ledger.Data) {
		for _, e := range d.Expenses {
			if e.Category != "" {
				seen[strings.ToLower(e.Category)] = e.Category
			}
		}
		for _, env := range d.Envelopes {
			if env.Name != "" {
				seen[strings.ToLower(env.Name)] = env.Name
			}
		}
	})

	categories := make([]string, 0, len(seen))
	for _, name := range seen {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	return categories, nil
}

func validate(expense ledger.Expense) error {
	if _, ok := month.FromDate(expense.Date); !ok {
		return ledger.Validationf("expense date must be a valid YYYY-MM-DD date")
	}
	if expense.Category == "" {
		return ledger.Validationf("expense category is required")
	}
	if !expense.Amount.IsPositive() {
		return ledger.Validationf("expense amount must be positive")
	}
	return nil
}
