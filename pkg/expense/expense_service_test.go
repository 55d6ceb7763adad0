package expense

import (
	"context"
	"testing"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWith(t *testing.T, mutate func(d *ledger.Data)) *ledger.Store {
	t.Helper()
	store := ledger.NewStore(ledger.NewData(), nil)
	require.NoError(t, store.Update(func(d *ledger.Data) error {
		mutate(d)
		return nil
	}))
	return store
}

func TestCreate_Validation(t *testing.T) {
	service := NewExpenseServiceImpl(ledger.NewStore(ledger.NewData(), nil))

	tests := []struct {
		name    string
		expense ledger.Expense
	}{
		{"junk date", ledger.Expense{Date: "someday", Category: "Food", Amount: decimal.NewFromInt(10)}},
		{"missing category", ledger.Expense{Date: "2024-06-01", Amount: decimal.NewFromInt(10)}},
		{"zero amount", ledger.Expense{Date: "2024-06-01", Category: "Food", Amount: decimal.Zero}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.expense)
			var vErr *ledger.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreate_StripsMirrorFields(t *testing.T) {
	// given
	service := NewExpenseServiceImpl(ledger.NewStore(ledger.NewData(), nil))

	// when a client tries to forge a guarded mirror
	created, err := service.Create(context.Background(), ledger.Expense{
		Date:        "2024-06-01",
		Category:    "Food",
		Amount:      decimal.NewFromInt(10),
		Kind:        ledger.ExpensePiggyInitial,
		PiggyBankID: "fake",
	})

	// then it lands as an ordinary expense
	require.NoError(t, err)
	assert.Equal(t, ledger.ExpenseOrdinary, created.Kind)
	assert.Empty(t, created.PiggyBankID)
}

func TestDelete_GuardedMirror(t *testing.T) {
	// given an initial-deposit mirror
	store := storeWith(t, func(d *ledger.Data) {
		d.AddExpense(ledger.Expense{
			ID: "m1", Date: "2024-06-01", Category: ledger.PiggyCategory,
			Amount: decimal.NewFromInt(100), Kind: ledger.ExpensePiggyInitial, PiggyBankID: "p1",
		})
	})
	service := NewExpenseServiceImpl(store)

	// when
	err := service.Delete(context.Background(), "m1")

	// then the guard speaks and the record stays
	var gErr *ledger.GuardedDeletionError
	require.ErrorAs(t, err, &gErr)
	store.View(func(d *ledger.Data) {
		assert.Len(t, d.Expenses, 1)
	})
}

func TestUpdate_GuardedMirror(t *testing.T) {
	// given
	store := storeWith(t, func(d *ledger.Data) {
		d.AddExpense(ledger.Expense{
			ID: "m1", Date: "2024-06-01", Category: ledger.PiggyCategory,
			Amount: decimal.NewFromInt(100), Kind: ledger.ExpensePiggyInitial, PiggyBankID: "p1",
		})
	})
	service := NewExpenseServiceImpl(store)

	// when
	_, err := service.Update(context.Background(), ledger.Expense{
		ID: "m1", Date: "2024-06-02", Category: "Food", Amount: decimal.NewFromInt(5),
	})

	// then
	var gErr *ledger.GuardedDeletionError
	require.ErrorAs(t, err, &gErr)
}

func TestCategories(t *testing.T) {
	// given spending in mixed-case categories plus envelopes
	store := storeWith(t, func(d *ledger.Data) {
		d.AddExpense(ledger.Expense{ID: "e1", Date: "2024-06-01", Category: "Food", Amount: decimal.NewFromInt(1)})
		d.AddExpense(ledger.Expense{ID: "e2", Date: "2024-06-02", Category: "food", Amount: decimal.NewFromInt(1)})
		d.AddExpense(ledger.Expense{ID: "e3", Date: "2024-06-03", Category: "Fuel", Amount: decimal.NewFromInt(1)})
		d.AddEnvelope(ledger.Envelope{ID: "s1", Name: "Fun", MonthlyBudget: decimal.NewFromInt(50)})
		d.AddEnvelope(ledger.Envelope{ID: "s2", Name: "Fuel", MonthlyBudget: decimal.NewFromInt(80)})
	})
	service := NewExpenseServiceImpl(store)

	// when
	categories, err := service.Categories(context.Background())

	// then duplicates collapse regardless of case and the list is sorted
	require.NoError(t, err)
	assert.Len(t, categories, 3)
	assert.Contains(t, categories, "Fuel")
	assert.Contains(t, categories, "Fun")
	assert.Equal(t, categories[0], "Fuel")
}
