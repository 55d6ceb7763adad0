package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPersister struct {
	saves int
	fail  bool
}

func (p *recordingPersister) Save(data Data) error {
	p.saves++
	if p.fail {
		return errors.New("disk full")
	}
	return nil
}

func TestStore_UpdateIsAtomic(t *testing.T) {
	store := NewStore(NewData(), nil)

	// given
	err := store.Update(func(d *Data) error {
		d.AddExpense(Expense{ID: store.NewID(), Date: "2024-03-01", Category: "Food", Amount: decimal.NewFromInt(10)})
		return nil
	})
	require.NoError(t, err)

	// when a mutation fails halfway, nothing of it must stick
	err = store.Update(func(d *Data) error {
		d.AddExpense(Expense{ID: store.NewID(), Date: "2024-03-02", Category: "Food", Amount: decimal.NewFromInt(99)})
		return Validationf("simulated rejection")
	})

	// then
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	store.View(func(d *Data) {
		assert.Len(t, d.Expenses, 1)
	})
}

func TestStore_FlushAfterEveryMutation(t *testing.T) {
	persister := &recordingPersister{}
	store := NewStore(NewData(), persister)

	require.NoError(t, store.Update(func(d *Data) error {
		d.AddEnvelope(Envelope{ID: store.NewID(), Name: "Food", MonthlyBudget: decimal.NewFromInt(300)})
		return nil
	}))
	require.NoError(t, store.Update(func(d *Data) error {
		d.BaseIncome.Primary = decimal.NewFromInt(1200)
		return nil
	}))

	assert.Equal(t, 2, persister.saves)
	assert.NoError(t, store.LastFlushError())
}

func TestStore_FlushFailureIsNonFatal(t *testing.T) {
	persister := &recordingPersister{fail: true}
	store := NewStore(NewData(), persister)

	// when
	err := store.Update(func(d *Data) error {
		d.AddEnvelope(Envelope{ID: store.NewID(), Name: "Leisure", MonthlyBudget: decimal.NewFromInt(80)})
		return nil
	})

	// then the mutation itself succeeds and memory keeps the new state
	require.NoError(t, err)
	store.View(func(d *Data) {
		assert.Len(t, d.Envelopes, 1)
	})
	var pErr *PersistenceWriteError
	assert.ErrorAs(t, store.LastFlushError(), &pErr)

	// and the error clears once flushing works again
	persister.fail = false
	require.NoError(t, store.Update(func(d *Data) error { return nil }))
	assert.NoError(t, store.LastFlushError())
}

func TestData_GuardOnInitialDepositMirror(t *testing.T) {
	store := NewStore(NewData(), nil)
	mirrorID := store.NewID()
	require.NoError(t, store.Update(func(d *Data) error {
		d.AddExpense(Expense{
			ID:          mirrorID,
			Date:        "2024-03-01",
			Category:    PiggyCategory,
			Description: "Initial savings in Vacation",
			Amount:      decimal.NewFromInt(100),
			Kind:        ExpensePiggyInitial,
			PiggyBankID: "pb1",
		})
		return nil
	}))

	var gErr *GuardedDeletionError

	// deleting the mirror is rejected and leaves the ledger unchanged
	err := store.Update(func(d *Data) error { return d.RemoveExpense(mirrorID) })
	require.ErrorAs(t, err, &gErr)
	store.View(func(d *Data) {
		assert.Len(t, d.Expenses, 1)
	})

	// so is editing it
	err = store.Update(func(d *Data) error {
		return d.UpdateExpense(Expense{ID: mirrorID, Amount: decimal.NewFromInt(1)})
	})
	require.ErrorAs(t, err, &gErr)
	store.View(func(d *Data) {
		assert.True(t, d.Expenses[0].Amount.Equal(decimal.NewFromInt(100)))
	})
}

func TestData_UpdateExpensePreservesKindAndLink(t *testing.T) {
	d := NewData()
	d.AddExpense(Expense{ID: "e1", Date: "2024-03-05", Category: PiggyCategory, Description: "Savings in Vacation", Amount: decimal.NewFromInt(50), PiggyBankID: "pb1"})

	err := d.UpdateExpense(Expense{ID: "e1", Date: "2024-03-06", Category: "Food", Description: "groceries", Amount: decimal.NewFromInt(20), Kind: ExpensePiggyInitial, PiggyBankID: "other"})
	require.NoError(t, err)

	got, ok := d.FindExpense("e1")
	require.True(t, ok)
	assert.Equal(t, ExpenseOrdinary, got.Kind)
	assert.Equal(t, "pb1", got.PiggyBankID)
	assert.Equal(t, "Food", got.Category)
}

func TestData_RemoveUnknownRecords(t *testing.T) {
	d := NewData()
	assert.ErrorIs(t, d.RemoveExpense("missing"), ErrNotFound)
	assert.ErrorIs(t, d.RemoveIncome("missing"), ErrNotFound)
	assert.ErrorIs(t, d.RemoveEnvelope("missing"), ErrNotFound)
	assert.ErrorIs(t, d.RemoveFixedExpense("missing"), ErrNotFound)
	assert.ErrorIs(t, d.RemovePiggyBank("missing"), ErrNotFound)
}

func TestData_CloneIsolation(t *testing.T) {
	d := NewData()
	d.AddEnvelope(Envelope{ID: "s1", Name: "Food", MonthlyBudget: decimal.NewFromInt(100)})
	d.NotesByMonth["2024-03"] = "original"

	c := d.Clone()
	c.Envelopes[0].Name = "changed"
	c.NotesByMonth["2024-03"] = "changed"

	assert.Equal(t, "Food", d.Envelopes[0].Name)
	assert.Equal(t, "original", d.NotesByMonth["2024-03"])
}
