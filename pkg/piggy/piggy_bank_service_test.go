package piggy

import (
	"context"
	"testing"
	"time"

	"github.com/flujofacil/flujofacil/internal/utils"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, maxBanks int) (*PiggyBankServiceImpl, *ledger.Store) {
	t.Helper()
	store := ledger.NewStore(ledger.NewData(), nil)
	clock := &utils.MockClock{FixedNow: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)}
	return NewPiggyBankServiceImpl(store, clock, maxBanks), store
}

func TestCreate_WithInitialDeposit(t *testing.T) {
	// given
	service, store := newTestService(t, 0)

	// when
	bank, err := service.Create(context.Background(), "Vacation", decimal.NewFromInt(500), decimal.NewFromInt(100))

	// then
	require.NoError(t, err)
	assert.True(t, bank.Balance.Equal(decimal.NewFromInt(100)))
	store.View(func(d *ledger.Data) {
		require.Len(t, d.Expenses, 1)
		mirror := d.Expenses[0]
		assert.Equal(t, ledger.ExpensePiggyInitial, mirror.Kind)
		assert.Equal(t, ledger.PiggyCategory, mirror.Category)
		assert.Equal(t, "Initial savings in Vacation", mirror.Description)
		assert.Equal(t, "2024-06-15", mirror.Date)
		assert.Equal(t, bank.ID, mirror.PiggyBankID)
		assert.True(t, mirror.Amount.Equal(decimal.NewFromInt(100)))
	})
}

func TestCreate_WithoutInitialDeposit(t *testing.T) {
	// given
	service, store := newTestService(t, 0)

	// when
	bank, err := service.Create(context.Background(), "Rainy day", decimal.Zero, decimal.Zero)

	// then
	require.NoError(t, err)
	assert.True(t, bank.Balance.IsZero())
	store.View(func(d *ledger.Data) {
		assert.Empty(t, d.Expenses, "no deposit means no mirrored expense")
	})
}

func TestCreate_Validation(t *testing.T) {
	service, _ := newTestService(t, 0)

	tests := []struct {
		name    string
		bank    string
		goal    decimal.Decimal
		deposit decimal.Decimal
	}{
		{"empty name", "", decimal.NewFromInt(100), decimal.Zero},
		{"negative goal", "Car", decimal.NewFromInt(-1), decimal.Zero},
		{"negative deposit", "Car", decimal.NewFromInt(100), decimal.NewFromInt(-5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.bank, tt.goal, tt.deposit)
			var vErr *ledger.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreate_RespectsLimit(t *testing.T) {
	// given
	service, store := newTestService(t, 1)
	_, err := service.Create(context.Background(), "First", decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	// when
	_, err = service.Create(context.Background(), "Second", decimal.Zero, decimal.Zero)

	// then
	var vErr *ledger.ValidationError
	require.ErrorAs(t, err, &vErr)
	store.View(func(d *ledger.Data) {
		assert.Len(t, d.PiggyBanks, 1)
	})
}

func TestDeposit_AddsEditableMirror(t *testing.T) {
	// given
	service, store := newTestService(t, 0)
	bank, err := service.Create(context.Background(), "Vacation", decimal.NewFromInt(500), decimal.NewFromInt(100))
	require.NoError(t, err)

	// when
	updated, err := service.Deposit(context.Background(), bank.ID, decimal.NewFromInt(50))

	// then
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(150)))
	store.View(func(d *ledger.Data) {
		require.Len(t, d.Expenses, 2)
		mirror := d.Expenses[1]
		assert.Equal(t, ledger.ExpenseOrdinary, mirror.Kind, "deposit mirrors stay editable")
		assert.Equal(t, "Savings in Vacation", mirror.Description)
	})

	// and the ordinary mirror can be removed without touching the balance
	var mirrorID string
	store.View(func(d *ledger.Data) {
		mirrorID = d.Expenses[1].ID
	})
	err = store.Update(func(d *ledger.Data) error {
		return d.RemoveExpense(mirrorID)
	})
	require.NoError(t, err)
	store.View(func(d *ledger.Data) {
		got, ok := d.FindPiggyBank(bank.ID)
		require.True(t, ok)
		assert.True(t, got.Balance.Equal(decimal.NewFromInt(150)))
	})
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	// given
	service, store := newTestService(t, 0)
	bank, err := service.Create(context.Background(), "Vacation", decimal.Zero, decimal.NewFromInt(20))
	require.NoError(t, err)

	// when
	_, err = service.Withdraw(context.Background(), bank.ID, decimal.NewFromInt(50), false)

	// then
	var vErr *ledger.ValidationError
	require.ErrorAs(t, err, &vErr)
	store.View(func(d *ledger.Data) {
		got, _ := d.FindPiggyBank(bank.ID)
		assert.True(t, got.Balance.Equal(decimal.NewFromInt(20)), "failed withdrawal leaves the balance alone")
	})
}

func TestWithdraw_ReturnToIncome(t *testing.T) {
	// given
	service, store := newTestService(t, 0)
	bank, err := service.Create(context.Background(), "Vacation", decimal.Zero, decimal.NewFromInt(150))
	require.NoError(t, err)

	// when
	updated, err := service.Withdraw(context.Background(), bank.ID, decimal.NewFromInt(30), true)

	// then
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(120)))
	store.View(func(d *ledger.Data) {
		require.Len(t, d.Incomes, 1)
		mirror := d.Incomes[0]
		assert.Equal(t, ledger.IncomePiggyWithdrawal, mirror.Kind)
		assert.Equal(t, "Withdrawal from Vacation", mirror.Description)
		assert.True(t, mirror.Amount.Equal(decimal.NewFromInt(30)))
	})
}

func TestWithdraw_WithoutReturnToIncome(t *testing.T) {
	// given
	service, store := newTestService(t, 0)
	bank, err := service.Create(context.Background(), "Vacation", decimal.Zero, decimal.NewFromInt(150))
	require.NoError(t, err)

	// when
	updated, err := service.Withdraw(context.Background(), bank.ID, decimal.NewFromInt(30), false)

	// then
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(120)))
	store.View(func(d *ledger.Data) {
		assert.Empty(t, d.Incomes, "untracked spending leaves no income record")
	})
}

func TestBreak_ReturnsBalanceAsIncome(t *testing.T) {
	// given
	service, store := newTestService(t, 0)
	bank, err := service.Create(context.Background(), "Vacation", decimal.NewFromInt(500), decimal.NewFromInt(120))
	require.NoError(t, err)

	// when
	err = service.Break(context.Background(), bank.ID)

	// then
	require.NoError(t, err)
	store.View(func(d *ledger.Data) {
		_, ok := d.FindPiggyBank(bank.ID)
		assert.False(t, ok)
		require.Len(t, d.Incomes, 1)
		mirror := d.Incomes[0]
		assert.Equal(t, ledger.IncomePiggyWithdrawal, mirror.Kind)
		assert.Equal(t, "Broke piggy bank Vacation", mirror.Description)
		assert.True(t, mirror.Amount.Equal(decimal.NewFromInt(120)))
		require.Len(t, d.Expenses, 1, "historical mirrors survive the break")
		assert.Equal(t, ledger.ExpensePiggyInitial, d.Expenses[0].Kind)
	})
}

func TestBreak_EmptyBalance(t *testing.T) {
	// given
	service, store := newTestService(t, 0)
	bank, err := service.Create(context.Background(), "Empty", decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	// when
	err = service.Break(context.Background(), bank.ID)

	// then
	require.NoError(t, err)
	store.View(func(d *ledger.Data) {
		assert.Empty(t, d.PiggyBanks)
		assert.Empty(t, d.Incomes, "nothing to return means no income record")
	})
}

func TestBreak_UnknownBank(t *testing.T) {
	service, _ := newTestService(t, 0)
	err := service.Break(context.Background(), "missing")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestVacationScenario(t *testing.T) {
	// given the full lifecycle of one piggy bank
	service, store := newTestService(t, 0)
	ctx := context.Background()

	bank, err := service.Create(ctx, "Vacation", decimal.NewFromInt(500), decimal.NewFromInt(100))
	require.NoError(t, err)

	bank, err = service.Deposit(ctx, bank.ID, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, bank.Balance.Equal(decimal.NewFromInt(150)))

	bank, err = service.Withdraw(ctx, bank.ID, decimal.NewFromInt(30), true)
	require.NoError(t, err)
	assert.True(t, bank.Balance.Equal(decimal.NewFromInt(120)))

	require.NoError(t, service.Break(ctx, bank.ID))

	// then every movement left its trace in the ledger
	store.View(func(d *ledger.Data) {
		assert.Empty(t, d.PiggyBanks)
		require.Len(t, d.Expenses, 2)
		require.Len(t, d.Incomes, 2)
		assert.True(t, d.Incomes[1].Amount.Equal(decimal.NewFromInt(120)))
	})
}
