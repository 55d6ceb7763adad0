package income

import (
	"context"
	"testing"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBase(t *testing.T) {
	// given
	store := ledger.NewStore(ledger.NewData(), nil)
	service := NewIncomeServiceImpl(store)

	// when
	base, err := service.SetBase(context.Background(), ledger.BaseIncome{
		Primary:   decimal.NewFromInt(1500),
		Secondary: decimal.NewFromInt(800),
	})

	// then
	require.NoError(t, err)
	assert.True(t, base.Total().Equal(decimal.NewFromInt(2300)))

	got, err := service.GetBase(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Primary.Equal(decimal.NewFromInt(1500)))
}

func TestSetBase_RejectsNegative(t *testing.T) {
	service := NewIncomeServiceImpl(ledger.NewStore(ledger.NewData(), nil))

	_, err := service.SetBase(context.Background(), ledger.BaseIncome{Primary: decimal.NewFromInt(-1)})

	var vErr *ledger.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreate_Validation(t *testing.T) {
	service := NewIncomeServiceImpl(ledger.NewStore(ledger.NewData(), nil))

	tests := []struct {
		name   string
		income ledger.Income
	}{
		{"missing date", ledger.Income{Amount: decimal.NewFromInt(10)}},
		{"junk date", ledger.Income{Date: "not-a-date", Amount: decimal.NewFromInt(10)}},
		{"zero amount", ledger.Income{Date: "2024-06-01", Amount: decimal.Zero}},
		{"negative amount", ledger.Income{Date: "2024-06-01", Amount: decimal.NewFromInt(-5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.income)
			var vErr *ledger.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreate_AssignsIDAndOrdinaryKind(t *testing.T) {
	// given
	service := NewIncomeServiceImpl(ledger.NewStore(ledger.NewData(), nil))

	// when a client smuggles mirror fields into the request
	created, err := service.Create(context.Background(), ledger.Income{
		Date:        "2024-06-01",
		Description: "bonus",
		Amount:      decimal.NewFromInt(100),
		Kind:        ledger.IncomePiggyWithdrawal,
		PiggyBankID: "fake",
	})

	// then the record is stored as plain income
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, ledger.IncomeOrdinary, created.Kind)
	assert.Empty(t, created.PiggyBankID)
}

func TestUpdate_PreservesMirrorFields(t *testing.T) {
	// given a withdrawal mirror in the ledger
	store := ledger.NewStore(ledger.NewData(), nil)
	mirror := ledger.Income{
		ID:          "m1",
		Date:        "2024-06-01",
		Description: "Withdrawal from Vacation",
		Amount:      decimal.NewFromInt(30),
		Kind:        ledger.IncomePiggyWithdrawal,
		PiggyBankID: "p1",
	}
	require.NoError(t, store.Update(func(d *ledger.Data) error {
		d.AddIncome(mirror)
		return nil
	}))
	service := NewIncomeServiceImpl(store)

	// when the user edits the visible fields
	updated, err := service.Update(context.Background(), ledger.Income{
		ID:          "m1",
		Date:        "2024-06-02",
		Description: "renamed",
		Amount:      decimal.NewFromInt(35),
	})

	// then the mirror link survives the edit
	require.NoError(t, err)
	assert.Equal(t, ledger.IncomePiggyWithdrawal, updated.Kind)
	assert.Equal(t, "p1", updated.PiggyBankID)
	assert.Equal(t, "renamed", updated.Description)
}

func TestUpdate_UnknownIncome(t *testing.T) {
	service := NewIncomeServiceImpl(ledger.NewStore(ledger.NewData(), nil))

	_, err := service.Update(context.Background(), ledger.Income{
		ID: "missing", Date: "2024-06-01", Amount: decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestDelete(t *testing.T) {
	// given
	store := ledger.NewStore(ledger.NewData(), nil)
	service := NewIncomeServiceImpl(store)
	created, err := service.Create(context.Background(), ledger.Income{
		Date: "2024-06-01", Amount: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// when
	err = service.Delete(context.Background(), created.ID)

	// then
	require.NoError(t, err)
	all, err := service.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
