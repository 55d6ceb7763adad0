package income

import (
	"context"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/flujofacil/flujofacil/pkg/month"
)

type IncomeService interface {
	GetBase(ctx context.Context) (ledger.BaseIncome, error)
	SetBase(ctx context.Context, base ledger.BaseIncome) (ledger.BaseIncome, error)
	GetAll(ctx context.Context) ([]ledger.Income, error)
	Create(ctx context.Context, income ledger.Income) (ledger.Income, error)
	Update(ctx context.Context, income ledger.Income) (ledger.Income, error)
	Delete(ctx context.Context, id string) error
}

type IncomeServiceImpl struct {
	store *ledger.Store
}

func NewIncomeServiceImpl(store *ledger.Store) *IncomeServiceImpl {
	return &IncomeServiceImpl{store: store}
}

func (s *IncomeServiceImpl) GetBase(ctx context.Context) (ledger.BaseIncome, error) {
	var base ledger.BaseIncome
	s.store.View(func(d *ledger.Data) {
		base = d.BaseIncome
	})
	return base, nil
}

// SetBase replaces the recurring monthly income triple. Negative components
// are rejected; zero is fine (a source can dry up).
func (s *IncomeServiceImpl) SetBase(ctx context.Context, base ledger.BaseIncome) (ledger.BaseIncome, error) {
	if base.Primary.IsNegative() || base.Secondary.IsNegative() || base.Other.IsNegative() {
		return ledger.BaseIncome{}, ledger.Validationf("base income components must not be negative")
	}
	err := s.store.Update(func(d *ledger.Data) error {
		d.BaseIncome = base
		return nil
	})
	if err != nil {
		return ledger.BaseIncome{}, err
	}
	return base, nil
}

func (s *IncomeServiceImpl) GetAll(ctx context.Context) ([]ledger.Income, error) {
	var incomes []ledger.Income
	s.store.View(func(d *ledger.Data) {
		incomes = append(incomes, d.Incomes...)
	})
	return incomes, nil
}

func (s *IncomeServiceImpl) Create(ctx context.Context, income ledger.Income) (ledger.Income, error) {
	if err := validate(income); err != nil {
		return ledger.Income{}, err
	}
	income.ID = s.store.NewID()
	income.Kind = ledger.IncomeOrdinary
	income.PiggyBankID = ""
	err := s.store.Update(func(d *ledger.Data) error {
		d.AddIncome(income)
		return nil
	})
	if err != nil {
		return ledger.Income{}, err
	}
	return income, nil
}

// Update replaces a one-off income by id. The kind and piggy link of
// withdrawal mirrors are kept as they are; the user only edits the visible
// fields.
func (s *IncomeServiceImpl) Update(ctx context.Context, income ledger.Income) (ledger.Income, error) {
	if err := validate(income); err != nil {
		return ledger.Income{}, err
	}
	var updated ledger.Income
	err := s.store.Update(func(d *ledger.Data) error {
		existing, ok := d.FindIncome(income.ID)
		if !ok {
			return ledger.ErrNotFound
		}
		income.Kind = existing.Kind
		income.PiggyBankID = existing.PiggyBankID
		updated = income
		return d.UpdateIncome(income)
	})
	if err != nil {
		return ledger.Income{}, err
	}
	return updated, nil
}

func (s *IncomeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.store.Update(func(d *ledger.Data) error {
		return d.RemoveIncome(id)
	})
}

func validate(income ledger.Income) error {
	if _, ok := month.FromDate(income.Date); !ok {
		return ledger.Validationf("income date must be a valid YYYY-MM-DD date")
	}
	if !income.Amount.IsPositive() {
		return ledger.Validationf("income amount must be positive")
	}
	return nil
}
