package piggy

import (
	"context"
	"fmt"

	"github.com/flujofacil/flujofacil/internal/utils"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type PiggyBankService interface {
	GetAll(ctx context.Context) ([]ledger.PiggyBank, error)
	Create(ctx context.Context, name string, goal, initialDeposit decimal.Decimal) (ledger.PiggyBank, error)
	Deposit(ctx context.Context, id string, amount decimal.Decimal) (ledger.PiggyBank, error)
	Withdraw(ctx context.Context, id string, amount decimal.Decimal, returnToIncome bool) (ledger.PiggyBank, error)
	Break(ctx context.Context, id string) error
}

type PiggyBankServiceImpl struct {
	store    *ledger.Store
	clock    utils.Clock
	maxBanks int // 0 means unlimited
}

func NewPiggyBankServiceImpl(store *ledger.Store, clock utils.Clock, maxBanks int) *PiggyBankServiceImpl {
	return &PiggyBankServiceImpl{store: store, clock: clock, maxBanks: maxBanks}
}

func (s *PiggyBankServiceImpl) GetAll(ctx context.Context) ([]ledger.PiggyBank, error) {
	var banks []ledger.PiggyBank
	s.store.View(func(d *ledger.Data) {
		banks = append(banks, d.PiggyBanks...)
	})
	return banks, nil
}

// Create opens a piggy bank. A positive initial deposit also books the
// mirrored expense that keeps monthly totals consistent with the money set
// aside; that mirror can only be undone through Withdraw or Break.
func (s *PiggyBankServiceImpl) Create(ctx context.Context, name string, goal, initialDeposit decimal.Decimal) (ledger.PiggyBank, error) {
	if name == "" {
		return ledger.PiggyBank{}, ledger.Validationf("piggy bank name is required")
	}
	if goal.IsNegative() {
		return ledger.PiggyBank{}, ledger.Validationf("goal amount must not be negative")
	}
	if initialDeposit.IsNegative() {
		return ledger.PiggyBank{}, ledger.Validationf("initial deposit must not be negative")
	}

	bank := ledger.PiggyBank{
		ID:         s.store.NewID(),
		Name:       name,
		GoalAmount: goal,
		Balance:    initialDeposit,
	}
	err := s.store.Update(func(d *ledger.Data) error {
		if s.maxBanks > 0 && len(d.PiggyBanks) >= s.maxBanks {
			return ledger.Validationf("piggy bank limit reached (%d)", s.maxBanks)
		}
		d.AddPiggyBank(bank)
		if initialDeposit.IsPositive() {
			d.AddExpense(ledger.Expense{
				ID:          s.store.NewID(),
				Date:        utils.Today(s.clock),
				Category:    ledger.PiggyCategory,
				Description: fmt.Sprintf("Initial savings in %s", name),
				Amount:      initialDeposit,
				Kind:        ledger.ExpensePiggyInitial,
				PiggyBankID: bank.ID,
			})
		}
		return nil
	})
	if err != nil {
		return ledger.PiggyBank{}, err
	}
	log.Debugf("Created piggy bank %s (%s)", bank.Name, bank.ID)
	return bank, nil
}

// Deposit moves money into the bank and books a regular expense for it. The
// mirror is an ordinary record on purpose: the user may edit or delete it
// like any other expense without touching the balance.
func (s *PiggyBankServiceImpl) Deposit(ctx context.Context, id string, amount decimal.Decimal) (ledger.PiggyBank, error) {
	if !amount.IsPositive() {
		return ledger.PiggyBank{}, ledger.Validationf("deposit amount must be positive")
	}

	var updated ledger.PiggyBank
	err := s.store.Update(func(d *ledger.Data) error {
		bank, ok := d.FindPiggyBank(id)
		if !ok {
			return ledger.ErrNotFound
		}
		bank.Balance = bank.Balance.Add(amount)
		if err := d.UpdatePiggyBank(bank); err != nil {
			return err
		}
		d.AddExpense(ledger.Expense{
			ID:          s.store.NewID(),
			Date:        utils.Today(s.clock),
			Category:    ledger.PiggyCategory,
			Description: fmt.Sprintf("Savings in %s", bank.Name),
			Amount:      amount,
			PiggyBankID: bank.ID,
		})
		updated = bank
		return nil
	})
	if err != nil {
		return ledger.PiggyBank{}, err
	}
	return updated, nil
}

// Withdraw takes money out of the bank. When returnToIncome is set the
// amount reappears in the month's one-off income, otherwise it just leaves
// the tracked world (cash spent directly from savings).
func (s *PiggyBankServiceImpl) Withdraw(ctx context.Context, id string, amount decimal.Decimal, returnToIncome bool) (ledger.PiggyBank, error) {
	if !amount.IsPositive() {
		return ledger.PiggyBank{}, ledger.Validationf("withdrawal amount must be positive")
	}

	var updated ledger.PiggyBank
	err := s.store.Update(func(d *ledger.Data) error {
		bank, ok := d.FindPiggyBank(id)
		if !ok {
			return ledger.ErrNotFound
		}
		if bank.Balance.LessThan(amount) {
			return ledger.Validationf("insufficient funds: balance is %s, requested %s", bank.Balance, amount)
		}
		bank.Balance = bank.Balance.Sub(amount)
		if err := d.UpdatePiggyBank(bank); err != nil {
			return err
		}
		if returnToIncome {
			d.AddIncome(ledger.Income{
				ID:          s.store.NewID(),
				Date:        utils.Today(s.clock),
				Description: fmt.Sprintf("Withdrawal from %s", bank.Name),
				Amount:      amount,
				Kind:        ledger.IncomePiggyWithdrawal,
				PiggyBankID: bank.ID,
			})
		}
		updated = bank
		return nil
	})
	if err != nil {
		return ledger.PiggyBank{}, err
	}
	return updated, nil
}

// Break deletes the bank for good. A remaining balance always flows back as
// income so the money does not silently vanish from the ledger; historical
// expense mirrors stay where they are.
func (s *PiggyBankServiceImpl) Break(ctx context.Context, id string) error {
	return s.store.Update(func(d *ledger.Data) error {
		bank, ok := d.FindPiggyBank(id)
		if !ok {
			return ledger.ErrNotFound
		}
		if err := d.RemovePiggyBank(id); err != nil {
			return err
		}
		if bank.Balance.IsPositive() {
			d.AddIncome(ledger.Income{
				ID:          s.store.NewID(),
				Date:        utils.Today(s.clock),
				Description: fmt.Sprintf("Broke piggy bank %s", bank.Name),
				Amount:      bank.Balance,
				Kind:        ledger.IncomePiggyWithdrawal,
				PiggyBankID: bank.ID,
			})
		}
		log.Infof("Piggy bank %s broken, returned %s to income", bank.Name, bank.Balance)
		return nil
	})
}
