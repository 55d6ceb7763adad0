package ledger

// CRUD operations over the ledger collections. Add expects the record id to
// be set already (the store generates them), update replaces every field of
// the stored record, and remove enforces the mirrored-record guard.

const initialDepositGuard = "this expense mirrors the initial funding of a piggy bank; " +
	"withdraw from or break the piggy bank instead of changing the expense directly"

func (d *Data) AddFixedExpense(f FixedExpense) {
	d.FixedExpenses = append(d.FixedExpenses, f)
}

func (d *Data) UpdateFixedExpense(f FixedExpense) error {
	for i := range d.FixedExpenses {
		if d.FixedExpenses[i].ID == f.ID {
			d.FixedExpenses[i] = f
			return nil
		}
	}
	return ErrNotFound
}

func (d *Data) RemoveFixedExpense(id string) error {
	for i := range d.FixedExpenses {
		if d.FixedExpenses[i].ID == id {
			d.FixedExpenses = append(d.FixedExpenses[:i], d.FixedExpenses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *Data) AddEnvelope(e Envelope) {
	d.Envelopes = append(d.Envelopes, e)
}

func (d *Data) UpdateEnvelope(e Envelope) error {
	for i := range d.Envelopes {
		if d.Envelopes[i].ID == e.ID {
			d.Envelopes[i] = e
			return nil
		}
	}
	return ErrNotFound
}

func (d *Data) RemoveEnvelope(id string) error {
	for i := range d.Envelopes {
		if d.Envelopes[i].ID == id {
			d.Envelopes = append(d.Envelopes[:i], d.Envelopes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *Data) AddPiggyBank(p PiggyBank) {
	d.PiggyBanks = append(d.PiggyBanks, p)
}

func (d *Data) FindPiggyBank(id string) (PiggyBank, bool) {
	for _, p := range d.PiggyBanks {
		if p.ID == id {
			return p, true
		}
	}
	return PiggyBank{}, false
}

func (d *Data) UpdatePiggyBank(p PiggyBank) error {
	for i := range d.PiggyBanks {
		if d.PiggyBanks[i].ID == p.ID {
			d.PiggyBanks[i] = p
			return nil
		}
	}
	return ErrNotFound
}

func (d *Data) RemovePiggyBank(id string) error {
	for i := range d.PiggyBanks {
		if d.PiggyBanks[i].ID == id {
			d.PiggyBanks = append(d.PiggyBanks[:i], d.PiggyBanks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *Data) AddIncome(in Income) {
	d.Incomes = append(d.Incomes, in)
}

func (d *Data) FindIncome(id string) (Income, bool) {
	for _, in := range d.Incomes {
		if in.ID == id {
			return in, true
		}
	}
	return Income{}, false
}

func (d *Data) UpdateIncome(in Income) error {
	for i := range d.Incomes {
		if d.Incomes[i].ID == in.ID {
			d.Incomes[i] = in
			return nil
		}
	}
	return ErrNotFound
}

func (d *Data) RemoveIncome(id string) error {
	for i := range d.Incomes {
		if d.Incomes[i].ID == id {
			d.Incomes = append(d.Incomes[:i], d.Incomes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *Data) AddExpense(e Expense) {
	d.Expenses = append(d.Expenses, e)
}

func (d *Data) FindExpense(id string) (Expense, bool) {
	for _, e := range d.Expenses {
		if e.ID == id {
			return e, true
		}
	}
	return Expense{}, false
}

// UpdateExpense replaces an expense by id. Initial-deposit mirrors are
// protected: adjusting them independently would desync the piggy-bank
// balance from the ledger.
func (d *Data) UpdateExpense(e Expense) error {
	for i := range d.Expenses {
		if d.Expenses[i].ID == e.ID {
			if d.Expenses[i].Kind == ExpensePiggyInitial {
				return &GuardedDeletionError{Guidance: initialDepositGuard}
			}
			// the kind and piggy link are not user-editable
			e.Kind = d.Expenses[i].Kind
			e.PiggyBankID = d.Expenses[i].PiggyBankID
			d.Expenses[i] = e
			return nil
		}
	}
	return ErrNotFound
}

// RemoveExpense deletes an expense by id, rejecting initial-deposit mirrors
// with guidance toward the piggy-bank operations.
func (d *Data) RemoveExpense(id string) error {
	for i := range d.Expenses {
		if d.Expenses[i].ID == id {
			if d.Expenses[i].Kind == ExpensePiggyInitial {
				return &GuardedDeletionError{Guidance: initialDepositGuard}
			}
			d.Expenses = append(d.Expenses[:i], d.Expenses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
