package backup

import (
	"encoding/json"
	"errors"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/google/uuid"
)

// The codec accepts every schema the app ever produced. Version detection
// looks at signature keys and each older version is migrated one step at a
// time until the document is current.
const (
	versionLegacy  = 1 // the original localStorage export (Spanish field names)
	versionCurrent = 2
)

type rawDocument map[string]json.RawMessage

var migrations = map[int]func(rawDocument) rawDocument{
	versionLegacy: migrateLegacyDocument,
}

// Encode serializes the full ledger into the current document schema.
func Encode(data ledger.Data) ([]byte, error) {
	return json.MarshalIndent(fromData(data), "", "  ")
}

// Decode parses a backup document of any supported version into a fresh
// ledger state. It never touches a live store: callers swap the result in
// only on success.
func Decode(raw []byte) (ledger.Data, error) {
	var root rawDocument
	if err := json.Unmarshal(raw, &root); err != nil {
		return ledger.Data{}, &ledger.MalformedBackupError{Cause: err}
	}
	if root == nil {
		return ledger.Data{}, &ledger.MalformedBackupError{Cause: errors.New("document is not an object")}
	}

	for version := detectVersion(root); version < versionCurrent; version++ {
		migrate, ok := migrations[version]
		if !ok {
			return ledger.Data{}, &ledger.MalformedBackupError{Cause: errors.New("unsupported document version")}
		}
		root = migrate(root)
	}

	var doc Document
	for key, section := range root {
		// Field-by-field decode: one damaged section falls back to its zero
		// value without discarding the rest of the backup.
		switch key {
		case "baseIncome":
			_ = json.Unmarshal(section, &doc.BaseIncome)
		case "fixedExpenses":
			_ = json.Unmarshal(section, &doc.FixedExpenses)
		case "envelopes":
			_ = json.Unmarshal(section, &doc.Envelopes)
		case "piggyBanks":
			_ = json.Unmarshal(section, &doc.PiggyBanks)
		case "oneOffIncome":
			_ = json.Unmarshal(section, &doc.OneOffIncome)
		case "expenses":
			_ = json.Unmarshal(section, &doc.Expenses)
		case "notesByMonth":
			_ = json.Unmarshal(section, &doc.NotesByMonth)
		case "preferences":
			_ = json.Unmarshal(section, &doc.Preferences)
		}
	}
	return toData(doc), nil
}

var legacySignatureKeys = []string{
	"ingresosBase", "baseConfig", "fijos", "gastosFijos", "sobres", "huchas",
	"ingresosPuntuales", "gastos", "movimientos", "notasPorMes", "notasByMonth",
	"personalizacion",
}

func detectVersion(root rawDocument) int {
	for _, key := range legacySignatureKeys {
		if _, ok := root[key]; ok {
			return versionLegacy
		}
	}
	return versionCurrent
}

func fromData(d ledger.Data) Document {
	doc := Document{
		BaseIncome: BaseIncomeDoc{
			Primary:   amountOf(d.BaseIncome.Primary),
			Secondary: amountOf(d.BaseIncome.Secondary),
			Other:     amountOf(d.BaseIncome.Other),
		},
		FixedExpenses: make([]FixedExpenseDoc, 0, len(d.FixedExpenses)),
		Envelopes:     make([]EnvelopeDoc, 0, len(d.Envelopes)),
		PiggyBanks:    make([]PiggyBankDoc, 0, len(d.PiggyBanks)),
		OneOffIncome:  make([]IncomeDoc, 0, len(d.Incomes)),
		Expenses:      make([]ExpenseDoc, 0, len(d.Expenses)),
		NotesByMonth:  d.NotesByMonth,
		Preferences: PreferencesDoc{
			PrimaryIncomeLabel: d.Preferences.PrimaryIncomeLabel,
			Theme:              d.Preferences.Theme,
		},
	}
	if doc.NotesByMonth == nil {
		doc.NotesByMonth = map[string]string{}
	}
	for _, f := range d.FixedExpenses {
		doc.FixedExpenses = append(doc.FixedExpenses, FixedExpenseDoc{
			ID:            f.ID,
			Name:          f.Name,
			Category:      string(f.Category),
			MonthlyAmount: amountOf(f.MonthlyAmount),
		})
	}
	for _, e := range d.Envelopes {
		doc.Envelopes = append(doc.Envelopes, EnvelopeDoc{
			ID:            e.ID,
			Name:          e.Name,
			MonthlyBudget: amountOf(e.MonthlyBudget),
		})
	}
	for _, p := range d.PiggyBanks {
		doc.PiggyBanks = append(doc.PiggyBanks, PiggyBankDoc{
			ID:         p.ID,
			Name:       p.Name,
			GoalAmount: amountOf(p.GoalAmount),
			Balance:    amountOf(p.Balance),
		})
	}
	for _, in := range d.Incomes {
		doc.OneOffIncome = append(doc.OneOffIncome, IncomeDoc{
			ID:          in.ID,
			Date:        in.Date,
			Description: in.Description,
			Amount:      amountOf(in.Amount),
			Type:        string(in.Kind),
			PiggyBankID: in.PiggyBankID,
		})
	}
	for _, e := range d.Expenses {
		doc.Expenses = append(doc.Expenses, ExpenseDoc{
			ID:          e.ID,
			Date:        e.Date,
			Category:    e.Category,
			Description: e.Description,
			Amount:      amountOf(e.Amount),
			Type:        string(e.Kind),
			PiggyBankID: e.PiggyBankID,
		})
	}
	return doc
}

func toData(doc Document) ledger.Data {
	data := ledger.NewData()
	data.BaseIncome = ledger.BaseIncome{
		Primary:   doc.BaseIncome.Primary.Decimal,
		Secondary: doc.BaseIncome.Secondary.Decimal,
		Other:     doc.BaseIncome.Other.Decimal,
	}
	for _, f := range doc.FixedExpenses {
		category, ok := ledger.ParseFixedCategory(f.Category)
		if !ok {
			category = ledger.CategoryMisc
		}
		data.FixedExpenses = append(data.FixedExpenses, ledger.FixedExpense{
			ID:            orNewID(f.ID),
			Name:          f.Name,
			Category:      category,
			MonthlyAmount: f.MonthlyAmount.Decimal,
		})
	}
	for _, e := range doc.Envelopes {
		data.Envelopes = append(data.Envelopes, ledger.Envelope{
			ID:            orNewID(e.ID),
			Name:          e.Name,
			MonthlyBudget: e.MonthlyBudget.Decimal,
		})
	}
	for _, p := range doc.PiggyBanks {
		data.PiggyBanks = append(data.PiggyBanks, ledger.PiggyBank{
			ID:         orNewID(p.ID),
			Name:       p.Name,
			GoalAmount: p.GoalAmount.Decimal,
			Balance:    p.Balance.Decimal,
		})
	}
	for _, in := range doc.OneOffIncome {
		kind := ledger.IncomeOrdinary
		if in.Type == string(ledger.IncomePiggyWithdrawal) {
			kind = ledger.IncomePiggyWithdrawal
		}
		data.Incomes = append(data.Incomes, ledger.Income{
			ID:          orNewID(in.ID),
			Date:        in.Date,
			Description: in.Description,
			Amount:      in.Amount.Decimal,
			Kind:        kind,
			PiggyBankID: in.PiggyBankID,
		})
	}
	for _, e := range doc.Expenses {
		kind := ledger.ExpenseOrdinary
		if e.Type == string(ledger.ExpensePiggyInitial) {
			kind = ledger.ExpensePiggyInitial
		}
		data.Expenses = append(data.Expenses, ledger.Expense{
			ID:          orNewID(e.ID),
			Date:        e.Date,
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount.Decimal,
			Kind:        kind,
			PiggyBankID: e.PiggyBankID,
		})
	}
	for key, note := range doc.NotesByMonth {
		data.NotesByMonth[key] = note
	}
	if doc.Preferences.PrimaryIncomeLabel != "" {
		data.Preferences.PrimaryIncomeLabel = doc.Preferences.PrimaryIncomeLabel
	}
	if doc.Preferences.Theme != "" {
		data.Preferences.Theme = doc.Preferences.Theme
	}
	return data
}

func orNewID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
