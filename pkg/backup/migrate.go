package backup

import (
	"encoding/json"
	"sort"
)

// Migration of the original localStorage export (version 1). Field names are
// Spanish, envelopes may be an object map of name to budget, and several
// collections went through their own renames over the app's lifetime, so most
// sections accept two keys.

type legacyID string

func (l *legacyID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = legacyID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*l = legacyID(n.String())
		return nil
	}
	*l = ""
	return nil
}

type legacyBaseIncome struct {
	Juan  Amount `json:"juan"`
	Saray Amount `json:"saray"`
	Otros Amount `json:"otros"`
}

type legacyFixedExpense struct {
	ID        legacyID `json:"id"`
	Nombre    string   `json:"nombre"`
	Categoria string   `json:"categoria"`
	Importe   Amount   `json:"importe"`
}

type legacyEnvelope struct {
	ID          legacyID `json:"id"`
	Nombre      string   `json:"nombre"`
	Presupuesto Amount   `json:"presupuesto"`
	Importe     Amount   `json:"importe"`
}

type legacyPiggyBank struct {
	ID       legacyID `json:"id"`
	Nombre   string   `json:"nombre"`
	Objetivo Amount   `json:"objetivo"`
	Saldo    Amount   `json:"saldo"`
}

type legacyIncome struct {
	ID      legacyID `json:"id"`
	Fecha   string   `json:"fecha"`
	Desc    string   `json:"desc"`
	Importe Amount   `json:"importe"`
	Tipo    string   `json:"tipo"`
	HuchaID legacyID `json:"huchaId"`
}

type legacyExpense struct {
	ID        legacyID `json:"id"`
	Fecha     string   `json:"fecha"`
	Categoria string   `json:"categoria"`
	Desc      string   `json:"desc"`
	Importe   Amount   `json:"importe"`
	Tipo      string   `json:"tipo"`
	HuchaID   legacyID `json:"huchaId"`
}

type legacyPreferences struct {
	NombreIngresoPrincipal string `json:"nombreIngresoPrincipal"`
	Tema                   string `json:"tema"`
}

var legacyFixedCategories = map[string]string{
	"Suministros":   "Utilities",
	"Préstamos":     "Loans",
	"Suscripciones": "Subscriptions",
	"Varios":        "Misc",
}

var legacyKinds = map[string]string{
	"hucha_inicial": "piggy_initial_deposit",
	"hucha_retiro":  "piggy_withdrawal",
}

// migrateLegacyDocument rewrites a version 1 document into the current
// schema. Sections that fail to decode stay at their defaults; a legacy
// backup with one broken section still imports the rest.
func migrateLegacyDocument(root rawDocument) rawDocument {
	doc := Document{NotesByMonth: map[string]string{}}

	var base legacyBaseIncome
	if !decodeSection(root, &base, "ingresosBase", "baseConfig") {
		base = legacyBaseIncome{}
	}
	doc.BaseIncome = BaseIncomeDoc{Primary: base.Juan, Secondary: base.Saray, Other: base.Otros}

	var fixed []legacyFixedExpense
	decodeSection(root, &fixed, "fijos", "gastosFijos")
	for _, f := range fixed {
		doc.FixedExpenses = append(doc.FixedExpenses, FixedExpenseDoc{
			ID:            string(f.ID),
			Name:          f.Nombre,
			Category:      legacyFixedCategories[f.Categoria],
			MonthlyAmount: f.Importe,
		})
	}

	doc.Envelopes = migrateLegacyEnvelopes(root["sobres"])

	var piggies []legacyPiggyBank
	decodeSection(root, &piggies, "huchas")
	for _, p := range piggies {
		doc.PiggyBanks = append(doc.PiggyBanks, PiggyBankDoc{
			ID:         string(p.ID),
			Name:       p.Nombre,
			GoalAmount: p.Objetivo,
			Balance:    p.Saldo,
		})
	}

	var incomes []legacyIncome
	decodeSection(root, &incomes, "ingresosPuntuales")
	for _, in := range incomes {
		doc.OneOffIncome = append(doc.OneOffIncome, IncomeDoc{
			ID:          string(in.ID),
			Date:        in.Fecha,
			Description: in.Desc,
			Amount:      in.Importe,
			Type:        legacyKinds[in.Tipo],
			PiggyBankID: string(in.HuchaID),
		})
	}

	var expenses []legacyExpense
	decodeSection(root, &expenses, "gastos", "movimientos")
	for _, e := range expenses {
		doc.Expenses = append(doc.Expenses, ExpenseDoc{
			ID:          string(e.ID),
			Date:        e.Fecha,
			Category:    e.Categoria,
			Description: e.Desc,
			Amount:      e.Importe,
			Type:        legacyKinds[e.Tipo],
			PiggyBankID: string(e.HuchaID),
		})
	}

	decodeSection(root, &doc.NotesByMonth, "notasPorMes", "notasByMonth")

	var prefs legacyPreferences
	if decodeSection(root, &prefs, "personalizacion") {
		doc.Preferences = PreferencesDoc{PrimaryIncomeLabel: prefs.NombreIngresoPrincipal, Theme: prefs.Tema}
	}

	migrated, err := json.Marshal(doc)
	if err != nil {
		return rawDocument{}
	}
	var out rawDocument
	if err := json.Unmarshal(migrated, &out); err != nil {
		return rawDocument{}
	}
	return out
}

// migrateLegacyEnvelopes handles both historical shapes of the envelopes
// section: an array of records and the oldest object map of name to budget.
func migrateLegacyEnvelopes(raw json.RawMessage) []EnvelopeDoc {
	if len(raw) == 0 {
		return nil
	}

	var asList []legacyEnvelope
	if err := json.Unmarshal(raw, &asList); err == nil {
		docs := make([]EnvelopeDoc, 0, len(asList))
		for _, e := range asList {
			budget := e.Presupuesto
			if budget.IsZero() {
				budget = e.Importe
			}
			docs = append(docs, EnvelopeDoc{ID: string(e.ID), Name: e.Nombre, MonthlyBudget: budget})
		}
		return docs
	}

	var asMap map[string]Amount
	if err := json.Unmarshal(raw, &asMap); err == nil {
		names := make([]string, 0, len(asMap))
		for name := range asMap {
			names = append(names, name)
		}
		sort.Strings(names)
		docs := make([]EnvelopeDoc, 0, len(names))
		for _, name := range names {
			docs = append(docs, EnvelopeDoc{Name: name, MonthlyBudget: asMap[name]})
		}
		return docs
	}
	return nil
}

// decodeSection unmarshals the first present alias key into dst, reporting
// whether any alias was present and decodable.
func decodeSection(root rawDocument, dst any, keys ...string) bool {
	for _, key := range keys {
		raw, ok := root[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err == nil {
			return true
		}
	}
	return false
}
