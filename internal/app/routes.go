package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Income
	r.HandleFunc("/api/income/base", deps.IncomeHandler.GetBase).Methods("GET")
	r.HandleFunc("/api/income/base", deps.IncomeHandler.SetBase).Methods("PUT")
	r.HandleFunc("/api/income", deps.IncomeHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/income", deps.IncomeHandler.Create).Methods("POST")
	r.HandleFunc("/api/income/{id}", deps.IncomeHandler.Update).Methods("PUT")
	r.HandleFunc("/api/income/{id}", deps.IncomeHandler.Delete).Methods("DELETE")

	// Fixed expenses
	r.HandleFunc("/api/fixed", deps.FixedExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/fixed", deps.FixedExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/fixed/report", deps.FixedExpenseHandler.Report).Methods("GET")
	r.HandleFunc("/api/fixed/{id}", deps.FixedExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/fixed/{id}", deps.FixedExpenseHandler.Delete).Methods("DELETE")

	// Variable expenses
	r.HandleFunc("/api/expense", deps.ExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/expense", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expense/categories", deps.ExpenseHandler.Categories).Methods("GET")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Envelopes
	r.HandleFunc("/api/envelope", deps.EnvelopeHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/envelope", deps.EnvelopeHandler.Create).Methods("POST")
	r.HandleFunc("/api/envelope/{id}", deps.EnvelopeHandler.Update).Methods("PUT")
	r.HandleFunc("/api/envelope/{id}", deps.EnvelopeHandler.Delete).Methods("DELETE")

	// Piggy banks
	r.HandleFunc("/api/piggybank", deps.PiggyBankHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/piggybank", deps.PiggyBankHandler.Create).Methods("POST")
	r.HandleFunc("/api/piggybank/{id}/deposit", deps.PiggyBankHandler.Deposit).Methods("POST")
	r.HandleFunc("/api/piggybank/{id}/withdraw", deps.PiggyBankHandler.Withdraw).Methods("POST")
	r.HandleFunc("/api/piggybank/{id}", deps.PiggyBankHandler.Break).Methods("DELETE")

	// Monthly summary
	r.HandleFunc("/api/summary", deps.SummaryHandler.Get).Methods("GET")

	// Monthly notes
	r.HandleFunc("/api/note/{month}", deps.NoteHandler.Get).Methods("GET")
	r.HandleFunc("/api/note/{month}", deps.NoteHandler.Set).Methods("PUT")

	// Settings
	r.HandleFunc("/api/settings/preferences", deps.SettingsHandler.GetPreferences).Methods("GET")
	r.HandleFunc("/api/settings/preferences", deps.SettingsHandler.UpdatePreferences).Methods("PUT")
	r.HandleFunc("/api/settings/reset", deps.SettingsHandler.Reset).Methods("POST")

	// Backup
	r.HandleFunc("/api/backup", deps.BackupHandler.Export).Methods("GET")
	r.HandleFunc("/api/backup", deps.BackupHandler.Import).Methods("POST")

	// Status
	r.HandleFunc("/api/status", deps.StatusHandler.Get).Methods("GET")
}
