package app

import (
	"github.com/flujofacil/flujofacil/internal/config"
	"github.com/flujofacil/flujofacil/internal/utils"
	"github.com/flujofacil/flujofacil/pkg/backup"
	"github.com/flujofacil/flujofacil/pkg/envelope"
	"github.com/flujofacil/flujofacil/pkg/expense"
	"github.com/flujofacil/flujofacil/pkg/fixed"
	"github.com/flujofacil/flujofacil/pkg/income"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/flujofacil/flujofacil/pkg/note"
	"github.com/flujofacil/flujofacil/pkg/piggy"
	"github.com/flujofacil/flujofacil/pkg/settings"
	"github.com/flujofacil/flujofacil/pkg/summary"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Store *ledger.Store
	Clock utils.Clock

	IncomeService income.IncomeService
	IncomeHandler *income.IncomeHandler

	FixedExpenseService fixed.FixedExpenseService
	FixedExpenseHandler *fixed.FixedExpenseHandler

	ExpenseService expense.ExpenseService
	ExpenseHandler *expense.ExpenseHandler

	EnvelopeService envelope.EnvelopeService
	EnvelopeHandler *envelope.EnvelopeHandler

	PiggyBankService piggy.PiggyBankService
	PiggyBankHandler *piggy.PiggyBankHandler

	SummaryService summary.SummaryService
	SummaryHandler *summary.SummaryHandler

	NoteService note.NoteService
	NoteHandler *note.NoteHandler

	SettingsService settings.SettingsService
	SettingsHandler *settings.SettingsHandler

	BackupHandler *backup.Handler

	StatusHandler *StatusHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(store *ledger.Store, cfg config.Application) *Dependencies {
	deps := &Dependencies{Store: store}

	deps.Clock = &utils.SystemClock{}

	deps.IncomeService = income.NewIncomeServiceImpl(store)
	deps.IncomeHandler = income.NewIncomeHandler(deps.IncomeService)

	deps.FixedExpenseService = fixed.NewFixedExpenseServiceImpl(store)
	deps.FixedExpenseHandler = fixed.NewFixedExpenseHandler(deps.FixedExpenseService)

	deps.ExpenseService = expense.NewExpenseServiceImpl(store)
	deps.ExpenseHandler = expense.NewExpenseHandler(deps.ExpenseService)

	deps.EnvelopeService = envelope.NewEnvelopeServiceImpl(store, cfg.Limits.MaxEnvelopes)
	deps.EnvelopeHandler = envelope.NewEnvelopeHandler(deps.EnvelopeService)

	deps.PiggyBankService = piggy.NewPiggyBankServiceImpl(store, deps.Clock, cfg.Limits.MaxPiggyBanks)
	deps.PiggyBankHandler = piggy.NewPiggyBankHandler(deps.PiggyBankService)

	deps.SummaryService = summary.NewSummaryServiceImpl(store)
	deps.SummaryHandler = summary.NewSummaryHandler(deps.SummaryService, deps.Clock)

	deps.NoteService = note.NewNoteServiceImpl(store)
	deps.NoteHandler = note.NewNoteHandler(deps.NoteService)

	deps.SettingsService = settings.NewSettingsServiceImpl(store)
	deps.SettingsHandler = settings.NewSettingsHandler(deps.SettingsService)

	deps.BackupHandler = backup.NewHandler(store, deps.Clock)

	deps.StatusHandler = NewStatusHandler(store)

	return deps
}
