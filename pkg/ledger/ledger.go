package ledger

import (
	"github.com/shopspring/decimal"
)

// ExpenseKind discriminates ordinary expenses from entries the piggy-bank
// engine mirrors into the ledger. The kind is part of the type so the
// deletion guard can match on it instead of sniffing descriptions.
type ExpenseKind string

const (
	// ExpenseOrdinary covers user-entered expenses and voluntary piggy-bank
	// top-up mirrors, which stay editable and deletable on purpose.
	ExpenseOrdinary ExpenseKind = ""
	// ExpensePiggyInitial marks the mirrored initial funding of a piggy bank.
	// Such entries can only disappear through the piggy bank itself.
	ExpensePiggyInitial ExpenseKind = "piggy_initial_deposit"
)

// IncomeKind discriminates ordinary one-off income from piggy-bank
// withdrawal mirrors.
type IncomeKind string

const (
	IncomeOrdinary        IncomeKind = ""
	IncomePiggyWithdrawal IncomeKind = "piggy_withdrawal"
)

// FixedCategory is the closed set of fixed-expense categories.
type FixedCategory string

const (
	CategoryUtilities     FixedCategory = "Utilities"
	CategoryLoans         FixedCategory = "Loans"
	CategorySubscriptions FixedCategory = "Subscriptions"
	CategoryMisc          FixedCategory = "Misc"
)

// FixedCategories lists all valid categories in display order.
var FixedCategories = []FixedCategory{
	CategoryUtilities,
	CategoryLoans,
	CategorySubscriptions,
	CategoryMisc,
}

// ParseFixedCategory validates a category name, defaulting blank input to
// Misc the way untagged records were treated historically.
func ParseFixedCategory(s string) (FixedCategory, bool) {
	if s == "" {
		return CategoryMisc, true
	}
	for _, c := range FixedCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// PiggyCategory is the expense category assigned to every mirrored
// piggy-bank movement.
const PiggyCategory = "Piggy banks"

// BaseIncome is the trio of monthly amounts that applies to every month
// uniformly; it carries no date.
type BaseIncome struct {
	Primary   decimal.Decimal
	Secondary decimal.Decimal
	Other     decimal.Decimal
}

// Total sums the three base amounts.
func (b BaseIncome) Total() decimal.Decimal {
	return b.Primary.Add(b.Secondary).Add(b.Other)
}

// FixedExpense is a recurring monthly expense, not scoped to any month.
type FixedExpense struct {
	ID            string
	Name          string
	Category      FixedCategory
	MonthlyAmount decimal.Decimal
}

// Envelope is a named monthly spending budget matched against expenses that
// share its name as category. Consumption is derived, never stored.
type Envelope struct {
	ID            string
	Name          string
	MonthlyBudget decimal.Decimal
}

// PiggyBank is a savings bucket with its own balance, linked to the ledger
// through mirrored records. GoalAmount zero means no goal.
type PiggyBank struct {
	ID         string
	Name       string
	GoalAmount decimal.Decimal
	Balance    decimal.Decimal
}

// Income is a one-off, date-stamped income record.
type Income struct {
	ID          string
	Date        string // ISO YYYY-MM-DD
	Description string
	Amount      decimal.Decimal
	Kind        IncomeKind
	PiggyBankID string
}

// Expense is a date-stamped variable expense with a free-text category.
type Expense struct {
	ID          string
	Date        string // ISO YYYY-MM-DD
	Category    string
	Description string
	Amount      decimal.Decimal
	Kind        ExpenseKind
	PiggyBankID string
}

// Preferences holds the presentation knobs the engine merely stores.
type Preferences struct {
	PrimaryIncomeLabel string
	Theme              string
}

// DefaultPreferences returns the preferences of a fresh ledger.
func DefaultPreferences() Preferences {
	return Preferences{PrimaryIncomeLabel: "Primary income", Theme: "default"}
}
