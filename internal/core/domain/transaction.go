package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind marks a transaction as money in or money out.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Valid reports whether k is one of the two known kinds.
func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single income or expense record. The ID is the
// Unix-millisecond creation timestamp. Category holds a copy of the category
// name taken at creation time, not a reference; renaming a category later
// would not touch existing transactions.
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Kind        TransactionKind `json:"kind"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// Summary aggregates a user's ledger. Balance is always Income minus Expense.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// CategoryAmount is one slice of a per-category breakdown. Breakdowns are
// returned as ordered slices rather than maps so the first-seen category
// order survives serialization (it drives chart legend order downstream).
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
