package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// AddTransactionInput carries all data needed to record a transaction.
// Numeric and date string conversion is the caller's job; the core only sees
// parsed values.
type AddTransactionInput struct {
	UserID      int64
	Kind        domain.TransactionKind
	CategoryID  int64
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// TransactionService defines the ledger query and mutation operations over
// transactions and categories.
type TransactionService interface {
	AddTransaction(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error)
	// ListTransactions returns the user's transactions sorted by date
	// descending; same-date rows keep insertion order (stable sort).
	ListTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
	Summarize(ctx context.Context, userID int64) (*domain.Summary, error)
	// CategoryBreakdown sums the user's transactions of the given kind per
	// category, preserving first-seen category order.
	CategoryBreakdown(ctx context.Context, userID int64, kind domain.TransactionKind) ([]domain.CategoryAmount, error)
	// ListCategories returns the seeded categories, filtered to those usable
	// with the given kind; an empty kind returns all of them.
	ListCategories(ctx context.Context, kind domain.TransactionKind) ([]domain.Category, error)
}
