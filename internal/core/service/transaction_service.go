package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// TransactionService implements the ledger operations over transactions and
// the seeded category set.
type TransactionService struct {
	transactions ports.TransactionRepository
	categories   ports.CategoryRepository
	log          zerolog.Logger
}

func NewTransactionService(transactions ports.TransactionRepository, categories ports.CategoryRepository, log zerolog.Logger) *TransactionService {
	return &TransactionService{transactions: transactions, categories: categories, log: log}
}

// AddTransaction validates the input, denormalizes the category name into the
// record, and appends it. A zero amount fails the same check as a missing
// one; that quirk is part of the observed contract and is preserved. Kind
// consistency with the category is not re-checked here: the category listing
// endpoint filters the choices offered, and the core trusts its callers the
// same way the original did.
func (s *TransactionService) AddTransaction(ctx context.Context, in ports.AddTransactionInput) (*domain.Transaction, error) {
	if in.UserID == 0 || !in.Kind.Valid() {
		return nil, domain.ErrMissingField
	}
	if in.Amount.IsZero() || in.Description == "" || in.Date.IsZero() {
		return nil, domain.ErrMissingField
	}

	// An unresolvable category id is indistinguishable from an absent one.
	category, err := s.categories.CategoryByID(ctx, in.CategoryID)
	if err != nil {
		return nil, domain.ErrMissingField
	}

	created, err := s.transactions.CreateTransaction(ctx, &domain.Transaction{
		UserID:      in.UserID,
		Kind:        in.Kind,
		Category:    category.Name,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
	})
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", in.UserID).Msg("failed to record transaction")
		return nil, err
	}

	s.log.Info().
		Int64("transaction_id", created.ID).
		Int64("user_id", created.UserID).
		Str("kind", string(created.Kind)).
		Str("category", created.Category).
		Msg("transaction recorded")

	return created, nil
}

// ListTransactions returns the user's transactions newest-date first. The
// sort is stable, so two transactions on the same date keep their insertion
// order.
func (s *TransactionService) ListTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	list, err := s.transactions.TransactionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
	return list, nil
}

// Summarize reduces the user's ledger to income, expense, and balance totals.
// An empty ledger yields all zeros.
func (s *TransactionService) Summarize(ctx context.Context, userID int64) (*domain.Summary, error) {
	list, err := s.transactions.TransactionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range list {
		switch tx.Kind {
		case domain.KindIncome:
			income = income.Add(tx.Amount)
		case domain.KindExpense:
			expense = expense.Add(tx.Amount)
		}
	}

	return &domain.Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}

// CategoryBreakdown sums the user's transactions of one kind per category
// name, in first-seen order.
func (s *TransactionService) CategoryBreakdown(ctx context.Context, userID int64, kind domain.TransactionKind) ([]domain.CategoryAmount, error) {
	list, err := s.transactions.TransactionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown := make([]domain.CategoryAmount, 0)
	index := make(map[string]int)
	for _, tx := range list {
		if tx.Kind != kind {
			continue
		}
		i, seen := index[tx.Category]
		if !seen {
			index[tx.Category] = len(breakdown)
			breakdown = append(breakdown, domain.CategoryAmount{Category: tx.Category, Amount: tx.Amount})
			continue
		}
		breakdown[i].Amount = breakdown[i].Amount.Add(tx.Amount)
	}

	return breakdown, nil
}

// ListCategories returns the seeded categories usable with the given kind;
// "both" categories match either. An empty kind returns the full set.
func (s *TransactionService) ListCategories(ctx context.Context, kind domain.TransactionKind) ([]domain.Category, error) {
	all, err := s.categories.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return all, nil
	}

	filtered := make([]domain.Category, 0, len(all))
	for _, c := range all {
		if c.Kind.Allows(kind) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
