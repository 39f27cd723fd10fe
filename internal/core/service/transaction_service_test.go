package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

type stubTransactionRepo struct {
	transactions []domain.Transaction
	nextID       int64
}

func (r *stubTransactionRepo) CreateTransaction(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	record := *tx
	r.nextID++
	record.ID = r.nextID
	r.transactions = append(r.transactions, record)
	created := record
	return &created, nil
}

func (r *stubTransactionRepo) TransactionsByUser(_ context.Context, userID int64) ([]domain.Transaction, error) {
	list := make([]domain.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			list = append(list, tx)
		}
	}
	return list, nil
}

type stubCategoryRepo struct {
	categories []domain.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: domain.SeedCategories()}
}

func (r *stubCategoryRepo) Categories(_ context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), r.categories...), nil
}

func (r *stubCategoryRepo) CategoryByID(_ context.Context, id int64) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, domain.ErrMissingField
}

func newTransactionService(repo *stubTransactionRepo) *TransactionService {
	return NewTransactionService(repo, newStubCategoryRepo(), zerolog.Nop())
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func addTx(t *testing.T, svc *TransactionService, userID int64, kind domain.TransactionKind, categoryID int64, amount float64, description, day string) *domain.Transaction {
	t.Helper()
	tx, err := svc.AddTransaction(context.Background(), ports.AddTransactionInput{
		UserID:      userID,
		Kind:        kind,
		CategoryID:  categoryID,
		Amount:      decimal.NewFromFloat(amount),
		Description: description,
		Date:        date(day),
	})
	if err != nil {
		t.Fatalf("AddTransaction(%s) failed: %v", description, err)
	}
	return tx
}

func TestTransactionService_AddTransaction_DenormalizesCategory(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := newTransactionService(repo)

	tx := addTx(t, svc, 1, domain.KindIncome, 1, 1000, "January salary", "2024-01-01")

	if tx.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if tx.Category != "Salary" {
		t.Fatalf("expected category name Salary, got %q", tx.Category)
	}
	if len(repo.transactions) != 1 {
		t.Fatalf("expected 1 stored transaction, got %d", len(repo.transactions))
	}
}

func TestTransactionService_AddTransaction_Rejections(t *testing.T) {
	svc := newTransactionService(&stubTransactionRepo{})

	valid := ports.AddTransactionInput{
		UserID:      1,
		Kind:        domain.KindExpense,
		CategoryID:  6,
		Amount:      decimal.NewFromInt(400),
		Description: "Rent",
		Date:        date("2024-01-02"),
	}

	cases := []struct {
		name   string
		mutate func(*ports.AddTransactionInput)
	}{
		{"zero amount", func(in *ports.AddTransactionInput) { in.Amount = decimal.Zero }},
		{"unknown category", func(in *ports.AddTransactionInput) { in.CategoryID = 999 }},
		{"empty description", func(in *ports.AddTransactionInput) { in.Description = "" }},
		{"zero date", func(in *ports.AddTransactionInput) { in.Date = time.Time{} }},
		{"no user", func(in *ports.AddTransactionInput) { in.UserID = 0 }},
		{"invalid kind", func(in *ports.AddTransactionInput) { in.Kind = "transfer" }},
	}
	for _, tc := range cases {
		in := valid
		tc.mutate(&in)
		if _, err := svc.AddTransaction(context.Background(), in); err != domain.ErrMissingField {
			t.Fatalf("%s: expected ErrMissingField, got %v", tc.name, err)
		}
	}
}

func TestTransactionService_ListTransactions_NewestFirstStable(t *testing.T) {
	svc := newTransactionService(&stubTransactionRepo{})

	addTx(t, svc, 1, domain.KindExpense, 5, 20, "groceries", "2024-01-05")
	addTx(t, svc, 1, domain.KindExpense, 7, 10, "bus pass", "2024-01-10")
	addTx(t, svc, 1, domain.KindExpense, 5, 30, "more groceries", "2024-01-05")

	list, err := svc.ListTransactions(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(list))
	}
	got := []string{list[0].Description, list[1].Description, list[2].Description}
	want := []string{"bus pass", "groceries", "more groceries"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q (full order %v)", i, want[i], got[i], got)
		}
	}
}

func TestTransactionService_Summarize(t *testing.T) {
	svc := newTransactionService(&stubTransactionRepo{})

	addTx(t, svc, 1, domain.KindIncome, 1, 1000, "January salary", "2024-01-01")
	addTx(t, svc, 1, domain.KindExpense, 6, 400, "Rent", "2024-01-02")

	summary, err := svc.Summarize(context.Background(), 1)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if got := summary.Income.StringFixed(2); got != "1000.00" {
		t.Fatalf("income: expected 1000.00, got %s", got)
	}
	if got := summary.Expense.StringFixed(2); got != "400.00" {
		t.Fatalf("expense: expected 400.00, got %s", got)
	}
	if got := summary.Balance.StringFixed(2); got != "600.00" {
		t.Fatalf("balance: expected 600.00, got %s", got)
	}
}

func TestTransactionService_Summarize_EmptyLedger(t *testing.T) {
	svc := newTransactionService(&stubTransactionRepo{})

	summary, err := svc.Summarize(context.Background(), 1)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if !summary.Income.IsZero() || !summary.Expense.IsZero() || !summary.Balance.IsZero() {
		t.Fatalf("expected all-zero summary, got %+v", summary)
	}
}

func TestTransactionService_CategoryBreakdown(t *testing.T) {
	svc := newTransactionService(&stubTransactionRepo{})

	addTx(t, svc, 1, domain.KindExpense, 5, 20, "groceries", "2024-01-01")
	addTx(t, svc, 1, domain.KindExpense, 6, 400, "rent", "2024-01-02")
	addTx(t, svc, 1, domain.KindExpense, 5, 30, "more groceries", "2024-01-03")
	addTx(t, svc, 1, domain.KindIncome, 1, 1000, "salary", "2024-01-01")

	breakdown, err := svc.CategoryBreakdown(context.Background(), 1, domain.KindExpense)
	if err != nil {
		t.Fatalf("CategoryBreakdown failed: %v", err)
	}
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 categories, got %d: %+v", len(breakdown), breakdown)
	}
	if breakdown[0].Category != "Food" || breakdown[0].Amount.StringFixed(2) != "50.00" {
		t.Fatalf("expected Food 50.00 first, got %s %s", breakdown[0].Category, breakdown[0].Amount.StringFixed(2))
	}
	if breakdown[1].Category != "Rent" || breakdown[1].Amount.StringFixed(2) != "400.00" {
		t.Fatalf("expected Rent 400.00 second, got %s %s", breakdown[1].Category, breakdown[1].Amount.StringFixed(2))
	}
}

func TestTransactionService_NoCrossUserLeak(t *testing.T) {
	svc := newTransactionService(&stubTransactionRepo{})

	addTx(t, svc, 1, domain.KindIncome, 1, 1000, "alice salary", "2024-01-01")
	addTx(t, svc, 2, domain.KindIncome, 1, 2000, "bob salary", "2024-01-01")

	list, err := svc.ListTransactions(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(list) != 1 || list[0].Description != "alice salary" {
		t.Fatalf("expected only alice's transaction, got %+v", list)
	}

	summary, err := svc.Summarize(context.Background(), 2)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if got := summary.Income.StringFixed(2); got != "2000.00" {
		t.Fatalf("bob's income: expected 2000.00, got %s", got)
	}
}

func TestTransactionService_ListCategories(t *testing.T) {
	svc := newTransactionService(&stubTransactionRepo{})

	all, err := svc.ListCategories(context.Background(), "")
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("expected 12 categories, got %d", len(all))
	}

	income, err := svc.ListCategories(context.Background(), domain.KindIncome)
	if err != nil {
		t.Fatalf("ListCategories(income) failed: %v", err)
	}
	// 4 income categories plus Other ("both").
	if len(income) != 5 {
		t.Fatalf("expected 5 income categories, got %d: %+v", len(income), income)
	}
	for _, c := range income {
		if !c.Kind.Allows(domain.KindIncome) {
			t.Fatalf("category %q (%s) must not appear in income listing", c.Name, c.Kind)
		}
	}
	if income[len(income)-1].Name != "Other" {
		t.Fatalf("expected Other last, got %q", income[len(income)-1].Name)
	}

	expense, err := svc.ListCategories(context.Background(), domain.KindExpense)
	if err != nil {
		t.Fatalf("ListCategories(expense) failed: %v", err)
	}
	// 7 expense categories plus Other.
	if len(expense) != 8 {
		t.Fatalf("expected 8 expense categories, got %d", len(expense))
	}
}
