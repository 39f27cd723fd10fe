package domain

// CategoryKind classifies which transaction kinds a category applies to.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
	CategoryBoth    CategoryKind = "both"
)

// Allows reports whether a transaction of kind k may be filed under a
// category of this kind. "both" categories accept either.
func (c CategoryKind) Allows(k TransactionKind) bool {
	return c == CategoryBoth || string(c) == string(k)
}

// Category is a fixed classification bucket for transactions. Categories are
// seeded at startup, never mutated, and never persisted beyond the seed.
type Category struct {
	ID   int64        `json:"id"`
	Name string       `json:"name"`
	Kind CategoryKind `json:"kind"`
}

// SeedCategories returns the fixed category set. Transactions carry a copy of
// the category name, so the seed order and names are part of the data
// contract.
func SeedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Salary", Kind: CategoryIncome},
		{ID: 2, Name: "Freelance", Kind: CategoryIncome},
		{ID: 3, Name: "Investment", Kind: CategoryIncome},
		{ID: 4, Name: "Gift", Kind: CategoryIncome},
		{ID: 5, Name: "Food", Kind: CategoryExpense},
		{ID: 6, Name: "Rent", Kind: CategoryExpense},
		{ID: 7, Name: "Transport", Kind: CategoryExpense},
		{ID: 8, Name: "Entertainment", Kind: CategoryExpense},
		{ID: 9, Name: "Healthcare", Kind: CategoryExpense},
		{ID: 10, Name: "Education", Kind: CategoryExpense},
		{ID: 11, Name: "Shopping", Kind: CategoryExpense},
		{ID: 12, Name: "Other", Kind: CategoryBoth},
	}
}
