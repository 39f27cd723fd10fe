package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// UserRepository persists account records. CreateUser assigns the ID and
// enforces email uniqueness.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SessionRepository mirrors the single current-user slot. CurrentSession
// returns (nil, nil) when nobody is logged in.
type SessionRepository interface {
	SaveSession(ctx context.Context, user *domain.User) error
	ClearSession(ctx context.Context) error
	CurrentSession(ctx context.Context) (*domain.User, error)
}

// TransactionRepository appends and lists transaction records. The collection
// is append-only; there is no update or delete.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	// TransactionsByUser returns the user's transactions in insertion order.
	TransactionsByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

// GoalRepository appends and lists savings goals. Append-only as well.
type GoalRepository interface {
	CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	GoalsByUser(ctx context.Context, userID int64) ([]domain.Goal, error)
}

// CategoryRepository exposes the fixed seeded category set.
type CategoryRepository interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryByID(ctx context.Context, id int64) (*domain.Category, error)
}
