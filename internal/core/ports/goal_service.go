package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// AddGoalInput carries the data needed to create a savings goal.
type AddGoalInput struct {
	UserID int64
	Name   string
	Target decimal.Decimal
}

// GoalService defines savings-goal operations.
type GoalService interface {
	AddGoal(ctx context.Context, input AddGoalInput) (*domain.Goal, error)
	// ListGoals returns the user's goals in insertion order.
	ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error)
}
