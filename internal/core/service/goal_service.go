package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// GoalService implements savings-goal creation and listing.
type GoalService struct {
	goals ports.GoalRepository
	log   zerolog.Logger
}

func NewGoalService(goals ports.GoalRepository, log zerolog.Logger) *GoalService {
	return &GoalService{goals: goals, log: log}
}

// AddGoal appends a goal with progress starting at zero. A zero target fails
// the same presence check as a missing one (preserved quirk), which also
// keeps Goal.ProgressPercent away from its unguarded division by zero for
// anything created through this path.
func (s *GoalService) AddGoal(ctx context.Context, in ports.AddGoalInput) (*domain.Goal, error) {
	if in.UserID == 0 || in.Name == "" || in.Target.IsZero() {
		return nil, domain.ErrMissingField
	}

	created, err := s.goals.CreateGoal(ctx, &domain.Goal{
		UserID: in.UserID,
		Name:   in.Name,
		Target: in.Target,
	})
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", in.UserID).Msg("failed to create goal")
		return nil, err
	}

	s.log.Info().Int64("goal_id", created.ID).Int64("user_id", created.UserID).Str("name", created.Name).Msg("goal created")

	return created, nil
}

// ListGoals returns the user's goals in insertion order.
func (s *GoalService) ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error) {
	return s.goals.GoalsByUser(ctx, userID)
}
