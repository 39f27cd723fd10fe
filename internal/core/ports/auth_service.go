package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// AuthResult is returned by Register and Login. The token is transport
// plumbing for the HTTP layer; the authoritative session is the persisted
// session slot.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService covers registration, login, logout, and session restore.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Logout clears the session slot; calling it while logged out is a no-op.
	Logout(ctx context.Context) error
	// RestoreSession returns the persisted session user without re-validating
	// credentials, or nil when logged out.
	RestoreSession(ctx context.Context) (*domain.User, error)
}
