package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/core/domain"
)

type stubUserRepo struct {
	users  []*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1000}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	record := cloneUser(user)
	r.nextID++
	record.ID = r.nextID
	r.users = append(r.users, cloneUser(record))
	return record, nil
}

func (r *stubUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubSessionRepo struct {
	current *domain.User
	saves   int
	clears  int
}

func (r *stubSessionRepo) SaveSession(_ context.Context, user *domain.User) error {
	r.current = cloneUser(user)
	r.saves++
	return nil
}

func (r *stubSessionRepo) ClearSession(_ context.Context) error {
	r.current = nil
	r.clears++
	return nil
}

func (r *stubSessionRepo) CurrentSession(_ context.Context) (*domain.User, error) {
	return cloneUser(r.current), nil
}

func newAuthService(users *stubUserRepo, sessions *stubSessionRepo) *AuthService {
	return NewAuthService(users, sessions, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	sessions := &stubSessionRepo{}
	svc := newAuthService(users, sessions)

	result, err := svc.Register(context.Background(), "Alice", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.User == nil || result.User.ID == 0 {
		t.Fatalf("expected user with id, got %+v", result.User)
	}
	if result.User.Password != "p1" {
		t.Fatalf("password must be stored as entered, got %q", result.User.Password)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if sessions.current == nil || sessions.current.Email != "a@x.com" {
		t.Fatalf("registration must sign the user in, session: %+v", sessions.current)
	}
}

func TestAuthService_Register_MissingField(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, &stubSessionRepo{})

	cases := [][3]string{
		{"", "a@x.com", "p1"},
		{"Alice", "", "p1"},
		{"Alice", "a@x.com", ""},
	}
	for _, c := range cases {
		if _, err := svc.Register(context.Background(), c[0], c[1], c[2]); err != domain.ErrMissingField {
			t.Fatalf("expected ErrMissingField for %v, got %v", c, err)
		}
	}
	if len(users.users) != 0 {
		t.Fatalf("user collection must be unchanged, got %d users", len(users.users))
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, &stubSessionRepo{})

	if _, err := svc.Register(context.Background(), "Alice", "a@x.com", "p1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Alice Again", "a@x.com", "p2"); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("user collection must be unchanged after duplicate, got %d users", len(users.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	sessions := &stubSessionRepo{}
	svc := newAuthService(users, sessions)

	if _, err := svc.Register(context.Background(), "Alice", "a@x.com", "p1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_ = sessions.ClearSession(context.Background())

	result, err := svc.Login(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.User == nil || result.User.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", result.User)
	}
	if sessions.current == nil {
		t.Fatalf("login must set the session")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["name"] != "Alice" {
		t.Fatalf("expected name claim Alice, got %v", claims["name"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	sessions := &stubSessionRepo{}
	svc := newAuthService(users, sessions)

	if _, err := svc.Register(context.Background(), "Alice", "a@x.com", "p1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_ = sessions.ClearSession(context.Background())
	usersBefore := len(users.users)

	if _, err := svc.Login(context.Background(), "a@x.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessions.current != nil {
		t.Fatalf("failed login must not set a session")
	}
	if len(users.users) != usersBefore {
		t.Fatalf("user collection must be unchanged")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubSessionRepo{})

	if _, err := svc.Login(context.Background(), "ghost@x.com", "p1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	sessions := &stubSessionRepo{}
	svc := newAuthService(newStubUserRepo(), sessions)

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout while logged out must succeed: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("second logout must succeed: %v", err)
	}
	if sessions.clears != 2 {
		t.Fatalf("expected 2 clears, got %d", sessions.clears)
	}
}

func TestAuthService_RestoreSession(t *testing.T) {
	users := newStubUserRepo()
	sessions := &stubSessionRepo{}
	svc := newAuthService(users, sessions)

	user, err := svc.RestoreSession(context.Background())
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if user != nil {
		t.Fatalf("expected no session, got %+v", user)
	}

	if _, err := svc.Register(context.Background(), "Alice", "a@x.com", "p1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err = svc.RestoreSession(context.Background())
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if user == nil || user.Email != "a@x.com" {
		t.Fatalf("expected restored session for a@x.com, got %+v", user)
	}
}
