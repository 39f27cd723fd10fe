// Package store holds the in-memory ledger collections and mirrors them to a
// key/value store after every mutation. It implements all repository ports;
// the services above it never touch the KV layer directly.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// Slot keys in the KV store. Each slot is an independently serialized JSON
// blob: users, transactions, and goals are arrays, session is a single user
// record (absent when logged out).
const (
	slotUsers        = "finance:users"
	slotTransactions = "finance:transactions"
	slotGoals        = "finance:goals"
	slotSession      = "finance:session"
)

// Ledger owns the in-memory collections plus the session slot. A mutex
// serializes all operations: the original host environment ran everything on
// one event loop, and the one-in-flight-operation semantics are kept here
// even though HTTP serving is concurrent. Every mutation persists the
// affected slot before committing to memory, so a failed write leaves the
// in-memory state untouched.
type Ledger struct {
	mu sync.Mutex
	kv ports.KVStore

	users        []domain.User
	transactions []domain.Transaction
	goals        []domain.Goal
	categories   []domain.Category
	session      *domain.User

	lastID int64
	now    func() time.Time
	log    zerolog.Logger
}

// Open loads all slots from the KV store and returns a ready Ledger. Missing
// slots are treated as empty collections; the category set is seeded fresh on
// every start and never read from the store.
func Open(ctx context.Context, kv ports.KVStore, log zerolog.Logger) (*Ledger, error) {
	l := &Ledger{
		kv:         kv,
		categories: domain.SeedCategories(),
		now:        time.Now,
		log:        log,
	}
	if err := l.load(ctx); err != nil {
		return nil, err
	}

	log.Info().
		Int("users", len(l.users)).
		Int("transactions", len(l.transactions)).
		Int("goals", len(l.goals)).
		Bool("session", l.session != nil).
		Msg("ledger loaded")

	return l, nil
}

func (l *Ledger) load(ctx context.Context) error {
	if err := l.loadSlot(ctx, slotUsers, &l.users); err != nil {
		return err
	}
	if err := l.loadSlot(ctx, slotTransactions, &l.transactions); err != nil {
		return err
	}
	if err := l.loadSlot(ctx, slotGoals, &l.goals); err != nil {
		return err
	}

	raw, err := l.kv.Get(ctx, slotSession)
	switch {
	case errors.Is(err, ports.ErrKeyNotFound):
		// logged out
	case err != nil:
		return fmt.Errorf("load %s: %w", slotSession, err)
	default:
		var user domain.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return fmt.Errorf("decode %s: %w", slotSession, err)
		}
		l.session = &user
	}

	for _, u := range l.users {
		l.trackID(u.ID)
	}
	for _, t := range l.transactions {
		l.trackID(t.ID)
	}
	for _, g := range l.goals {
		l.trackID(g.ID)
	}

	return nil
}

func (l *Ledger) loadSlot(ctx context.Context, key string, dst any) error {
	raw, err := l.kv.Get(ctx, key)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (l *Ledger) persistSlot(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := l.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func (l *Ledger) trackID(id int64) {
	if id > l.lastID {
		l.lastID = id
	}
}

// nextID returns the Unix-millisecond creation timestamp, bumped past the
// last issued id so two creations in the same millisecond stay distinct and
// insertion order remains recoverable.
func (l *Ledger) nextID() int64 {
	id := l.now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// --- UserRepository ---

func (l *Ledger) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, u := range l.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	record := *user
	record.ID = l.nextID()

	users := append(append([]domain.User(nil), l.users...), record)
	if err := l.persistSlot(ctx, slotUsers, users); err != nil {
		return nil, err
	}
	l.users = users

	created := record
	return &created, nil
}

func (l *Ledger) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, u := range l.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// --- SessionRepository ---

func (l *Ledger) SaveSession(ctx context.Context, user *domain.User) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.persistSlot(ctx, slotSession, user); err != nil {
		return err
	}
	session := *user
	l.session = &session
	return nil
}

func (l *Ledger) ClearSession(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.kv.Delete(ctx, slotSession); err != nil && !errors.Is(err, ports.ErrKeyNotFound) {
		return fmt.Errorf("clear %s: %w", slotSession, err)
	}
	l.session = nil
	return nil
}

func (l *Ledger) CurrentSession(_ context.Context) (*domain.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.session == nil {
		return nil, nil
	}
	session := *l.session
	return &session, nil
}

// --- TransactionRepository ---

func (l *Ledger) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record := *tx
	record.ID = l.nextID()

	transactions := append(append([]domain.Transaction(nil), l.transactions...), record)
	if err := l.persistSlot(ctx, slotTransactions, transactions); err != nil {
		return nil, err
	}
	l.transactions = transactions

	created := record
	return &created, nil
}

func (l *Ledger) TransactionsByUser(_ context.Context, userID int64) ([]domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := make([]domain.Transaction, 0)
	for _, tx := range l.transactions {
		if tx.UserID == userID {
			list = append(list, tx)
		}
	}
	return list, nil
}

// --- GoalRepository ---

func (l *Ledger) CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record := *goal
	record.ID = l.nextID()

	goals := append(append([]domain.Goal(nil), l.goals...), record)
	if err := l.persistSlot(ctx, slotGoals, goals); err != nil {
		return nil, err
	}
	l.goals = goals

	created := record
	return &created, nil
}

func (l *Ledger) GoalsByUser(_ context.Context, userID int64) ([]domain.Goal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := make([]domain.Goal, 0)
	for _, g := range l.goals {
		if g.UserID == userID {
			list = append(list, g)
		}
	}
	return list, nil
}

// --- CategoryRepository ---

func (l *Ledger) Categories(_ context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), l.categories...), nil
}

func (l *Ledger) CategoryByID(_ context.Context, id int64) (*domain.Category, error) {
	for _, c := range l.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, domain.ErrMissingField
}
