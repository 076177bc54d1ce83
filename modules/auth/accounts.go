package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

// Account is a registered customer.
type Account struct {
	ID        uuid.UUID
	Name      string
	Contact   string
	CreatedAt time.Time
}

// AccountStore persists accounts and their password hashes.
// AccountByContact returns ErrAccountNotFound for unknown contacts.
type AccountStore interface {
	CreateAccount(ctx context.Context, acc Account, passwordHash []byte) error
	AccountByContact(ctx context.Context, contact string) (Account, []byte, error)
}

// Accounts is a Submitter backed by an AccountStore. Passwords are stored as
// bcrypt hashes.
type Accounts struct {
	store AccountStore
	cost  int
	now   func() time.Time
}

type AccountsOption func(*Accounts)

func WithBcryptCost(cost int) AccountsOption {
	return func(a *Accounts) {
		a.cost = cost
	}
}

func WithAccountsClock(now func() time.Time) AccountsOption {
	return func(a *Accounts) {
		if now != nil {
			a.now = now
		}
	}
}

func NewAccounts(store AccountStore, opts ...AccountsOption) *Accounts {
	a := &Accounts{
		store: store,
		cost:  bcrypt.DefaultCost,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SignUp registers a new account. It returns ErrAlreadyRegistered when the
// contact is taken.
func (a *Accounts) SignUp(ctx context.Context, r Registration) error {
	contact := normalizeContact(r.Contact)

	_, _, err := a.store.AccountByContact(ctx, contact)
	if err == nil {
		return ErrAlreadyRegistered
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), a.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	acc := Account{
		ID:        uuid.New(),
		Name:      r.Name,
		Contact:   contact,
		CreatedAt: a.now(),
	}
	if err := a.store.CreateAccount(ctx, acc, hash); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Login checks the credentials. Any mismatch, including an unknown contact,
// is reported as ErrInvalidCredentials.
func (a *Accounts) Login(ctx context.Context, c Credentials) error {
	_, hash, err := a.store.AccountByContact(ctx, normalizeContact(c.Contact))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to load account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(c.Password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// normalizeContact makes "User@Example.com" and "user@example.com", or
// "+880 1712-345678" and "+8801712345678", the same account. The local part
// is otherwise kept as typed: "a.b@x.com" and "a..b@x.com" are different
// accounts.
func normalizeContact(contact string) string {
	if strings.Contains(contact, "@") {
		return sanitizer.TrimToLower(contact)
	}
	return sanitizer.NormalizePhone(contact)
}

type storedAccount struct {
	account Account
	hash    []byte
}

// MemoryAccountStore keeps accounts in process memory.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]storedAccount
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accounts: make(map[string]storedAccount)}
}

func (s *MemoryAccountStore) CreateAccount(_ context.Context, acc Account, passwordHash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[acc.Contact]; ok {
		return ErrAlreadyRegistered
	}
	s.accounts[acc.Contact] = storedAccount{account: acc, hash: append([]byte(nil), passwordHash...)}
	return nil
}

func (s *MemoryAccountStore) AccountByContact(_ context.Context, contact string) (Account, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.accounts[contact]
	if !ok {
		return Account{}, nil, ErrAccountNotFound
	}
	return stored.account, stored.hash, nil
}
