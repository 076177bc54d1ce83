package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/storefront/modules/auth"
)

func newAccounts() (*auth.Accounts, *auth.MemoryAccountStore) {
	store := auth.NewMemoryAccountStore()
	return auth.NewAccounts(store, auth.WithBcryptCost(bcrypt.MinCost)), store
}

func TestAccountsSignUpAndLogin(t *testing.T) {
	t.Parallel()

	accounts, store := newAccounts()
	ctx := context.Background()

	require.NoError(t, accounts.SignUp(ctx, auth.Registration{Name: "Jo Smith", Contact: "Jo@Example.com", Password: "Passw0rd"}))

	acc, hash, err := store.AccountByContact(ctx, "jo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jo Smith", acc.Name)
	assert.NotEqual(t, "Passw0rd", string(hash))

	assert.NoError(t, accounts.Login(ctx, auth.Credentials{Contact: "jo@example.com", Password: "Passw0rd"}))
	assert.ErrorIs(t, accounts.Login(ctx, auth.Credentials{Contact: "jo@example.com", Password: "Passw0rd1"}), auth.ErrInvalidCredentials)
	assert.ErrorIs(t, accounts.Login(ctx, auth.Credentials{Contact: "nobody@example.com", Password: "Passw0rd"}), auth.ErrInvalidCredentials)
}

func TestAccountsSignUpRejectsDuplicateContact(t *testing.T) {
	t.Parallel()

	accounts, _ := newAccounts()
	ctx := context.Background()

	require.NoError(t, accounts.SignUp(ctx, auth.Registration{Name: "Jo Smith", Contact: "+880 1712-345678", Password: "Passw0rd"}))
	err := accounts.SignUp(ctx, auth.Registration{Name: "Jo Other", Contact: "+8801712345678", Password: "Passw0rd"})
	assert.ErrorIs(t, err, auth.ErrAlreadyRegistered)

	assert.NoError(t, accounts.Login(ctx, auth.Credentials{Contact: "+8801712345678", Password: "Passw0rd"}))
}

func TestAccountsKeepDistinctLocalParts(t *testing.T) {
	t.Parallel()

	accounts, _ := newAccounts()
	ctx := context.Background()

	require.NoError(t, accounts.SignUp(ctx, auth.Registration{Name: "Ann Bee", Contact: "a.b@example.com", Password: "Passw0rd"}))
	for _, contact := range []string{"a..b@example.com", "ab@example.com", ".a.b@example.com"} {
		assert.NoError(t, accounts.SignUp(ctx, auth.Registration{Name: "Ann Bee", Contact: contact, Password: "Passw0rd"}), contact)
	}
	assert.ErrorIs(t, accounts.SignUp(ctx, auth.Registration{Name: "Ann Bee", Contact: " A.B@Example.com ", Password: "Passw0rd"}), auth.ErrAlreadyRegistered)

	assert.ErrorIs(t, accounts.Login(ctx, auth.Credentials{Contact: "a...b@example.com", Password: "Passw0rd"}), auth.ErrInvalidCredentials)
}

type brokenStore struct{}

func (brokenStore) CreateAccount(context.Context, auth.Account, []byte) error {
	return errors.New("disk full")
}

func (brokenStore) AccountByContact(context.Context, string) (auth.Account, []byte, error) {
	return auth.Account{}, nil, errors.New("connection refused")
}

func TestAccountsStoreFailure(t *testing.T) {
	t.Parallel()

	accounts := auth.NewAccounts(brokenStore{}, auth.WithBcryptCost(bcrypt.MinCost))
	ctx := context.Background()

	err := accounts.SignUp(ctx, auth.Registration{Contact: "jo@example.com", Password: "Passw0rd"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrAlreadyRegistered)

	err = accounts.Login(ctx, auth.Credentials{Contact: "jo@example.com", Password: "Passw0rd"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
