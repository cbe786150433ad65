package account

import (
	"context"
	"errors"
	"strings"

	domain "peakdispatch/internal/domain/account"
)

// ErrNotFound is returned when no account matches the given email.
var ErrNotFound = errors.New("account not found")

// Store resolves accounts for login. The site has exactly one operator
// account, so the store is an injected fixed record rather than a user table.
type Store interface {
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
}

// FixedStore implements Store with a single configured account.
type FixedStore struct {
	account domain.Account
}

// NewFixedStore creates a FixedStore holding the given account.
// PRE: a has been validated and carries a password hash
func NewFixedStore(a domain.Account) *FixedStore {
	return &FixedStore{account: a}
}

// GetByEmail returns the fixed account when the email matches (case-insensitive).
// POST: Returns the account or ErrNotFound
func (s *FixedStore) GetByEmail(_ context.Context, email string) (domain.Account, error) {
	if !strings.EqualFold(email, s.account.Email) {
		return domain.Account{}, ErrNotFound
	}
	return s.account, nil
}
