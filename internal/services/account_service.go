package services

import (
	"context"

	"pomoplanner.com/pomoplanner/internal/credentials"
	apperrors "pomoplanner.com/pomoplanner/internal/errors"
	model "pomoplanner.com/pomoplanner/internal/models"
)

// AccountStore is the persistence surface the account service needs.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	Create(ctx context.Context, email, passwordHash string) (*model.Account, error)
}

type AccountService struct {
	store AccountStore
}

func NewAccountService(store AccountStore) *AccountService {
	return &AccountService{store: store}
}

// Register creates an account with a freshly hashed password. The
// pre-insert existence check and the store's unique index both map to
// ErrDuplicateEmail, so a race between two registrations still ends
// with exactly one account.
func (s *AccountService) Register(ctx context.Context, email, password string) (*model.Account, error) {
	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := credentials.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.store.Create(ctx, email, hash)
}

// Login checks the credentials. Unknown email and wrong password are
// indistinguishable to the caller; the unknown-email path still pays
// one bcrypt compare.
func (s *AccountService) Login(ctx context.Context, email, password string) (*model.Account, error) {
	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		credentials.CheckPassword(password, credentials.DummyHash)
		return nil, apperrors.ErrInvalidCredentials
	}
	if !credentials.CheckPassword(password, account.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return account, nil
}
