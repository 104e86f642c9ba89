package core

import (
	"context"
	"errors"
	"fmt"

	"mockedapi/internal/storage"

	"go.uber.org/zap"
)

var ErrAccountExists error = errors.New("account already exists")
var ErrAccountNotFound error = errors.New("account does not exist")

// Accounts implements the account operations on top of a Repository.
type Accounts struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewAccounts is a constructor function for the Accounts type.
func NewAccounts(logger *zap.SugaredLogger, repo Repository) *Accounts {
	return &Accounts{
		logs: logger,
		repo: repo,
	}
}

// CreateAccount stores a new account. It returns ErrAccountExists and leaves the
// repository untouched when the username is already taken.
func (a *Accounts) CreateAccount(ctx context.Context, msg NewAccount) error {
	err := a.repo.Create(ctx, msg.Username, msg.Account)
	if err != nil {
		if errors.Is(err, storage.ErrExists) {
			return ErrAccountExists
		}
		return fmt.Errorf("save account: %w", err)
	}

	a.logs.Infow("account created", "username", msg.Username)
	return nil
}

// UpdateAccount merges the patch into an existing account. It returns
// ErrAccountNotFound when there is nothing to update.
func (a *Accounts) UpdateAccount(ctx context.Context, username string, patch AccountPatch) error {
	acc, err := a.repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account: %w", err)
	}

	if err := a.repo.Set(ctx, username, patch.applyTo(acc)); err != nil {
		return fmt.Errorf("save account: %w", err)
	}

	a.logs.Infow("account updated", "username", username)
	return nil
}

// DeleteAccount removes an account, returning ErrAccountNotFound if it is absent.
func (a *Accounts) DeleteAccount(ctx context.Context, username string) error {
	err := a.repo.Delete(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("delete account: %w", err)
	}

	a.logs.Infow("account deleted", "username", username)
	return nil
}

// GetAccount looks up a single account.
func (a *Accounts) GetAccount(ctx context.Context, username string) (storage.Account, error) {
	acc, err := a.repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Account{}, ErrAccountNotFound
		}
		return storage.Account{}, fmt.Errorf("get account: %w", err)
	}
	return acc, nil
}

// Seed inserts fixture accounts whose usernames are not taken yet and reports
// how many were added. Existing accounts are never overwritten, and either all
// of the free usernames are added or none are.
func (a *Accounts) Seed(ctx context.Context, accounts storage.Accounts) (int, error) {
	added, err := a.repo.Merge(ctx, accounts)
	if err != nil {
		return 0, fmt.Errorf("seed accounts: %w", err)
	}

	a.logs.Debugw("seed accounts merged", "usernames", added, "skipped", len(accounts)-len(added))
	return len(added), nil
}
