package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps accounts in a map. Used by tests and anywhere a throwaway
// store is enough.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts Accounts
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(Accounts),
	}
}

func (s *MemoryStore) Get(ctx context.Context, username string) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[username]
	if !ok {
		return Account{}, ErrNotFound
	}
	return acc, nil
}

func (s *MemoryStore) Set(ctx context.Context, username string, account Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[username] = account
	return nil
}

// Create stores the account only if the username is free, returning ErrExists
// otherwise.
func (s *MemoryStore) Create(ctx context.Context, username string, account Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; ok {
		return ErrExists
	}
	s.accounts[username] = account
	return nil
}

// Merge adds the accounts whose usernames are free and returns them sorted.
// Existing accounts are left as they are.
func (s *MemoryStore) Merge(ctx context.Context, accounts Accounts) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.accounts.merge(accounts), nil
}

func (s *MemoryStore) Delete(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; !ok {
		return ErrNotFound
	}
	delete(s.accounts, username)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) (Accounts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.accounts.clone(), nil
}
