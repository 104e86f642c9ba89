package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists all accounts as a single JSON object keyed by username.
// Every call reads the whole document; every mutation rewrites it whole.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates the parent directory and an empty document if the file
// does not exist yet. An existing file is left untouched.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("storage file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	s := &FileStore{path: path}

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.write(Accounts{}); err != nil {
			return nil, fmt.Errorf("initialise storage file: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat storage file: %w", err)
	}

	return s, nil
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(ctx context.Context, username string) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.read()
	if err != nil {
		return Account{}, err
	}

	acc, ok := accounts[username]
	if !ok {
		return Account{}, ErrNotFound
	}
	return acc, nil
}

func (s *FileStore) Set(ctx context.Context, username string, account Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.read()
	if err != nil {
		return err
	}

	accounts[username] = account
	return s.write(accounts)
}

// Create stores the account only if the username is free, returning ErrExists
// otherwise. The check and the write happen under one lock.
func (s *FileStore) Create(ctx context.Context, username string, account Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.read()
	if err != nil {
		return err
	}

	if _, ok := accounts[username]; ok {
		return ErrExists
	}
	accounts[username] = account
	return s.write(accounts)
}

// Merge adds the accounts whose usernames are free and returns them sorted.
// The document is written once, and not at all when nothing was added.
func (s *FileStore) Merge(ctx context.Context, accounts Accounts) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		return nil, err
	}

	added := current.merge(accounts)
	if len(added) == 0 {
		return added, nil
	}
	if err := s.write(current); err != nil {
		return nil, err
	}
	return added, nil
}

func (s *FileStore) Delete(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.read()
	if err != nil {
		return err
	}

	if _, ok := accounts[username]; !ok {
		return ErrNotFound
	}
	delete(accounts, username)
	return s.write(accounts)
}

func (s *FileStore) List(ctx context.Context) (Accounts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *FileStore) read() (Accounts, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Accounts{}, nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	accounts := Accounts{}
	if len(bytes.TrimSpace(data)) == 0 {
		return accounts, nil
	}

	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode storage file %q: %w", s.path, err)
	}
	return accounts, nil
}

func (s *FileStore) write(accounts Accounts) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	return nil
}
