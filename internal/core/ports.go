package core

import (
	"context"

	"mockedapi/internal/storage"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	Get(ctx context.Context, username string) (storage.Account, error)
	Create(ctx context.Context, username string, account storage.Account) error
	Set(ctx context.Context, username string, account storage.Account) error
	Delete(ctx context.Context, username string) error
	Merge(ctx context.Context, accounts storage.Accounts) ([]string, error)
}
