package handler

import (
	"context"
	"net/http"

	"mockedapi/internal/core"
	"mockedapi/internal/storage"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	CreateAccount(ctx context.Context, msg core.NewAccount) error
	UpdateAccount(ctx context.Context, username string, patch core.AccountPatch) error
	DeleteAccount(ctx context.Context, username string) error
	GetAccount(ctx context.Context, username string) (storage.Account, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, jsonPayload any) error
}
