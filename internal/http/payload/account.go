package payload

import (
	"encoding/json"

	"mockedapi/internal/core"
	"mockedapi/internal/storage"

	"github.com/jellydator/validation"
)

// CreateAccountRequest is the body of a new account. Optional fields left out
// of the body stay nil and are not stored.
type CreateAccountRequest struct {
	Username        string      `json:"username"`
	Name            *string     `json:"name"`
	Password        *string     `json:"password"`
	FavouriteFruit  *string     `json:"favouriteFruit"`
	FavouriteMovie  *string     `json:"favouriteMovie"`
	FavouriteNumber json.Number `json:"favouriteNumber"`
}

func (c CreateAccountRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

func (c CreateAccountRequest) ToCoreNewAccount() core.NewAccount {
	return core.NewAccount{
		Username: c.Username,
		Account: storage.Account{
			Name:            c.Name,
			Password:        c.Password,
			FavouriteFruit:  c.FavouriteFruit,
			FavouriteMovie:  c.FavouriteMovie,
			FavouriteNumber: c.FavouriteNumber,
		},
	}
}

// UpdateAccountRequest carries the username from the query string and the
// fields to change from the body.
type UpdateAccountRequest struct {
	Username        string       `json:"-"`
	Name            *string      `json:"name"`
	Password        *string      `json:"password"`
	FavouriteFruit  *string      `json:"favouriteFruit"`
	FavouriteMovie  *string      `json:"favouriteMovie"`
	FavouriteNumber *json.Number `json:"favouriteNumber"`
}

func (u UpdateAccountRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.Required),
	)
}

func (u UpdateAccountRequest) ToCoreAccountPatch() core.AccountPatch {
	return core.AccountPatch{
		Name:            u.Name,
		Password:        u.Password,
		FavouriteFruit:  u.FavouriteFruit,
		FavouriteMovie:  u.FavouriteMovie,
		FavouriteNumber: u.FavouriteNumber,
	}
}

// AccountQuery identifies an account through the username query parameter.
type AccountQuery struct {
	Username string
}

func (q AccountQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Username, validation.Required),
	)
}
