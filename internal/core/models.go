package core

import (
	"encoding/json"

	"mockedapi/internal/storage"
)

// NewAccount is everything needed to create an account.
type NewAccount struct {
	Username string
	Account  storage.Account
}

// AccountPatch holds the fields of an update. Nil fields are left untouched.
type AccountPatch struct {
	Name            *string
	Password        *string
	FavouriteFruit  *string
	FavouriteMovie  *string
	FavouriteNumber *json.Number
}

func (p AccountPatch) applyTo(acc storage.Account) storage.Account {
	if p.Name != nil {
		acc.Name = p.Name
	}
	if p.Password != nil {
		acc.Password = p.Password
	}
	if p.FavouriteFruit != nil {
		acc.FavouriteFruit = p.FavouriteFruit
	}
	if p.FavouriteMovie != nil {
		acc.FavouriteMovie = p.FavouriteMovie
	}
	if p.FavouriteNumber != nil {
		acc.FavouriteNumber = *p.FavouriteNumber
	}
	return acc
}
