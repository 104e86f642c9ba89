package storage

import (
	"encoding/json"
	"sort"
)

// Account is the record stored under a username. The username itself is the
// key of the store and never part of the value.
//
// Fields are pointers so that a value sent as "" is kept while a field that was
// never sent stays out of the document.
type Account struct {
	Name            *string     `json:"name,omitempty" yaml:"name,omitempty"`
	Password        *string     `json:"password,omitempty" yaml:"password,omitempty"`
	FavouriteFruit  *string     `json:"favouriteFruit,omitempty" yaml:"favouriteFruit,omitempty"`
	FavouriteMovie  *string     `json:"favouriteMovie,omitempty" yaml:"favouriteMovie,omitempty"`
	FavouriteNumber json.Number `json:"favouriteNumber,omitempty" yaml:"favouriteNumber,omitempty"`
}

// Accounts maps usernames to their records. It is the whole persisted document.
type Accounts map[string]Account

func (a Accounts) clone() Accounts {
	out := make(Accounts, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// merge adds every account of src whose username is not in a yet and returns
// the added usernames in sorted order.
func (a Accounts) merge(src Accounts) []string {
	added := make([]string, 0, len(src))
	for username, acc := range src {
		if _, ok := a[username]; ok {
			continue
		}
		a[username] = acc
		added = append(added, username)
	}
	sort.Strings(added)
	return added
}
