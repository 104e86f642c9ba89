package storage

import "errors"

var ErrNotFound = errors.New("account not found")
var ErrExists = errors.New("account already exists")
