package contract

import "errors"

// ErrNotFound is returned when a lookup by id matches no account.
var ErrNotFound = errors.New("account not found")
