package creds

import "errors"

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("creds: key not found")
