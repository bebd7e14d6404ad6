package store

import "errors"

// ErrNotFound is returned when a record or object is absent from a store.
var ErrNotFound = errors.New("not found")
