package storage

import "errors"

// ErrNotFound distinguishes "no such document" from a store failure: every
// lookup is tri-state (document, ErrNotFound, or any other error).
var ErrNotFound = errors.New("resource not found")
