// Package store define los errores comunes que devuelven los adapters de storage.
package store

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
