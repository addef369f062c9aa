// Package repository defines the store interfaces and the sentinel errors
// used for stable error mapping across layers.
package repository

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness violation (e.g. duplicate email).
	ErrAlreadyExists = errors.New("already exists")

	// ErrStorage indicates the key-value persistence layer failed; the
	// triggering mutation has been rolled back and may be retried.
	ErrStorage = errors.New("storage failure")
)
