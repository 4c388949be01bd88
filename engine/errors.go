package engine

import "errors"

var (
	// ErrNotFound reports a reference to an element id the catalog does not
	// hold. With validated configuration data this is a caller bug.
	ErrNotFound = errors.New("element not found")

	// ErrCapacity reports a spawn rejected because the pool is full.
	// Palette spawns are soft-capped; combination results evict instead.
	ErrCapacity = errors.New("pool at capacity")
)
