package cache

import "errors"

var (
	// ErrKeyNotFound is returned by a Store when no record exists for a key
	ErrKeyNotFound = errors.New("cache key not found")
	// ErrCorruptRecord is returned when a stored record cannot be decoded
	ErrCorruptRecord = errors.New("corrupt cache record")
)
