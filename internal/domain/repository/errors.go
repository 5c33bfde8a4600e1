package repository

import "errors"

var (
	// ErrNotFound is returned when a record cannot be found, or when a
	// conditional write matched nothing.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write would violate a uniqueness
	// constraint, e.g. a second subscription edge for the same pair.
	ErrDuplicate = errors.New("record already exists")

	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
)
