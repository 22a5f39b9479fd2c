package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Wrapped with context at each call site.
var ErrNotFound = errors.New("not found")

// ErrSnapshotCorrupt is returned when a stored snapshot cannot be decoded.
// Sessions recover from it by falling back to catalog defaults.
var ErrSnapshotCorrupt = errors.New("snapshot corrupt")
