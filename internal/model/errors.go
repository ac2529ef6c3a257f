package model

import "errors"

// Common errors used across the application
var (
	// Catalog errors
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrAliasNotFound    = errors.New("exercise alias not found")
	ErrCatalogNotSeeded = errors.New("exercise catalog has not been seeded")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Input errors
	ErrInvalidAmount = errors.New("progress amount must be a positive integer")

	// ErrStoreUnavailable wraps storage-layer failures (connection refused,
	// operation timeout). Callers match it with errors.Is.
	ErrStoreUnavailable = errors.New("score store unavailable")
)
