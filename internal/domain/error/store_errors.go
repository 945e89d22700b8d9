// Package error defines domain-specific errors for the Finance Pal application.
package error

import "errors"

// Storage errors shared by every collection.
var (
	// ErrStoreUnavailable is returned when the backing store of a scope is not connected.
	ErrStoreUnavailable = errors.New("data store is unavailable")

	// ErrFeedUnavailable is returned when live updates cannot be delivered.
	ErrFeedUnavailable = errors.New("change feed is unavailable")
)

// StoreErrorCode defines error codes for storage errors.
type StoreErrorCode string

const (
	ErrCodeStoreUnavailable StoreErrorCode = "STR-990001"
	ErrCodeFeedUnavailable  StoreErrorCode = "STR-990002"
	ErrCodeResetFailed      StoreErrorCode = "STR-990003"
)
