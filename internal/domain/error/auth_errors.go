// Package error defines domain-specific errors for the Finance Pal application.
package error

import "errors"

// Scope resolution errors.
var (
	// ErrInvalidToken is returned when a bearer token cannot be validated.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a bearer token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrGuestModeDisabled is returned when a request has no credentials and guest mode is off.
	ErrGuestModeDisabled = errors.New("guest mode is disabled")

	// ErrGuestNotLocal is returned when a request without credentials comes from another machine.
	ErrGuestNotLocal = errors.New("guest data is only available on this device")
)

// AuthErrorCode defines error codes for scope resolution errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Rate limiting (02XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"

	// Guest errors (06XXXX)
	ErrCodeGuestModeDisabled AuthErrorCode = "AUTH-060001"
	ErrCodeGuestNotLocal     AuthErrorCode = "AUTH-060002"
)
