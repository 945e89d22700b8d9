// Package error defines domain-specific errors for the Finance Pal application.
package error

import "errors"

// ErrAmountTooPrecise is returned when an amount has digits past the cent.
var ErrAmountTooPrecise = errors.New("amount must have at most 2 decimal places")
