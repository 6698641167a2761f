package core

import (
	"errors"
	"fmt"
)

// ErrNotLoggedIn reports that a command needing an authenticated session
// found neither explicit credentials nor a stored session. The message
// tells the user how to recover.
var ErrNotLoggedIn = errors.New(
	"not logged in. Run: fubon login --id <ID> --password <PW> --cert-path <PATH> [--cert-password <PW>]")

// AuthError reports that the brokerage rejected the credentials, stored or
// explicit. Message is the SDK's own text, not rewritten.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "login failed: " + e.Message
}

// ValidationError reports caller-supplied arguments that fail shape checks
// before any SDK call is attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a *ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
