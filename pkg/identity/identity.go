// Package identity defines the boundary to the hosted identity provider.
package identity

import (
	"context"
	"errors"
	"fmt"
)

// Code is a provider error code. The gateway consumes the six enumerated
// codes; anything else maps to a generic message.
type Code string

const (
	CodeEmailInUse      Code = "email-already-in-use"
	CodeInvalidEmail    Code = "invalid-email"
	CodeWeakPassword    Code = "weak-password"
	CodeUserNotFound    Code = "user-not-found"
	CodeWrongPassword   Code = "wrong-password"
	CodeTooManyRequests Code = "too-many-requests"
	CodeUnknown         Code = "unknown"
)

// Error carries the provider code alongside its technical message. The
// message is for diagnostics only and is never shown to users.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("identity: %s: %s", e.Code, e.Message)
}

// NewError builds a coded provider error.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the provider code from err, or CodeUnknown.
func CodeOf(err error) Code {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeUnknown
}

// Identity is the opaque result of a successful sign-up or sign-in. ID
// becomes the session pointer value and the key for the user document.
type Identity struct {
	ID    string
	Email string
}

// Provider wraps the hosted identity service.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignOut(ctx context.Context) error
}
