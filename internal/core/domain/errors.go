package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrSessionNotFound    = errors.New("session not found")
	ErrOrderNotFound      = errors.New("order not found")

	// ErrUnauthenticated is the single externally visible category for a
	// missing, unknown or expired token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUpstreamUnavailable means the validator could not be reached or
	// answered with something unparseable. Callers treat it as unauthenticated.
	ErrUpstreamUnavailable = errors.New("validator unavailable")

	ErrStorage = errors.New("storage failure")
)

// Reason-specific unauthenticated errors. Their messages are part of the
// validate endpoint's response contract.
var (
	ErrNoToken      = fmt.Errorf("%w: No token", ErrUnauthenticated)
	ErrInvalidToken = fmt.Errorf("%w: Invalid token", ErrUnauthenticated)
	ErrTokenExpired = fmt.Errorf("%w: Expired", ErrUnauthenticated)
)

// UnauthenticatedReason returns the public message for an unauthenticated
// error, e.g. "Expired".
func UnauthenticatedReason(err error) string {
	switch {
	case errors.Is(err, ErrNoToken):
		return "No token"
	case errors.Is(err, ErrTokenExpired):
		return "Expired"
	default:
		return "Invalid token"
	}
}
