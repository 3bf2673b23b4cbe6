package client

import "errors"

// Domain errors reported by Authenticator implementations. Callers match
// them with errors.Is.
var (
	ErrUnavailable        = errors.New("auth backend unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrRateLimited        = errors.New("too many attempts")
)
