package client

import (
	"context"

	"github.com/dmitrijs2005/gophsession/internal/client/models"
)

// Authenticator verifies credentials and returns the resulting user.
//
// Inputs are already validated and normalized by the caller (trimmed name,
// trimmed lower-case email). Implementations must honor ctx cancellation.
// A nil error comes with a non-nil user.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
}
