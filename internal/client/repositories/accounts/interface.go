package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophsession/internal/client/models"
)

// Repository stores local accounts keyed by email.
type Repository interface {
	// Create inserts a new account. It returns common.ErrorAlreadyExists
	// if the email is taken.
	Create(ctx context.Context, account *models.Account) error

	// GetByEmail returns common.ErrorNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
