package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/client/models"
	"github.com/dmitrijs2005/gophsession/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/gophsession/internal/common"
	"github.com/dmitrijs2005/gophsession/internal/cryptox"
	"github.com/dmitrijs2005/gophsession/internal/dbx"
	"github.com/google/uuid"
)

// LocalConfig tunes the local backend's brute-force protection.
type LocalConfig struct {
	MaxFailedLogins int
	LockoutDuration time.Duration
}

// LocalAuthenticator keeps accounts in the local SQLite database. Passwords
// are never stored: each account holds a random salt and the verifier of
// the argon2id-derived key.
type LocalAuthenticator struct {
	db      *sql.DB
	now     func() time.Time
	lockout *lockout
}

func NewLocalAuthenticator(db *sql.DB, cfg LocalConfig) *LocalAuthenticator {
	a := &LocalAuthenticator{db: db, now: time.Now}
	a.lockout = newLockout(cfg.MaxFailedLogins, cfg.LockoutDuration, func() time.Time { return a.now() })
	return a
}

// Signup creates the account, failing with ErrAccountExists if the email
// is already registered.
func (a *LocalAuthenticator) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	pw := []byte(password)
	defer common.WipeByteArray(pw)

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	key := cryptox.DeriveMasterKey(pw, salt)
	defer common.WipeByteArray(key)

	account := &models.Account{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Salt:      salt,
		Verifier:  cryptox.MakeVerifier(key),
		CreatedAt: a.now(),
	}

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return accounts.NewSQLiteRepository(tx).Create(ctx, account)
	})
	if errors.Is(err, common.ErrorAlreadyExists) {
		return nil, ErrAccountExists
	}
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return &models.User{ID: account.ID, Name: account.Name, Email: account.Email}, nil
}

// Login checks the password against the stored verifier.
func (a *LocalAuthenticator) Login(ctx context.Context, email, password string) (*models.User, error) {
	if a.lockout.Locked(email) {
		return nil, ErrRateLimited
	}

	account, err := accounts.NewSQLiteRepository(a.db).GetByEmail(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		a.lockout.RecordFailure(email)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)
	key := cryptox.DeriveMasterKey(pw, account.Salt)
	defer common.WipeByteArray(key)

	if !cryptox.VerifierMatches(account.Verifier, cryptox.MakeVerifier(key)) {
		a.lockout.RecordFailure(email)
		return nil, ErrInvalidCredentials
	}

	a.lockout.Reset(email)
	return &models.User{ID: account.ID, Name: account.Name, Email: account.Email}, nil
}
