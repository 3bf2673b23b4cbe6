package models

import "time"

// Account is a device-local credential record used by the local
// authentication backend. The password itself is never stored.
type Account struct {
	ID    string
	Email string
	Name  string

	// Salt is the per-account random salt for key derivation.
	Salt []byte
	// Verifier is the digest of the derived key, compared on login.
	Verifier []byte

	CreatedAt time.Time
}
