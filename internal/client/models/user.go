// Package models defines client-side data models shared by the session
// store, the navigation gate and the CLI.
package models

// User is the authenticated identity held by the session.
//
// Email is stored normalized (trimmed, lower-cased).
type User struct {
	// ID is unique per account. The mock backend derives it from the clock;
	// the local ledger issues a UUID.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email is the login identifier.
	Email string `json:"email"`
}
