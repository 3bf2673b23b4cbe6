// Package common contains shared constants and sentinel errors used across
// GophSession components.
package common

// SessionStorageKey is the well-known key under which the authenticated
// user record is stored in the local key-value storage.
const SessionStorageKey = "@auth_user"
