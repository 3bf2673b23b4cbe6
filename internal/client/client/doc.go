// Package client contains the authentication backends of GophSession and the
// bootstrap of the local database.
//
// # Overview
//
// The package provides:
//  1. The Authenticator contract the session store depends on (Login,
//     Signup).
//  2. MockAuthenticator, which accepts any well-formed credentials after a
//     fixed delay and fabricates the user.
//  3. LocalAuthenticator, a device-local account ledger in SQLite with
//     argon2id password verifiers and a failed-login lockout.
//  4. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite file and applies the embedded goose migrations.
//
// # Error Handling
//
// Backends report domain failures with sentinel errors matched via
// errors.Is: ErrInvalidCredentials, ErrAccountExists, ErrRateLimited,
// ErrUnavailable. Anything else is an unexpected failure.
package client
