// Package services contains the application services of the GophSession
// client. SessionStore is the single owner of the authentication state: it
// restores the persisted session at startup, runs login, signup and logout
// against an Authenticator and a SessionStorage, and publishes every state
// change to its subscribers.
package services
