package models

// Session is a point-in-time snapshot of the authentication state.
type Session struct {
	// User is nil when nobody is logged in.
	User *User

	// Restoring is true while the persisted session is being loaded at startup.
	Restoring bool

	// Pending is true while a login, signup or logout is in flight.
	Pending bool

	// LastError is the most recent user-facing failure; empty means none.
	LastError string
}

// Authenticated reports whether a user is present.
func (s Session) Authenticated() bool {
	return s.User != nil
}
