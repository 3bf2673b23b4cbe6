// Package cli provides the interactive GophSession command-line client.
//
// It wires configuration, local storage, the auth backend and the session
// store, and renders the screens chosen by the navigation gate as a REPL.
// Typical flow: show the splash screen while the previous session is
// restored, then either the log in / sign up screens or the home screen.
//
// Key features:
//   - Log in and sign up with field validation before submission
//   - Invalid fields are reported inline and asked for again
//   - Logout returns to the log in screen
//   - Screen changes follow the session state automatically
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and the services package for details.
package cli
