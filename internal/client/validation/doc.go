// Package validation implements the credential form rules shared by the
// login and signup screens and by the session store.
//
// Rules:
//
//	name      required, non-empty after trimming (signup only)
//	email     required; trimmed value must look like local@domain.tld
//	password  required; at least MinPasswordLength characters, not trimmed
//
// Per-field checks (ValidateName, ValidateEmail, ValidatePassword) and the
// whole-form checks (ValidateLogin, ValidateSignup) report every invalid
// field. FirstLoginError and FirstSignupError instead return a single error
// using a fixed precedence: missing fields first, then the email format,
// then the password length.
//
// Form holds the values and field errors of one screen; setting a field
// clears its error immediately.
package validation
