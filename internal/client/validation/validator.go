package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names a form input.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// MinPasswordLength is counted in characters (runes).
const MinPasswordLength = 6

const (
	MsgNameRequired     = "Name is required"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email address"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 6 characters"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Error is a single failed rule.
type Error struct {
	Field   Field
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errors maps a field to its message. A missing key means the field is valid.
type Errors map[Field]string

// Valid reports whether no field has an error.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims a display name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

func nameRequired(name string) *Error {
	if NormalizeName(name) == "" {
		return &Error{Field: FieldName, Message: MsgNameRequired}
	}
	return nil
}

func emailRequired(email string) *Error {
	if strings.TrimSpace(email) == "" {
		return &Error{Field: FieldEmail, Message: MsgEmailRequired}
	}
	return nil
}

func emailFormat(email string) *Error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return &Error{Field: FieldEmail, Message: MsgEmailInvalid}
	}
	return nil
}

func passwordRequired(password string) *Error {
	if password == "" {
		return &Error{Field: FieldPassword, Message: MsgPasswordRequired}
	}
	return nil
}

func passwordLength(password string) *Error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return &Error{Field: FieldPassword, Message: MsgPasswordTooShort}
	}
	return nil
}

func asError(e *Error) error {
	if e == nil {
		return nil
	}
	return e
}

// ValidateName checks the signup name field.
func ValidateName(name string) error {
	return asError(nameRequired(name))
}

// ValidateEmail checks presence, then format.
func ValidateEmail(email string) error {
	if e := emailRequired(email); e != nil {
		return e
	}
	return asError(emailFormat(email))
}

// ValidatePassword checks presence, then length.
func ValidatePassword(password string) error {
	if e := passwordRequired(password); e != nil {
		return e
	}
	return asError(passwordLength(password))
}

// ValidateLogin returns the errors of every invalid login field.
func ValidateLogin(email, password string) Errors {
	errs := Errors{}
	collect(errs, ValidateEmail(email))
	collect(errs, ValidatePassword(password))
	return errs
}

// ValidateSignup returns the errors of every invalid signup field.
func ValidateSignup(name, email, password string) Errors {
	errs := Errors{}
	collect(errs, ValidateName(name))
	collect(errs, ValidateEmail(email))
	collect(errs, ValidatePassword(password))
	return errs
}

func collect(errs Errors, err error) {
	if e, ok := err.(*Error); ok {
		errs[e.Field] = e.Message
	}
}

// FirstLoginError returns the single highest-precedence login error, or nil.
func FirstLoginError(email, password string) error {
	return first(
		func() *Error { return emailRequired(email) },
		func() *Error { return passwordRequired(password) },
		func() *Error { return emailFormat(email) },
		func() *Error { return passwordLength(password) },
	)
}

// FirstSignupError returns the single highest-precedence signup error, or nil.
func FirstSignupError(name, email, password string) error {
	return first(
		func() *Error { return nameRequired(name) },
		func() *Error { return emailRequired(email) },
		func() *Error { return passwordRequired(password) },
		func() *Error { return emailFormat(email) },
		func() *Error { return passwordLength(password) },
	)
}

func first(rules ...func() *Error) error {
	for _, rule := range rules {
		if e := rule(); e != nil {
			return e
		}
	}
	return nil
}
