package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messageOf(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		return ""
	}
	var ve *Error
	require.True(t, errors.As(err, &ve), "expected *validation.Error, got %T", err)
	return ve.Message
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: MsgEmailRequired},
		{in: "   ", want: MsgEmailRequired},
		{in: "foo", want: MsgEmailInvalid},
		{in: "foo@bar", want: MsgEmailInvalid},
		{in: "@bar.com", want: MsgEmailInvalid},
		{in: "foo@@bar.com", want: MsgEmailInvalid},
		{in: "fo o@bar.com", want: MsgEmailInvalid},
		{in: "foo@bar.", want: MsgEmailInvalid},
		{in: "foo@bar.com", want: ""},
		{in: "  User@Example.com  ", want: ""},
		{in: "a@b.c", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, messageOf(t, ValidateEmail(tt.in)))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Equal(t, MsgPasswordRequired, messageOf(t, ValidatePassword("")))
	assert.Equal(t, MsgPasswordTooShort, messageOf(t, ValidatePassword("abcde")))
	assert.NoError(t, ValidatePassword("abcdef"))

	// whitespace is not trimmed and counts towards the length
	assert.NoError(t, ValidatePassword("  abcd"))
	assert.Equal(t, MsgPasswordTooShort, messageOf(t, ValidatePassword(" abc ")))

	// length is counted in characters, not bytes
	assert.Equal(t, MsgPasswordTooShort, messageOf(t, ValidatePassword("пароль"[:8])))
	assert.NoError(t, ValidatePassword("пароль"))
}

func TestValidateName(t *testing.T) {
	assert.Equal(t, MsgNameRequired, messageOf(t, ValidateName("")))
	assert.Equal(t, MsgNameRequired, messageOf(t, ValidateName(" \t ")))
	assert.NoError(t, ValidateName(" Alice "))
}

func TestValidateSignup_ReportsEveryField(t *testing.T) {
	errs := ValidateSignup("", "foo", "abc")
	assert.False(t, errs.Valid())
	assert.Equal(t, Errors{
		FieldName:     MsgNameRequired,
		FieldEmail:    MsgEmailInvalid,
		FieldPassword: MsgPasswordTooShort,
	}, errs)

	assert.True(t, ValidateSignup("Alice", "alice@example.com", "abcdef").Valid())
}

func TestValidateLogin_AbsentKeyMeansValid(t *testing.T) {
	errs := ValidateLogin("alice@example.com", "")
	_, emailBad := errs[FieldEmail]
	assert.False(t, emailBad)
	assert.Equal(t, MsgPasswordRequired, errs[FieldPassword])
}

func TestFirstSignupError_Precedence(t *testing.T) {
	tests := []struct {
		name                  string
		user, email, password string
		wantField             Field
		wantMessage           string
	}{
		{name: "name missing wins", user: "", email: "", password: "", wantField: FieldName, wantMessage: MsgNameRequired},
		{name: "email missing", user: "A", email: " ", password: "x", wantField: FieldEmail, wantMessage: MsgEmailRequired},
		{name: "presence before format", user: "A", email: "foo", password: "", wantField: FieldPassword, wantMessage: MsgPasswordRequired},
		{name: "format before length", user: "A", email: "foo@bar", password: "abc", wantField: FieldEmail, wantMessage: MsgEmailInvalid},
		{name: "length last", user: "A", email: "a@b.co", password: "abcde", wantField: FieldPassword, wantMessage: MsgPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FirstSignupError(tt.user, tt.email, tt.password)
			var ve *Error
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantMessage, ve.Message)
		})
	}

	assert.NoError(t, FirstSignupError("A", "a@b.co", "abcdef"))
}

func TestFirstLoginError(t *testing.T) {
	assert.Equal(t, MsgEmailRequired, messageOf(t, FirstLoginError("", "")))
	assert.Equal(t, MsgEmailInvalid, messageOf(t, FirstLoginError("foo", "secret1")))
	assert.Equal(t, MsgPasswordTooShort, messageOf(t, FirstLoginError("a@b.co", "abcde")))
	assert.NoError(t, FirstLoginError(" User@Example.com ", "secret1"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "Alice Smith", NormalizeName("  Alice Smith\n"))
}
