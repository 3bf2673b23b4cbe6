package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsession/internal/client/navigation"
	"github.com/dmitrijs2005/gophsession/internal/client/validation"
	"github.com/dmitrijs2005/gophsession/internal/common"
)

var (
	// ErrBusy is returned when a command is issued while a login, signup
	// or logout is still in flight.
	ErrBusy        = errors.New("an operation is already in progress")
	ErrNoForm      = errors.New("no form on this screen")
	ErrNotLoggedIn = errors.New("not logged in")
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var fieldPrompts = map[validation.Field]string{
	validation.FieldName:  "Enter name",
	validation.FieldEmail: "Enter email",
}

var fieldLabels = map[validation.Field]string{
	validation.FieldName:     "Name",
	validation.FieldEmail:    "Email",
	validation.FieldPassword: "Password",
}

// Submit fills in the form of the current screen and hands it to the store.
// Fields that fail validation are reported and asked for again, the others
// are kept.
func (a *App) Submit(ctx context.Context) error {
	if a.store.State().Pending {
		printlnFn("Please wait, an operation is in progress")
		return ErrBusy
	}

	switch a.nav.Current() {
	case navigation.ScreenLogin:
		form := validation.NewLoginForm()
		if err := a.fill(form); err != nil {
			return err
		}
		return a.report(a.store.Login(ctx,
			form.Value(validation.FieldEmail),
			form.Value(validation.FieldPassword)))

	case navigation.ScreenSignup:
		form := validation.NewSignupForm()
		if err := a.fill(form); err != nil {
			return err
		}
		return a.report(a.store.Signup(ctx,
			form.Value(validation.FieldName),
			form.Value(validation.FieldEmail),
			form.Value(validation.FieldPassword)))

	default:
		return ErrNoForm
	}
}

func (a *App) fill(form *validation.Form) error {
	fields := form.Fields()
	for {
		for _, f := range fields {
			v, err := a.readField(f)
			if err != nil {
				return err
			}
			form.Set(f, v)
		}

		if form.Validate() {
			return nil
		}

		fields = form.InvalidFields()
		for _, f := range fields {
			printlnFn(fmt.Sprintf("%s: %s", fieldLabels[f], form.Error(f)))
		}
	}
}

func (a *App) readField(f validation.Field) (string, error) {
	if f == validation.FieldPassword {
		pw, err := getPassword(a.reader, a.out)
		if err != nil {
			return "", err
		}
		defer common.WipeByteArray(pw)
		return string(pw), nil
	}
	return getSimpleText(a.reader, fieldPrompts[f], a.out)
}

func (a *App) report(err error) error {
	if err != nil {
		printlnFn("Error:", a.store.State().LastError)
		a.log.Debug(context.Background(), "auth command failed", "error", err)
	}
	return err
}

// Open switches between the screens of the current route and dismisses the
// error shown on the previous one.
func (a *App) Open(screen navigation.Screen) error {
	if err := a.nav.Navigate(screen); err != nil {
		printlnFn("Screen not available:", string(screen))
		return err
	}
	a.store.ClearError()
	a.announce(screen, a.store.State())
	return nil
}

// WhoAmI prints the logged-in user.
func (a *App) WhoAmI() error {
	u := a.store.State().User
	if u == nil {
		printlnFn("Not logged in")
		return ErrNotLoggedIn
	}
	printlnFn(fmt.Sprintf("%s <%s> (id: %s)", u.Name, u.Email, u.ID))
	return nil
}

// Logout ends the session. The store moves the navigator back to the
// login screen.
func (a *App) Logout(ctx context.Context) error {
	if a.store.State().Pending {
		printlnFn("Please wait, an operation is in progress")
		return ErrBusy
	}
	a.store.Logout(ctx)
	printlnFn("Logged out")
	return nil
}
