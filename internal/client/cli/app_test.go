package cli

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophsession/internal/client/client"
	"github.com/dmitrijs2005/gophsession/internal/client/config"
	"github.com/dmitrijs2005/gophsession/internal/client/models"
	"github.com/dmitrijs2005/gophsession/internal/client/navigation"
	"github.com/dmitrijs2005/gophsession/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophsession/internal/client/services"
	"github.com/dmitrijs2005/gophsession/internal/common"
	"github.com/dmitrijs2005/gophsession/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestApp(t *testing.T, auth client.Authenticator, storage services.SessionStorage, lines ...string) (*App, *services.SessionStore) {
	t.Helper()
	stubTerminal(t, false)
	store := services.NewSessionStore(auth, storage, logging.Discard())
	app := newApp(store, logging.Discard(), strings.NewReader(strings.Join(lines, "\n")+"\n"), io.Discard)
	return app, store
}

type fakeStore struct {
	state      models.Session
	loginCalls int
}

func (f *fakeStore) Restore(context.Context) { f.state.Restoring = false }
func (f *fakeStore) Login(context.Context, string, string) error {
	f.loginCalls++
	return nil
}
func (f *fakeStore) Signup(context.Context, string, string, string) error { return nil }
func (f *fakeStore) Logout(context.Context)                               {}
func (f *fakeStore) ClearError()                                          { f.state.LastError = "" }
func (f *fakeStore) State() models.Session                                { return f.state }
func (f *fakeStore) Subscribe(func(models.Session)) func()                { return func() {} }

// ------------ tests ------------

func TestApp_LoginReportsInvalidFieldsThenLogsInAndOut(t *testing.T) {
	out := captureOutput(t)
	storage := metadata.NewSQLiteRepository(setupDB(t))

	app, store := newTestApp(t, client.NewMockAuthenticator(0), storage,
		"submit",
		"foo", "abc",
		"a@b.co", "secret1",
		"whoami",
		"logout",
		"exit",
	)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, *out, "Loading...")
	assert.Contains(t, *out, "Email: Please enter a valid email address")
	assert.Contains(t, *out, "Password: Password must be at least 6 characters")
	assert.Contains(t, *out, "== Home == welcome, a!")
	assert.Contains(t, *out, "Logged out")

	assert.Nil(t, store.State().User)
	data, err := storage.Get(context.Background(), common.SessionStorageKey)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestApp_RepromptsOnlyInvalidFieldsAndRestores(t *testing.T) {
	captureOutput(t)
	storage := metadata.NewSQLiteRepository(setupDB(t))

	// the password is entered once; only the email is asked again
	app, store := newTestApp(t, client.NewMockAuthenticator(0), storage,
		"submit",
		"foo", "secret1",
		"  Jane@Example.COM",
		"exit",
	)
	require.NoError(t, app.Run(context.Background()))
	require.NotNil(t, store.State().User)
	assert.Equal(t, "jane@example.com", store.State().User.Email)

	out := captureOutput(t)
	again, _ := newTestApp(t, client.NewMockAuthenticator(0), storage, "whoami", "exit")
	require.NoError(t, again.Run(context.Background()))

	assert.Equal(t, navigation.ScreenHome, again.Screen())
	assert.Contains(t, strings.Join(*out, "\n"), "jane <jane@example.com>")
}

func TestApp_SignupWithLocalBackend(t *testing.T) {
	out := captureOutput(t)
	db := setupDB(t)
	auth := client.NewLocalAuthenticator(db, client.LocalConfig{})

	app, store := newTestApp(t, auth, metadata.NewSQLiteRepository(db),
		"signup",
		"submit", "  Jane  ", "jane@x.io", "secret1",
		"logout",
		"signup",
		"submit", "Other", "jane@x.io", "secret2",
		"login",
		"submit", "jane@x.io", "wrong12",
		"exit",
	)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, *out, "== Home == welcome, Jane!")
	assert.Contains(t, *out, "Error: "+services.MsgAccountExists)
	assert.Contains(t, *out, "Error: "+services.MsgInvalidCredentials)
	assert.Nil(t, store.State().User)
}

func TestApp_OpenClearsError(t *testing.T) {
	captureOutput(t)
	db := setupDB(t)
	auth := client.NewLocalAuthenticator(db, client.LocalConfig{})

	app, store := newTestApp(t, auth, metadata.NewSQLiteRepository(db),
		"submit", "nobody@x.io", "secret1",
	)
	store.Restore(context.Background())

	require.Error(t, app.Submit(context.Background()))
	require.Equal(t, services.MsgInvalidCredentials, store.State().LastError)

	require.NoError(t, app.Open(navigation.ScreenSignup))
	assert.Empty(t, store.State().LastError)
	assert.Equal(t, navigation.ScreenSignup, app.Screen())

	require.ErrorIs(t, app.Open(navigation.ScreenHome), navigation.ErrScreenUnavailable)
}

func TestApp_SubmitWhilePending(t *testing.T) {
	captureOutput(t)
	fs := &fakeStore{state: models.Session{Pending: true}}
	app := newApp(fs, logging.Discard(), strings.NewReader(""), io.Discard)

	require.ErrorIs(t, app.Submit(context.Background()), ErrBusy)
	require.ErrorIs(t, app.Logout(context.Background()), ErrBusy)
	assert.Equal(t, 0, fs.loginCalls)
}

func TestApp_SubmitWithoutForm(t *testing.T) {
	captureOutput(t)
	fs := &fakeStore{state: models.Session{User: &models.User{ID: "1", Name: "n", Email: "e@x.io"}}}
	app := newApp(fs, logging.Discard(), strings.NewReader(""), io.Discard)

	require.ErrorIs(t, app.Submit(context.Background()), ErrNoForm)
	require.NoError(t, app.WhoAmI())
}

func TestApp_WhoAmILoggedOut(t *testing.T) {
	captureOutput(t)
	app := newApp(&fakeStore{}, logging.Discard(), strings.NewReader(""), io.Discard)
	require.ErrorIs(t, app.WhoAmI(), ErrNotLoggedIn)
}

func TestApp_SubmitInputEOF(t *testing.T) {
	captureOutput(t)
	fs := &fakeStore{}
	app := newApp(fs, logging.Discard(), strings.NewReader("foo\n"), io.Discard)
	stubTerminal(t, false)

	require.ErrorIs(t, app.Submit(context.Background()), io.EOF)
	assert.Equal(t, 0, fs.loginCalls)
}

func TestNewApp_Drivers(t *testing.T) {
	for _, driver := range []string{config.StorageSQLite, config.StorageBolt} {
		t.Run(driver, func(t *testing.T) {
			var c config.Config
			c.LoadDefaults()
			c.DataDir = filepath.Join(t.TempDir(), "nested")
			c.StorageDriver = driver
			c.AuthBackend = config.BackendLocal

			app, err := NewApp(context.Background(), &c, logging.Discard())
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(c.DataDir))
			assert.Len(t, app.closers, map[string]int{config.StorageSQLite: 1, config.StorageBolt: 2}[driver])
			require.NoError(t, app.Close())
		})
	}
}

func TestNewApp_UnknownDriver(t *testing.T) {
	var c config.Config
	c.LoadDefaults()
	c.DataDir = t.TempDir()
	c.StorageDriver = "redis"

	_, err := NewApp(context.Background(), &c, logging.Discard())
	require.ErrorIs(t, err, config.ErrUnknownStorageDriver)
}
