package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophsession/internal/client/client"
	"github.com/dmitrijs2005/gophsession/internal/client/config"
	"github.com/dmitrijs2005/gophsession/internal/client/models"
	"github.com/dmitrijs2005/gophsession/internal/client/navigation"
	"github.com/dmitrijs2005/gophsession/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophsession/internal/client/services"
	"github.com/dmitrijs2005/gophsession/internal/filex"
	"github.com/dmitrijs2005/gophsession/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionStore is the part of services.SessionStore the CLI drives.
type sessionStore interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context)
	ClearError()
	State() models.Session
	Subscribe(fn func(models.Session)) func()
}

type App struct {
	store       sessionStore
	nav         *navigation.Navigator
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	closers     []io.Closer
	unsubscribe func()
}

// NewApp opens local storage, picks the storage driver and auth backend
// named by c, and wires them into a session store.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}
	c.DataDir = dir

	db, err := client.InitDatabase(ctx, c.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	closers := []io.Closer{db}

	storage, err := openStorage(c, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if cl, ok := storage.(io.Closer); ok {
		closers = append(closers, cl)
	}

	auth := newAuthenticator(c, db)
	log.Info(ctx, "client initialized",
		"data_dir", c.DataDir, "storage", c.StorageDriver, "backend", c.AuthBackend)

	store := services.NewSessionStore(auth, storage, log)
	return newApp(store, log, os.Stdin, os.Stdout, closers...), nil
}

func openStorage(c *config.Config, db *sql.DB) (services.SessionStorage, error) {
	switch c.StorageDriver {
	case config.StorageBolt:
		repo, err := metadata.OpenBoltRepository(c.BoltPath())
		if err != nil {
			return nil, fmt.Errorf("error opening bolt storage: %w", err)
		}
		return repo, nil
	case config.StorageSQLite:
		return metadata.NewSQLiteRepository(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, c.StorageDriver)
	}
}

func newAuthenticator(c *config.Config, db *sql.DB) client.Authenticator {
	if c.AuthBackend == config.BackendLocal {
		return client.NewLocalAuthenticator(db, client.LocalConfig{
			MaxFailedLogins: c.MaxFailedLogins,
			LockoutDuration: c.LockoutDuration,
		})
	}
	return client.NewMockAuthenticator(c.MockDelay)
}

func newApp(store sessionStore, log logging.Logger, in io.Reader, out io.Writer, closers ...io.Closer) *App {
	a := &App{
		store:   store,
		nav:     navigation.NewNavigator(store.State()),
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
		closers: closers,
	}
	a.unsubscribe = store.Subscribe(a.onSession)
	return a
}

// onSession follows the navigator to the route of every new state.
func (a *App) onSession(s models.Session) {
	if a.nav.Sync(s) {
		a.announce(a.nav.Current(), s)
	}
}

// Run restores the previous session behind the splash screen and then
// serves the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	printlnFn("Welcome to GophSession CLI (type 'help' for commands)")
	a.announce(a.nav.Current(), a.store.State())

	a.store.Restore(ctx)

	runREPL(ctx, a, a.status, a.reader)
	return ctx.Err()
}

// Close detaches from the store and releases storage handles.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) Screen() navigation.Screen {
	return a.nav.Current()
}

func (a *App) status() string {
	s := a.store.State()
	status := string(a.nav.Current())
	if s.User != nil {
		status += " " + s.User.Email
	}
	if s.Pending {
		status += " (busy)"
	}
	return status
}

func (a *App) announce(screen navigation.Screen, s models.Session) {
	switch screen {
	case navigation.ScreenSplash:
		printlnFn("Loading...")
	case navigation.ScreenLogin:
		printlnFn("== Log in == type 'submit' to enter your credentials or 'signup' to create an account")
	case navigation.ScreenSignup:
		printlnFn("== Sign up == type 'submit' to create an account or 'login' to go back")
	case navigation.ScreenHome:
		name := ""
		if s.User != nil {
			name = s.User.Name
		}
		printlnFn(fmt.Sprintf("== Home == welcome, %s!", name))
	}
}
