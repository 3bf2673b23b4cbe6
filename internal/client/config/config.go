package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/logging"
)

const (
	StorageSQLite = "sqlite"
	StorageBolt   = "bolt"

	BackendMock  = "mock"
	BackendLocal = "local"
)

var (
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	ErrUnknownAuthBackend   = errors.New("unknown auth backend")
)

// Config holds runtime settings for the GophSession CLI.
//
// DatabaseFile and BoltFile are relative to DataDir unless absolute. The
// SQLite database is always opened: it carries the local account ledger
// even when the session itself is kept in Bolt.
type Config struct {
	DataDir       string
	StorageDriver string
	DatabaseFile  string
	BoltFile      string

	AuthBackend     string
	MockDelay       time.Duration
	MaxFailedLogins int
	LockoutDuration time.Duration

	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.StorageDriver = StorageSQLite
	c.DatabaseFile = "gophsession.db"
	c.BoltFile = "session.bolt"
	c.AuthBackend = BackendMock
	c.MockDelay = 400 * time.Millisecond
	c.MaxFailedLogins = 5
	c.LockoutDuration = 15 * time.Minute
	c.LogLevel = "info"
}

// Validate rejects values the application cannot run with.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageSQLite, StorageBolt:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, c.StorageDriver)
	}

	switch c.AuthBackend {
	case BackendMock, BackendLocal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAuthBackend, c.AuthBackend)
	}

	if c.MockDelay < 0 {
		return errors.New("mock delay must not be negative")
	}
	if c.MaxFailedLogins < 0 {
		return errors.New("max failed logins must not be negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// DatabasePath is the location of the SQLite file.
func (c *Config) DatabasePath() string {
	return c.resolve(c.DatabaseFile)
}

// BoltPath is the location of the Bolt file.
func (c *Config) BoltPath() string {
	return c.resolve(c.BoltFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// LoadConfig builds a Config from defaults, then the optional config file,
// then command-line flags. Later sources take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
