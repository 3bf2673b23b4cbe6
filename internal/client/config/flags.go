package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   data directory
//	-s string   session storage driver (sqlite|bolt)
//	-b string   auth backend (mock|local)
//	-m int      mock backend delay in milliseconds
//	-l string   log level (debug|info|warn|error)
//
// Only these flags are considered; everything else in os.Args is ignored.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-b", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "session storage driver (sqlite|bolt)")
	fs.StringVar(&cfg.AuthBackend, "b", cfg.AuthBackend, "auth backend (mock|local)")
	mockDelay := fs.Int("m", int(cfg.MockDelay.Milliseconds()), "mock backend delay (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg.MockDelay = time.Duration(*mockDelay) * time.Millisecond
	return nil
}
