package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophsession/internal/flagx"
	"github.com/dmitrijs2005/gophsession/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the config file. Pointer and
// zero-value fields left out of the file keep their previous value.
// Durations accept "400ms" style strings or integer nanoseconds.
type FileConfig struct {
	DataDir       string `json:"data_dir" yaml:"data_dir"`
	StorageDriver string `json:"storage_driver" yaml:"storage_driver"`
	DatabaseFile  string `json:"database_file" yaml:"database_file"`
	BoltFile      string `json:"bolt_file" yaml:"bolt_file"`

	AuthBackend     string          `json:"auth_backend" yaml:"auth_backend"`
	MockDelay       *timex.Duration `json:"mock_delay" yaml:"mock_delay"`
	MaxFailedLogins *int            `json:"max_failed_logins" yaml:"max_failed_logins"`
	LockoutDuration *timex.Duration `json:"lockout_duration" yaml:"lockout_duration"`

	LogLevel string `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}
	return loadFile(cfg, path)
}

// loadFile reads path as YAML when its extension is .yaml or .yml and as
// JSON otherwise.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.DataDir, fc.DataDir)
	setString(&cfg.StorageDriver, fc.StorageDriver)
	setString(&cfg.DatabaseFile, fc.DatabaseFile)
	setString(&cfg.BoltFile, fc.BoltFile)
	setString(&cfg.AuthBackend, fc.AuthBackend)
	setString(&cfg.LogLevel, fc.LogLevel)

	if fc.MockDelay != nil {
		cfg.MockDelay = fc.MockDelay.Duration
	}
	if fc.MaxFailedLogins != nil {
		cfg.MaxFailedLogins = *fc.MaxFailedLogins
	}
	if fc.LockoutDuration != nil {
		cfg.LockoutDuration = fc.LockoutDuration.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
