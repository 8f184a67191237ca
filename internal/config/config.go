// Package config manages the per-machine runcontrol file: where the shared
// data directory lives (typically inside a file-sync folder) and which
// account to assume when none is given. Per-account settings live in the
// shared document itself, not here.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvDataDir overrides the data directory when set, taking precedence over
// the runcontrol file.
const EnvDataDir = "PUNCHCLOCK_DIR"

const rcFileName = ".punchclockrc"

// Config is the machine-local configuration.
type Config struct {
	DataDir        string `json:"data_dir"`
	DefaultAccount string `json:"default_account,omitempty"`
}

// DefaultPath returns the runcontrol file location, ~/.punchclockrc.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, rcFileName), nil
}

// DefaultDataDir returns the fallback data directory, ~/.punchclock.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".punchclock"), nil
}

// Load reads the runcontrol file. A missing file yields a zero Config; a
// malformed one is an error rather than a silent fallback.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if c.DataDir != "" {
		c.DataDir = expandHome(c.DataDir)
	}
	return c, nil
}

// Save writes the runcontrol file with user-only permissions.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

// ResolveDataDir picks the data directory: env override, then the
// runcontrol file, then ~/.punchclock.
func (c Config) ResolveDataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return expandHome(dir), nil
	}
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return DefaultDataDir()
}

func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
