// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the API token goes to the OS
// keychain. Environment variables override the file, and a .env in the
// working directory is loaded first so local setups can pin the backend URL.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"contascan/cli/internal/xdg"

	"github.com/joho/godotenv"
)

// Defaults applied when no file or environment override is present.
const (
	DefaultBackendURL  = "http://localhost:8000"
	DefaultMaxFileMiB  = 10
	DefaultTimeoutSecs = 60
)

// Environment variables recognized as overrides.
const (
	EnvBackendURL = "CONTASCAN_BACKEND_URL"
	EnvAPIToken   = "CONTASCAN_API_TOKEN"
	EnvVerbose    = "CONTASCAN_VERBOSE"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	BackendURL  string `json:"backend_url"`
	MaxFileMiB  int64  `json:"max_file_mib"`
	TimeoutSecs int    `json:"timeout_secs"`
	LogLevel    string `json:"log_level"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults. A .env file in
// the working directory and process environment variables take precedence
// over the stored file for the backend URL.
func Load() (Config, error) {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	c := Config{
		BackendURL:  DefaultBackendURL,
		MaxFileMiB:  DefaultMaxFileMiB,
		TimeoutSecs: DefaultTimeoutSecs,
		LogLevel:    "info",
	}

	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
	}
	if c.MaxFileMiB <= 0 {
		c.MaxFileMiB = DefaultMaxFileMiB
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}

	if env := strings.TrimSpace(os.Getenv(EnvBackendURL)); env != "" {
		c.BackendURL = env
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// MaxFileBytes returns the per-file upload ceiling in bytes.
func (c Config) MaxFileBytes() int64 {
	return c.MaxFileMiB * 1024 * 1024
}
