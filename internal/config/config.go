// Package config loads tracklog configuration from environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all runtime configuration for the CLI.
type Config struct {
	// BaseURL of the tracker instance, e.g. "https://tracker.example.com".
	// Overrides the stored credential's URL when set.
	BaseURL string

	// Token overrides the stored credential token when set. Useful for CI.
	Token string

	// ConfigDir is where credentials and the audit database live.
	ConfigDir string

	TimeoutMs    int
	NoColor      bool
	AuditEnabled bool
}

// DefaultConfig returns a Config with sensible defaults. ConfigDir
// defaults to ~/.tracklog.
func DefaultConfig() Config {
	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".tracklog")
	}
	return Config{
		ConfigDir:    dir,
		TimeoutMs:    15000,
		AuditEnabled: true,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TRACKLOG_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TRACKLOG_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("TRACKLOG_CONFIG_DIR"); v != "" {
		cfg.ConfigDir = v
	}
	if v := os.Getenv("TRACKLOG_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TRACKLOG_NO_COLOR"); v != "" {
		cfg.NoColor, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TRACKLOG_AUDIT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AuditEnabled = b
		}
	}

	return cfg
}

// CredentialsPath returns the path of the credentials file.
func (c Config) CredentialsPath() string {
	return filepath.Join(c.ConfigDir, "credentials.json")
}

// AuditDBPath returns the path of the audit log database.
func (c Config) AuditDBPath() string {
	return filepath.Join(c.ConfigDir, "audit.db")
}
