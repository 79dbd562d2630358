package domain

import (
	"strings"
	"time"
)

// ConfigFileName is the configuration file within the data directory.
const ConfigFileName = "config.toml"

// StoreFileName is the task store document within the data directory.
const StoreFileName = "tasks.json"

// Config represents the application configuration.
type Config struct {
	Jira JiraConfig `toml:"jira"` // Issue tracker credentials
	Log  LogConfig  `toml:"log"`  // [log] settings
}

// JiraConfig holds issue tracker settings from the [jira] section.
// BaseURL, Email, and APIToken are all required together; tracker
// features are disabled while any of them is missing.
type JiraConfig struct {
	BaseURL        string `toml:"base_url"`        // e.g. "https://yourcompany.atlassian.net"
	Email          string `toml:"email"`           // Account identifier
	APIToken       string `toml:"api_token"`       // API token or personal access token
	Auth           string `toml:"auth"`            // "basic" (email+token) or "bearer" (PAT)
	TimeoutSeconds int    `toml:"timeout_seconds"` // Per-request timeout
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Auth modes for the issue tracker client.
const (
	AuthBasic  = "basic"
	AuthBearer = "bearer"
)

// DefaultTrackerTimeout bounds each remote call when no timeout is configured.
const DefaultTrackerTimeout = 30 * time.Second

// NewDefaultConfig returns a Config pre-filled with defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Jira: JiraConfig{
			Auth:           AuthBasic,
			TimeoutSeconds: int(DefaultTrackerTimeout / time.Second),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Configured reports whether all three credential pieces are present.
func (j JiraConfig) Configured() bool {
	return j.BaseURL != "" && j.Email != "" && j.APIToken != ""
}

// Timeout returns the per-request timeout for tracker calls.
func (j JiraConfig) Timeout() time.Duration {
	if j.TimeoutSeconds <= 0 {
		return DefaultTrackerTimeout
	}
	return time.Duration(j.TimeoutSeconds) * time.Second
}

// MaskedEmail returns the account identifier safe for display: the first
// three characters followed by "***", or empty when unset.
func (j JiraConfig) MaskedEmail() string {
	if j.Email == "" {
		return ""
	}
	if len(j.Email) <= 3 {
		return j.Email + "***"
	}
	return j.Email[:3] + "***"
}

// BrowseURL returns the browse link for an issue key.
func (j JiraConfig) BrowseURL(issueKey string) string {
	return strings.TrimRight(j.BaseURL, "/") + "/browse/" + issueKey
}
