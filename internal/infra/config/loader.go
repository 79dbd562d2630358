// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Environment variables overriding the config file. The JIRA_* names
// match the original deployment surface of the tracker integration.
const (
	envDataDir     = "TASK_TRACKER_DIR"
	envJiraBaseURL = "JIRA_BASE_URL"
	envJiraEmail   = "JIRA_EMAIL"
	envJiraToken   = "JIRA_API_TOKEN"
	envJiraAuth    = "JIRA_AUTH"
	envJiraTimeout = "JIRA_TIMEOUT_SECONDS"
	envLogLevel    = "TASK_TRACKER_LOG_LEVEL"
)

// Loader loads configuration from the data directory's TOML file,
// overlaid by environment variables.
type Loader struct {
	dataDir string
}

// NewLoader creates a new Loader for the given data directory.
func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// DataDir resolves the data directory: $TASK_TRACKER_DIR when set,
// otherwise ~/.task-tracker.
func DataDir() (string, error) {
	if dir := os.Getenv(envDataDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".task-tracker"), nil
}

// Load returns the merged configuration (defaults <- file <- env).
// A missing config file is not an error.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	path := filepath.Join(l.dataDir, domain.ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to env overlay
	case err != nil:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	default:
		var fileCfg domain.Config
		if err := toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeConfig(cfg, &fileCfg)
	}

	applyEnv(cfg)
	return cfg, nil
}

// mergeConfig overlays non-zero fields of src onto dst.
func mergeConfig(dst, src *domain.Config) {
	if src.Jira.BaseURL != "" {
		dst.Jira.BaseURL = src.Jira.BaseURL
	}
	if src.Jira.Email != "" {
		dst.Jira.Email = src.Jira.Email
	}
	if src.Jira.APIToken != "" {
		dst.Jira.APIToken = src.Jira.APIToken
	}
	if src.Jira.Auth != "" {
		dst.Jira.Auth = src.Jira.Auth
	}
	if src.Jira.TimeoutSeconds > 0 {
		dst.Jira.TimeoutSeconds = src.Jira.TimeoutSeconds
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
}

// applyEnv overlays environment variables, which take precedence over
// the config file.
func applyEnv(cfg *domain.Config) {
	if v := os.Getenv(envJiraBaseURL); v != "" {
		cfg.Jira.BaseURL = v
	}
	if v := os.Getenv(envJiraEmail); v != "" {
		cfg.Jira.Email = v
	}
	if v := os.Getenv(envJiraToken); v != "" {
		cfg.Jira.APIToken = v
	}
	if v := os.Getenv(envJiraAuth); v != "" {
		cfg.Jira.Auth = v
	}
	if v := os.Getenv(envJiraTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Jira.TimeoutSeconds = n
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.Log.Level = v
	}
}
