// Package config loads the global config file (~/.sift/config.json).
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sift-cli/internal/action"
)

const (
	// StorageSQLite keeps state in a single sqlite file (default).
	StorageSQLite = "sqlite"
	// StorageFiles keeps one file per key (useful for inspection/scripting).
	StorageFiles = "files"
)

type Config struct {
	// ActionKeywords override the actionable-marker vocabulary of the next
	// action selector. Empty means the built-in default set.
	ActionKeywords []string `json:"actionKeywords,omitempty"`

	// UndoSeconds is how long a deleted thought stays restorable.
	UndoSeconds float64 `json:"undoSeconds,omitempty"`

	// SaveDebounceMs is the quiet window before state is written to storage.
	SaveDebounceMs int `json:"saveDebounceMs,omitempty"`

	// Storage selects the backend: "sqlite" (default) or "files".
	Storage string `json:"storage,omitempty"`
}

// Dir returns the config/data directory (~/.sift), honoring SIFT_CONFIG_DIR
// so unit tests and fixtures never touch the real home directory.
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("SIFT_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sift"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file. A missing file yields the zero config (all
// defaults); a malformed file is an error so typos don't silently revert the
// user to defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, errors.New("invalid config.json: " + err.Error())
	}
	return &cfg, nil
}

// Policy returns the action selection policy from the config.
func (c *Config) Policy() action.Policy {
	if c == nil || len(c.ActionKeywords) == 0 {
		return action.DefaultPolicy()
	}
	return action.Policy{Keywords: c.ActionKeywords}
}

// UndoWindow returns the configured undo window, or 0 to take the store's
// default.
func (c *Config) UndoWindow() time.Duration {
	if c == nil || c.UndoSeconds <= 0 {
		return 0
	}
	return time.Duration(c.UndoSeconds * float64(time.Second))
}

// SaveDebounce returns the configured debounce, or 0 to take the gateway's
// default.
func (c *Config) SaveDebounce() time.Duration {
	if c == nil || c.SaveDebounceMs <= 0 {
		return 0
	}
	return time.Duration(c.SaveDebounceMs) * time.Millisecond
}

// StorageBackend normalizes the storage selection.
func (c *Config) StorageBackend() string {
	if c == nil {
		return StorageSQLite
	}
	switch strings.ToLower(strings.TrimSpace(c.Storage)) {
	case StorageFiles:
		return StorageFiles
	default:
		return StorageSQLite
	}
}
