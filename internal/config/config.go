package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and file locations.
type Paths struct {
	// StateDir holds the capture database, managed-player socket, and lock.
	StateDir string `toml:"state_dir"`
	// ShotDir receives screenshot files.
	ShotDir string `toml:"shot_dir"`
	// LogDir receives the mpvnotes log file.
	LogDir string `toml:"log_dir"`
	// NotesFile is where note entries are appended; empty means stdout.
	NotesFile string `toml:"notes_file"`
}

// Player selects and configures the playback backend.
type Player struct {
	// Backend is "attached" (existing mpv IPC socket) or "managed"
	// (mpvnotes launches and owns its own mpv).
	Backend string `toml:"backend"`
	// Binary is the mpv executable used by the managed backend.
	Binary string `toml:"binary"`
	// Socket is the JSON IPC socket of an already-running mpv.
	Socket string `toml:"socket"`
	// Args are extra arguments passed to a managed mpv.
	Args []string `toml:"args"`
	// SettleMillis is slept after load/seek before the next query so mpv's
	// asynchronous acknowledgement has landed.
	SettleMillis int `toml:"settle_ms"`
}

// Notes configures note-entry and link rendering.
type Notes struct {
	LinkScheme    string `toml:"link_scheme"`
	PauseOnCreate bool   `toml:"pause_on_create"`
	// LagSeconds is subtracted from the reported position when creating a
	// note, compensating for reaction time.
	LagSeconds   int `toml:"lag_seconds"`
	FillWidth    int `toml:"fill_width"`
	HeadingLevel int `toml:"heading_level"`
}

// OCR configures text recognition over captured frames.
type OCR struct {
	Binary         string `toml:"binary"`
	Languages      string `toml:"languages"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for mpvnotes.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Player  Player  `toml:"player"`
	Notes   Notes   `toml:"notes"`
	OCR     OCR     `toml:"ocr"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/mpvnotes/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates the directories commands rely on.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.ShotDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ManagedSocketPath is the IPC socket a managed mpv listens on.
func (c *Config) ManagedSocketPath() string {
	return filepath.Join(c.Paths.StateDir, "mpv.sock")
}

// ManagedLockPath guards the managed player against duplicate launches.
func (c *Config) ManagedLockPath() string {
	return filepath.Join(c.Paths.StateDir, "mpv.lock")
}

// CaptureDBPath is the SQLite file backing the capture store.
func (c *Config) CaptureDBPath() string {
	return filepath.Join(c.Paths.StateDir, "captures.db")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sample returns the embedded sample configuration text.
func Sample() string {
	return sampleConfig
}
