package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected missing file, got exists for %s", path)
	}
	if cfg.Player.Backend != "attached" {
		t.Fatalf("default backend = %q", cfg.Player.Backend)
	}
	if cfg.Notes.FillWidth != 70 {
		t.Fatalf("default fill width = %d", cfg.Notes.FillWidth)
	}
	if !filepath.IsAbs(cfg.Paths.StateDir) {
		t.Fatalf("state dir should be expanded, got %q", cfg.Paths.StateDir)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[player]
backend = "managed"
settle_ms = 150
args = ["--fs"]

[notes]
pause_on_create = true
lag_seconds = 3
link_scheme = "mpv"

[ocr]
binary = "tesseract"
languages = "eng+deu"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Player.Backend != "managed" || cfg.Player.SettleMillis != 150 {
		t.Fatalf("player overrides not applied: %#v", cfg.Player)
	}
	if len(cfg.Player.Args) != 1 || cfg.Player.Args[0] != "--fs" {
		t.Fatalf("player args not applied: %#v", cfg.Player.Args)
	}
	if !cfg.Notes.PauseOnCreate || cfg.Notes.LagSeconds != 3 {
		t.Fatalf("notes overrides not applied: %#v", cfg.Notes)
	}
	if cfg.OCR.Languages != "eng+deu" {
		t.Fatalf("ocr overrides not applied: %#v", cfg.OCR)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"bad backend", "[player]\nbackend = \"vlc\"\n", "player.backend"},
		{"negative lag", "[notes]\nlag_seconds = -1\n", "lag_seconds"},
		{"bad log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad log level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantSub, err)
			}
		})
	}
}

func TestStatePaths(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if filepath.Dir(cfg.CaptureDBPath()) != cfg.Paths.StateDir {
		t.Fatalf("capture db should live in state dir, got %q", cfg.CaptureDBPath())
	}
	if filepath.Dir(cfg.ManagedSocketPath()) != cfg.Paths.StateDir {
		t.Fatalf("managed socket should live in state dir, got %q", cfg.ManagedSocketPath())
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[player]") {
		t.Fatal("sample config missing [player] section")
	}
}
