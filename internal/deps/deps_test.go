package deps

import (
	"os"
	"path/filepath"
	"testing"

	"mpvnotes/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	if err := os.WriteFile(present, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("expected first requirement available, got %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary flagged, got %#v", results[1])
	}
	if results[2].Detail != "command not configured" {
		t.Fatalf("expected unset command detail, got %#v", results[2])
	}
}

func TestRequirementsBackendOptionality(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Backend = "managed"
	reqs := Requirements(&cfg)
	if reqs[0].Optional {
		t.Fatal("managed backend must require mpv")
	}

	cfg.Player.Backend = "attached"
	reqs = Requirements(&cfg)
	if !reqs[0].Optional {
		t.Fatal("attached backend should not hard-require the mpv binary")
	}
	if !reqs[1].Optional {
		t.Fatal("OCR engine is always optional")
	}
}
