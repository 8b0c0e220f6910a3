package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("subtitle import", "dialect", "vtt", "cues", 12)

	line := buf.String()
	if !strings.Contains(line, "INFO subtitle import") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "dialect=vtt") || !strings.Contains(line, "cues=12") {
		t.Fatalf("attrs missing from console line: %q", line)
	}
}

func TestConsoleHandlerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestJSONHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Error("player unreachable", "socket", "/tmp/mpvsocket")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("json output not parseable: %v (%q)", err, buf.String())
	}
	if payload["level"] != "error" || payload["msg"] != "player unreachable" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected unknown format to error")
	}
}
