package player

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"path/filepath"
	"sync"
	"testing"

	"mpvnotes/internal/config"
)

// fakeMPV answers mpv JSON IPC commands from a unix socket, recording every
// command it sees. Before each reply it emits one event line, which clients
// must skip.
type fakeMPV struct {
	listener net.Listener

	mu       sync.Mutex
	commands [][]any
	position float64
	paused   bool
}

func newFakeMPV(t *testing.T) (*fakeMPV, string) {
	t.Helper()
	socket := filepath.Join(t.TempDir(), "mpv.sock")
	listener, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	f := &fakeMPV{listener: listener, position: 42.5}
	go f.serve()
	t.Cleanup(func() { _ = listener.Close() })
	return f, socket
}

func (f *fakeMPV) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeMPV) handle(conn net.Conn) {
	defer conn.Close()
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}
		var req struct {
			Command   []any `json:"command"`
			RequestID int64 `json:"request_id"`
		}
		if err := json.Unmarshal(line, &req); err != nil {
			return
		}
		f.mu.Lock()
		f.commands = append(f.commands, req.Command)
		position := f.position
		f.mu.Unlock()

		// Clients must tolerate interleaved events.
		_, _ = conn.Write([]byte(`{"event":"playback-restart"}` + "\n"))

		reply := map[string]any{"error": "success", "request_id": req.RequestID}
		if len(req.Command) >= 2 && req.Command[0] == "get_property" {
			switch req.Command[1] {
			case "time-pos":
				reply["data"] = position
			case "path":
				reply["data"] = "/media/current.mkv"
			default:
				reply["error"] = "property not found"
			}
		}
		payload, _ := json.Marshal(reply)
		if _, err := conn.Write(append(payload, '\n')); err != nil {
			return
		}
	}
}

func (f *fakeMPV) sawCommand(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cmd := range f.commands {
		if len(cmd) > 0 && cmd[0] == name {
			return true
		}
	}
	return false
}

func testConfig(socket string) *config.Config {
	cfg, _, _, err := config.Load(filepath.Join("testdata", "missing.toml"))
	if err != nil {
		panic(err)
	}
	cfg.Player.Socket = socket
	cfg.Player.SettleMillis = 1
	return cfg
}

func TestAttachedCommands(t *testing.T) {
	fake, socket := newFakeMPV(t)
	ctrl, err := NewAttached(testConfig(socket))
	if err != nil {
		t.Fatalf("NewAttached: %v", err)
	}
	defer ctrl.Close()
	ctx := context.Background()

	if err := ctrl.Load(ctx, "/media/talk.mkv"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	pos, err := ctrl.Position(ctx)
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if pos != 42.5 {
		t.Fatalf("Position = %v, want 42.5", pos)
	}
	media, err := ctrl.MediaPath(ctx)
	if err != nil {
		t.Fatalf("MediaPath: %v", err)
	}
	if media != "/media/current.mkv" {
		t.Fatalf("MediaPath = %q", media)
	}
	if err := ctrl.Seek(ctx, 120); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if err := ctrl.SeekBy(ctx, -5); err != nil {
		t.Fatalf("SeekBy: %v", err)
	}
	if err := ctrl.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if err := ctrl.TogglePause(ctx); err != nil {
		t.Fatalf("TogglePause: %v", err)
	}
	if err := ctrl.Screenshot(ctx, "/tmp/frame.png"); err != nil {
		t.Fatalf("Screenshot: %v", err)
	}

	for _, name := range []string{"loadfile", "get_property", "seek", "set_property", "cycle", "screenshot-to-file"} {
		if !fake.sawCommand(name) {
			t.Fatalf("fake mpv never saw %q; commands: %#v", name, fake.commands)
		}
	}
}

func TestAttachedPropertyError(t *testing.T) {
	_, socket := newFakeMPV(t)
	ctrl, err := NewAttached(testConfig(socket))
	if err != nil {
		t.Fatalf("NewAttached: %v", err)
	}
	defer ctrl.Close()

	if _, err := ctrl.conn.getFloat(context.Background(), "volume"); err == nil {
		t.Fatal("expected mpv error for unknown property")
	}
}

func TestAttachedUnavailableSocket(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "absent.sock"))
	if _, err := NewAttached(cfg); !errors.Is(err, ErrPlayerUnavailable) {
		t.Fatalf("expected ErrPlayerUnavailable, got %v", err)
	}
}

func TestNewSelectsBackendOnce(t *testing.T) {
	_, socket := newFakeMPV(t)
	cfg := testConfig(socket)
	cfg.Player.Backend = "attached"
	ctrl, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer ctrl.Close()
	if _, ok := ctrl.(*Attached); !ok {
		t.Fatalf("expected *Attached, got %T", ctrl)
	}

	cfg.Player.Backend = "vhs"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected unknown backend to error")
	}
}
