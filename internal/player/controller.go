package player

import (
	"context"
	"errors"
	"fmt"

	"mpvnotes/internal/config"
)

// ErrPlayerUnavailable marks a player that is not running or not reachable
// over its IPC socket. Callers surface it to the user without retrying.
var ErrPlayerUnavailable = errors.New("media player unavailable")

// Controller is the capability surface the note-taking commands rely on.
type Controller interface {
	// Load starts or replaces playback of the given path.
	Load(ctx context.Context, path string) error
	// Position reports the current playback offset in seconds.
	Position(ctx context.Context) (float64, error)
	// MediaPath reports the path of the currently loaded media.
	MediaPath(ctx context.Context) (string, error)
	// Seek jumps to an absolute offset in seconds.
	Seek(ctx context.Context, seconds float64) error
	// SeekBy moves relative to the current position.
	SeekBy(ctx context.Context, delta float64) error
	// Pause and Resume set the pause property; TogglePause cycles it.
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	TogglePause(ctx context.Context) error
	// Screenshot writes the current video frame to outPath.
	Screenshot(ctx context.Context, outPath string) error
	// Kill shuts the player down.
	Kill(ctx context.Context) error
	// Close releases the IPC connection without touching playback.
	Close() error
}

// New selects and constructs the configured backend.
func New(cfg *config.Config) (Controller, error) {
	switch cfg.Player.Backend {
	case "attached":
		return NewAttached(cfg)
	case "managed":
		return NewManaged(cfg)
	default:
		return nil, fmt.Errorf("unknown player backend %q", cfg.Player.Backend)
	}
}
