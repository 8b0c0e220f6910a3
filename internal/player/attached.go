package player

import (
	"context"
	"time"

	"mpvnotes/internal/config"
)

// Attached controls an mpv the user started themselves with
// --input-ipc-server pointing at the configured socket.
type Attached struct {
	conn   *conn
	settle time.Duration
}

// NewAttached connects to the configured IPC socket.
func NewAttached(cfg *config.Config) (*Attached, error) {
	c, err := dial(cfg.Player.Socket)
	if err != nil {
		return nil, err
	}
	return &Attached{
		conn:   c,
		settle: time.Duration(cfg.Player.SettleMillis) * time.Millisecond,
	}, nil
}

// attach wraps an existing conn; the managed backend reuses it.
func attach(c *conn, settle time.Duration) *Attached {
	return &Attached{conn: c, settle: settle}
}

// settleDown waits out mpv's asynchronous command acknowledgement before the
// caller issues the next query.
func (a *Attached) settleDown() {
	if a.settle > 0 {
		time.Sleep(a.settle)
	}
}

func (a *Attached) Load(ctx context.Context, path string) error {
	if _, err := a.conn.command(ctx, "loadfile", path, "replace"); err != nil {
		return err
	}
	a.settleDown()
	return nil
}

func (a *Attached) Position(ctx context.Context) (float64, error) {
	return a.conn.getFloat(ctx, "time-pos")
}

func (a *Attached) MediaPath(ctx context.Context) (string, error) {
	return a.conn.getString(ctx, "path")
}

func (a *Attached) Seek(ctx context.Context, seconds float64) error {
	if _, err := a.conn.command(ctx, "seek", seconds, "absolute"); err != nil {
		return err
	}
	a.settleDown()
	return nil
}

func (a *Attached) SeekBy(ctx context.Context, delta float64) error {
	if _, err := a.conn.command(ctx, "seek", delta, "relative"); err != nil {
		return err
	}
	a.settleDown()
	return nil
}

func (a *Attached) Pause(ctx context.Context) error {
	return a.conn.setProperty(ctx, "pause", true)
}

func (a *Attached) Resume(ctx context.Context) error {
	return a.conn.setProperty(ctx, "pause", false)
}

func (a *Attached) TogglePause(ctx context.Context) error {
	_, err := a.conn.command(ctx, "cycle", "pause")
	return err
}

func (a *Attached) Screenshot(ctx context.Context, outPath string) error {
	_, err := a.conn.command(ctx, "screenshot-to-file", outPath, "video")
	return err
}

func (a *Attached) Kill(ctx context.Context) error {
	// mpv drops the connection while replying; treat that as success.
	_, _ = a.conn.command(ctx, "quit")
	return nil
}

func (a *Attached) Close() error {
	return a.conn.close()
}
