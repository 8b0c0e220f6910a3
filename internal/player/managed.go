package player

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/gofrs/flock"

	"mpvnotes/internal/config"
)

const socketWaitTimeout = 5 * time.Second

// Managed launches and owns its own mpv process, with a private IPC socket
// under the state directory. A flock file keeps concurrent mpvnotes
// invocations from racing to spawn duplicate players: whoever holds the lock
// spawned the process, everyone else attaches to the surviving socket.
type Managed struct {
	*Attached
	cmd  *exec.Cmd
	lock *flock.Flock
}

// NewManaged connects to the managed player socket, spawning mpv first when
// no live socket exists.
func NewManaged(cfg *config.Config) (*Managed, error) {
	if err := os.MkdirAll(cfg.Paths.StateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	settle := time.Duration(cfg.Player.SettleMillis) * time.Millisecond

	// Fast path: a previous invocation's mpv is still up.
	if c, err := dial(cfg.ManagedSocketPath()); err == nil {
		return &Managed{Attached: attach(c, settle)}, nil
	}

	lock := flock.New(cfg.ManagedLockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire player lock: %w", err)
	}
	if !locked {
		// Another invocation is spawning mpv right now; wait for its socket.
		c, err := dialUntil(cfg.ManagedSocketPath(), socketWaitTimeout)
		if err != nil {
			return nil, err
		}
		return &Managed{Attached: attach(c, settle)}, nil
	}

	cmd, err := spawn(cfg)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	c, err := dialUntil(cfg.ManagedSocketPath(), socketWaitTimeout)
	if err != nil {
		_ = cmd.Process.Kill()
		_ = lock.Unlock()
		return nil, err
	}

	return &Managed{Attached: attach(c, settle), cmd: cmd, lock: lock}, nil
}

func spawn(cfg *config.Config) (*exec.Cmd, error) {
	if _, err := exec.LookPath(cfg.Player.Binary); err != nil {
		return nil, fmt.Errorf("%w: binary %q not found", ErrPlayerUnavailable, cfg.Player.Binary)
	}
	_ = os.Remove(cfg.ManagedSocketPath())

	args := []string{
		"--idle=yes",
		"--input-ipc-server=" + cfg.ManagedSocketPath(),
	}
	args = append(args, cfg.Player.Args...)
	cmd := exec.Command(cfg.Player.Binary, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: start %s: %v", ErrPlayerUnavailable, cfg.Player.Binary, err)
	}
	// Reap the child whenever it exits so it never lingers as a zombie.
	go func() { _ = cmd.Wait() }()
	return cmd, nil
}

// dialUntil polls the socket until mpv has created it or the deadline passes.
func dialUntil(socket string, timeout time.Duration) (*conn, error) {
	deadline := time.Now().Add(timeout)
	for {
		c, err := dial(socket)
		if err == nil {
			return c, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: socket %s never appeared", ErrPlayerUnavailable, socket)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// Kill quits mpv and, for the spawning invocation, tears down the process
// and lock.
func (m *Managed) Kill(ctx context.Context) error {
	err := m.Attached.Kill(ctx)
	if m.cmd != nil && m.cmd.Process != nil {
		killErr := m.cmd.Process.Kill()
		if killErr != nil && !errors.Is(killErr, os.ErrProcessDone) {
			err = errors.Join(err, killErr)
		}
	}
	if m.lock != nil {
		_ = m.lock.Unlock()
	}
	return err
}

// Close releases the connection and lock but leaves mpv running.
func (m *Managed) Close() error {
	if m.lock != nil {
		_ = m.lock.Unlock()
	}
	return m.Attached.Close()
}
