package player

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"
)

const dialTimeout = 2 * time.Second

// request is one line of mpv's JSON IPC protocol.
type request struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// response covers both command replies and asynchronous events. Events have
// a non-empty Event field and are skipped while waiting for a reply.
type response struct {
	Error     string          `json:"error"`
	Data      json.RawMessage `json:"data"`
	RequestID int64           `json:"request_id"`
	Event     string          `json:"event"`
}

// conn is a synchronous client for one mpv IPC socket. mpv answers commands
// in order per connection, so a mutex around write-then-read is enough.
type conn struct {
	mu     sync.Mutex
	netc   net.Conn
	reader *bufio.Reader
	nextID int64
}

func dial(socket string) (*conn, error) {
	netc, err := net.DialTimeout("unix", socket, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrPlayerUnavailable, socket, err)
	}
	return &conn{netc: netc, reader: bufio.NewReader(netc)}, nil
}

func (c *conn) close() error {
	if c == nil || c.netc == nil {
		return nil
	}
	return c.netc.Close()
}

// command sends one mpv command and returns its data payload. Event lines
// arriving before the reply are discarded.
func (c *conn) command(ctx context.Context, args ...any) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	deadline := time.Now().Add(dialTimeout)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := c.netc.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set ipc deadline: %w", err)
	}

	c.nextID++
	id := c.nextID
	payload, err := json.Marshal(request{Command: args, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("encode ipc command: %w", err)
	}
	payload = append(payload, '\n')
	if _, err := c.netc.Write(payload); err != nil {
		return nil, fmt.Errorf("%w: write: %v", ErrPlayerUnavailable, err)
	}

	for {
		line, err := c.reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: read: %v", ErrPlayerUnavailable, err)
		}
		var resp response
		if err := json.Unmarshal(line, &resp); err != nil {
			return nil, fmt.Errorf("decode ipc reply: %w", err)
		}
		if resp.Event != "" || resp.RequestID != id {
			continue
		}
		if resp.Error != "success" {
			return nil, fmt.Errorf("mpv: %s", resp.Error)
		}
		return resp.Data, nil
	}
}

func (c *conn) getFloat(ctx context.Context, property string) (float64, error) {
	data, err := c.command(ctx, "get_property", property)
	if err != nil {
		return 0, err
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return 0, fmt.Errorf("property %s: %w", property, err)
	}
	return value, nil
}

func (c *conn) getString(ctx context.Context, property string) (string, error) {
	data, err := c.command(ctx, "get_property", property)
	if err != nil {
		return "", err
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return "", fmt.Errorf("property %s: %w", property, err)
	}
	return value, nil
}

func (c *conn) setProperty(ctx context.Context, property string, value any) error {
	_, err := c.command(ctx, "set_property", property, value)
	return err
}
