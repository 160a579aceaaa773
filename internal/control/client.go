package control

import (
	"fmt"

	"go.klb.dev/klippy/internal/crypto"
	"go.klb.dev/klippy/internal/ipc"
	"go.klb.dev/klippy/internal/message"
	"go.klb.dev/klippy/internal/wire"
)

// Client sends requests to a running daemon over the control socket.
type Client struct {
	key *crypto.Key
}

// NewClient returns a Client. key must match the daemon's token, or be nil
// if the daemon runs without one.
func NewClient(key *crypto.Key) *Client {
	return &Client{key: key}
}

// Do sends req and returns the response. An ERROR response is returned as
// an error; a stale paste matches ErrStale.
func (c *Client) Do(req *message.Message) (*message.Message, error) {
	if !ipc.IsRunning() {
		return nil, fmt.Errorf("no klippy daemon listening on %s (start one with \"klippy run\")", ipc.SocketPath())
	}
	conn, err := ipc.Dial()
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", ipc.SocketPath(), err)
	}
	wc := wire.New(conn, c.key)
	defer wc.Close()

	if err := wc.WriteMsg(req); err != nil {
		return nil, fmt.Errorf("send %s: %w", req.Type, err)
	}
	resp, err := wc.ReadMsg()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.Code == message.CodeStale {
		return nil, fmt.Errorf("daemon: %w", ErrStale)
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp, nil
}
