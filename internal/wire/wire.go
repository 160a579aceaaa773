// Package wire frames control messages as newline-delimited JSON over a
// net.Conn, optionally sealed with the control token.
//
// Wire format (no token):
//
//	<json>\n
//
// Wire format (token set):
//
//	<base64(nonce+ciphertext)>\n
//
// Both forms are one message per line, so framing does not depend on whether
// a token is in use.
package wire

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"time"

	"go.klb.dev/klippy/internal/crypto"
	"go.klb.dev/klippy/internal/message"
)

const (
	// MaxMessageSize is the largest line we will read (16 MiB).
	MaxMessageSize = 16 * 1024 * 1024

	writeDeadline = 5 * time.Second
)

// ErrTooLarge is returned for a line longer than MaxMessageSize.
var ErrTooLarge = errors.New("message too large")

// Conn wraps a net.Conn with line framing and optional encryption.
type Conn struct {
	conn net.Conn
	br   *bufio.Reader
	key  *crypto.Key // nil = plain JSON
}

// New wraps conn. A nil key sends plain JSON.
func New(conn net.Conn, key *crypto.Key) *Conn {
	return &Conn{
		conn: conn,
		br:   bufio.NewReaderSize(conn, 64*1024),
		key:  key,
	}
}

// SetReadDeadline sets or clears the read deadline.
func (c *Conn) SetReadDeadline(d time.Duration) {
	if d == 0 {
		_ = c.conn.SetReadDeadline(time.Time{})
	} else {
		_ = c.conn.SetReadDeadline(time.Now().Add(d))
	}
}

// Close closes the underlying connection.
func (c *Conn) Close() error { return c.conn.Close() }

// WriteMsg encodes msg, seals it if a key is set, and writes it as one line.
func (c *Conn) WriteMsg(msg *message.Message) error {
	raw, err := msg.Encode()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	line := raw
	if c.key != nil {
		sealed, err := c.key.Seal(raw)
		if err != nil {
			return fmt.Errorf("encrypt: %w", err)
		}
		line = []byte(base64.StdEncoding.EncodeToString(sealed))
	}
	line = append(line, '\n')

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	defer func() { _ = c.conn.SetWriteDeadline(time.Time{}) }()
	if _, err := c.conn.Write(line); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ReadMsg reads one line, opens it if a key is set, and decodes it.
func (c *Conn) ReadMsg() (*message.Message, error) {
	line, err := c.readLine()
	if err != nil {
		return nil, err
	}

	raw := line
	if c.key != nil {
		sealed, err := base64.StdEncoding.DecodeString(string(line))
		if err != nil {
			return nil, fmt.Errorf("base64 decode: %w", err)
		}
		if raw, err = c.key.Open(sealed); err != nil {
			return nil, fmt.Errorf("decrypt: %w", err)
		}
	}
	return message.Decode(raw)
}

// readLine returns the next line without its terminator, refusing lines
// longer than MaxMessageSize.
func (c *Conn) readLine() ([]byte, error) {
	var buf bytes.Buffer
	for {
		chunk, err := c.br.ReadSlice('\n')
		if buf.Len()+len(chunk) > MaxMessageSize+1 {
			return nil, ErrTooLarge
		}
		buf.Write(chunk)
		switch {
		case err == nil:
			return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default:
			return nil, err
		}
	}
}
