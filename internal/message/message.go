// Package message defines the klippy control protocol spoken between the CLI
// and a running daemon over the local socket.
//
// Every message is one line of JSON. A connection carries exactly one request
// and one response.
package message

import (
	"encoding/json"
	"fmt"
	"time"
)

// Type identifies the kind of message.
type Type string

const (
	// Requests
	TypeList   Type = "LIST"
	TypeShow   Type = "SHOW"
	TypePaste  Type = "PASTE"
	TypeClear  Type = "CLEAR"
	TypeQuit   Type = "QUIT"
	TypeStatus Type = "STATUS"

	// Responses
	TypeItems          Type = "ITEMS"
	TypeOK             Type = "OK"
	TypeStatusResponse Type = "STATUS_RESPONSE"
	TypeError          Type = "ERROR"
)

// Code classifies an ERROR so clients can react to it without parsing text.
type Code string

// CodeStale marks a PASTE whose pinned entry is no longer at its index.
const CodeStale Code = "STALE"

// Item describes one history entry.
type Item struct {
	Index      int       `json:"index"`
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Label      string    `json:"label"`
	Text       string    `json:"text,omitempty"` // SHOW only
	Size       int       `json:"size"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Message is the top-level envelope for requests and responses.
type Message struct {
	Type Type `json:"type"`

	// SHOW, PASTE: Index selects the entry. For PASTE a non-empty ID must
	// still be the entry at Index, otherwise the request is refused.
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`

	// LIST: zero means the menu limit.
	Limit int `json:"limit,omitempty"`

	// ITEMS
	Items    []Item `json:"items,omitempty"`
	Count    int    `json:"count,omitempty"`
	Capacity int    `json:"capacity,omitempty"`

	// STATUS_RESPONSE
	Version   string    `json:"version,omitempty"`
	Backend   string    `json:"backend,omitempty"`
	StartedAt time.Time `json:"started_at,omitzero"`

	// ERROR
	Error string `json:"error,omitempty"`
	Code  Code   `json:"code,omitempty"`
}

// Encode serialises the message to JSON without a trailing newline.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode deserialises a message from raw JSON bytes.
func Decode(b []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("message decode: %w", err)
	}
	return &m, nil
}

// Errorf builds an ERROR response.
func Errorf(format string, args ...any) *Message {
	return &Message{Type: TypeError, Error: fmt.Sprintf(format, args...)}
}

// Err returns the response's error, or nil if it is not an ERROR.
func (m *Message) Err() error {
	if m.Type != TypeError {
		return nil
	}
	return fmt.Errorf("daemon: %s", m.Error)
}
