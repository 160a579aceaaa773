// Package clip provides the system clipboard to the history engine.
// Build constraints select the implementation:
//
//	clip_desktop.go  macOS, Windows, Linux via golang.design/x/clipboard
//	clip_other.go    every other platform gets the headless backend
//
// A backend that cannot be initialised falls back to headless. The in-process
// Memory backend is selected with --backend memory and is what tests use.
package clip

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty means the clipboard holds nothing of the requested kind.
	ErrEmpty = errors.New("clipboard: no data of requested kind")
	// ErrUnavailable means the clipboard could not be accessed right now.
	ErrUnavailable = errors.New("clipboard: unavailable")
)

// Backend is the interface that all clipboard implementations satisfy.
// Callers treat every error as "nothing this time" and try again on the next
// poll.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadText returns the clipboard as text.
	ReadText() (string, error)

	// ReadImage returns the clipboard image as opaque bytes.
	ReadImage() ([]byte, error)

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error

	// Close releases any resources held by the backend.
	Close()
}

// Kind names a backend selection for Open.
type Kind string

const (
	KindAuto     Kind = "auto"
	KindMemory   Kind = "memory"
	KindHeadless Kind = "headless"
)

// Open returns the backend for kind. KindAuto picks the platform backend.
func Open(kind Kind) (Backend, error) {
	switch kind {
	case KindAuto, "":
		return New(), nil
	case KindMemory:
		return NewMemory(), nil
	case KindHeadless:
		return Headless(), nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q (want auto|memory|headless)", kind)
	}
}
