// Package monitor decides whether the current clipboard contents are a new
// history entry, and writes chosen entries back to the clipboard.
package monitor

import (
	"log/slog"

	"github.com/cespare/xxhash/v2"

	"go.klb.dev/klippy/internal/clip"
	"go.klb.dev/klippy/internal/history"
)

// Monitor remembers the last text and image it has seen on one clipboard
// backend. A Monitor is owned by one goroutine at a time; paste-back uses a
// fresh Monitor so it never disturbs the poller's state.
type Monitor struct {
	backend   clip.Backend
	lastText  *string
	lastImage *uint64
}

// New returns a Monitor with no last-seen state.
func New(backend clip.Backend) *Monitor {
	return &Monitor{backend: backend}
}

// Check reads the clipboard once and records it in store if it is new.
//
// Text is tried first. Changed text always becomes the new last-seen text but
// is only recorded when the store does not already hold an equal text entry,
// so a value pasted back from history is not recorded twice. When text did
// not change (or is unreadable) the image is fingerprinted and any change is
// recorded. Read failures mean there is nothing to do this tick.
func (m *Monitor) Check(store *history.Store) (history.Entry, bool) {
	if text, err := m.backend.ReadText(); err == nil {
		if m.lastText == nil || *m.lastText != text {
			m.lastText = &text
			e, added := store.AddTextIfAbsent(text)
			if !added {
				slog.Debug("clipboard text already in history", "bytes", len(text))
			}
			return e, added
		}
	}

	img, err := m.backend.ReadImage()
	if err != nil {
		return history.Entry{}, false
	}
	fp := Fingerprint(img)
	if m.lastImage != nil && *m.lastImage == fp {
		return history.Entry{}, false
	}
	m.lastImage = &fp
	return store.Add(history.Image(img)), true
}

// SetClipboard writes content to the clipboard. Text also becomes this
// Monitor's last-seen text. Images are not written back.
func (m *Monitor) SetClipboard(c history.Content) error {
	switch v := c.(type) {
	case history.Text:
		if err := m.backend.WriteText(string(v)); err != nil {
			return err
		}
		s := string(v)
		m.lastText = &s
		return nil
	case history.Image:
		// Writing images back is not supported.
	}
	return nil
}

// Fingerprint returns the 64-bit xxhash of raw image bytes.
func Fingerprint(b []byte) uint64 {
	return xxhash.Sum64(b)
}
