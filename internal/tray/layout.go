package tray

import (
	"go.klb.dev/klippy/internal/history"
	"go.klb.dev/klippy/internal/hotkey"
)

// Slot is the desired state of one history menu item.
type Slot struct {
	Title   string
	Tooltip string
	Enabled bool
	Visible bool
}

// Layout maps a history snapshot onto history.MenuLimit slots. An empty
// history shows a single disabled placeholder.
func Layout(entries []history.Entry) []Slot {
	slots := make([]Slot, history.MenuLimit)
	visible := history.Visible(entries)
	if len(visible) == 0 {
		slots[0] = Slot{Title: history.EmptyLabel, Visible: true}
		return slots
	}
	for i, e := range visible {
		slots[i] = Slot{
			Title:   history.Label(e),
			Tooltip: hotkey.Hint(i),
			Enabled: true,
			Visible: true,
		}
	}
	return slots
}
