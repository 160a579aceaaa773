// Package tray shows the history in a system tray menu and turns menu
// clicks into coordinator events.
//
// The menu is built once with a fixed number of item slots; Render retitles
// and shows or hides slots instead of rebuilding the menu, so each slot keeps
// a single click listener for the life of the process.
package tray

import (
	"log/slog"
	"sync"

	"fyne.io/systray"

	"go.klb.dev/klippy/internal/dispatch"
	"go.klb.dev/klippy/internal/history"
)

const (
	title   = "📎"
	tooltip = "Klippy - Clipboard Manager"
)

// Sender accepts coordinator events. *dispatch.Coordinator satisfies it.
type Sender interface {
	Send(dispatch.Event) bool
}

// Tray is a dispatch.Renderer backed by the system tray.
type Tray struct {
	events Sender

	mu    sync.Mutex
	slots []*systray.MenuItem
}

// New returns an empty Tray. Nothing is shown until Run.
func New() *Tray {
	return &Tray{}
}

// Run builds the menu, sends its clicks to events, calls start, and then
// blocks in the platform event loop until Quit. It must be called from the
// main goroutine.
func (t *Tray) Run(events Sender, start func()) {
	t.events = events
	systray.Run(func() {
		t.build()
		start()
	}, func() {
		slog.Debug("tray exited")
	})
}

// Quit ends the event loop started by Run.
func (t *Tray) Quit() { systray.Quit() }

func (t *Tray) build() {
	systray.SetTitle(title)
	systray.SetTooltip(tooltip)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.slots = make([]*systray.MenuItem, history.MenuLimit)
	for i := range t.slots {
		item := systray.AddMenuItem(history.EmptyLabel, "")
		item.Hide()
		t.slots[i] = item
		go t.forward(item.ClickedCh, dispatch.PasteRequested{Index: i})
	}
	systray.AddSeparator()
	clearAll := systray.AddMenuItem("Clear All", "Forget every history entry")
	quit := systray.AddMenuItem("Quit", "Stop klippy")
	go t.forward(clearAll.ClickedCh, dispatch.ClearRequested{})
	go t.forward(quit.ClickedCh, dispatch.QuitRequested{})

	t.applyLocked(Layout(nil))
}

func (t *Tray) forward(clicks <-chan struct{}, ev dispatch.Event) {
	for range clicks {
		if !t.events.Send(ev) {
			return
		}
	}
}

// Render implements dispatch.Renderer.
func (t *Tray) Render(entries []history.Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.slots == nil {
		return
	}
	t.applyLocked(Layout(entries))
}

// Must be called with t.mu held.
func (t *Tray) applyLocked(slots []Slot) {
	for i, item := range t.slots {
		s := slots[i]
		if !s.Visible {
			item.Hide()
			continue
		}
		item.SetTitle(s.Title)
		item.SetTooltip(s.Tooltip)
		if s.Enabled {
			item.Enable()
		} else {
			item.Disable()
		}
		item.Show()
	}
}
