// Package poller drives a Monitor on a fixed interval and tells the
// coordinator when the history gained an entry.
package poller

import (
	"context"
	"log/slog"
	"time"

	"go.klb.dev/klippy/internal/clip"
	"go.klb.dev/klippy/internal/dispatch"
	"go.klb.dev/klippy/internal/history"
	"go.klb.dev/klippy/internal/monitor"
)

// DefaultInterval is how often the clipboard is read.
const DefaultInterval = 500 * time.Millisecond

// Notifier receives HistoryChanged events. *dispatch.Coordinator satisfies it.
type Notifier interface {
	Send(dispatch.Event) bool
}

// Poller owns the long-lived Monitor for the system clipboard.
type Poller struct {
	monitor  *monitor.Monitor
	store    *history.Store
	notify   Notifier
	interval time.Duration
}

// New creates a Poller but does not start it. A zero interval selects
// DefaultInterval.
func New(backend clip.Backend, store *history.Store, notify Notifier, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		monitor:  monitor.New(backend),
		store:    store,
		notify:   notify,
		interval: interval,
	}
}

// Tick runs one poll and reports whether a new entry was recorded, in which
// case HistoryChanged has been sent.
func (p *Poller) Tick() bool {
	e, ok := p.monitor.Check(p.store)
	if !ok {
		return false
	}
	slog.Debug("clipboard recorded",
		"kind", e.Content.Kind(),
		"size_bytes", e.Content.Size(),
		"entries", p.store.Len(),
	)
	p.notify.Send(dispatch.HistoryChanged{})
	return true
}

// Run polls until ctx is cancelled; call in a goroutine.
func (p *Poller) Run(ctx context.Context) {
	slog.Info("clipboard poller started", "interval", p.interval)

	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Debug("clipboard poller stopped", "reason", ctx.Err())
			return
		case <-t.C:
			p.Tick()
		}
	}
}
