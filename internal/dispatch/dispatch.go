// Package dispatch implements the coordinator: the single consumer that
// reacts to events from the poller, the tray, the hotkeys and the control
// socket. Producers only ever call Send; everything that mutates the history
// in response to a user action happens on the coordinator goroutine.
package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"go.klb.dev/klippy/internal/clip"
	"go.klb.dev/klippy/internal/history"
	"go.klb.dev/klippy/internal/monitor"
)

// DefaultQueueSize is the event channel depth.
const DefaultQueueSize = 64

// Paste outcomes reported through PasteRequested.Reply.
var (
	ErrNoEntry = errors.New("no history entry at that index")
	ErrStale   = errors.New("stale selection: history changed since it was listed")
	ErrImage   = errors.New("images cannot be pasted back")
)

// Event is something the coordinator reacts to. The set is closed.
type Event interface{ event() }

// HistoryChanged means the poller recorded a new entry.
type HistoryChanged struct{}

// PasteRequested asks for history entry Index to be put back on the clipboard.
// A non-nil ID pins the request to that entry: if the history has moved and
// a different entry sits at Index, nothing is written. When Reply is set the
// outcome is sent on it; it must have room for one value.
type PasteRequested struct {
	Index int
	ID    uuid.UUID
	Reply chan<- error
}

// ClearRequested asks for the whole history to be dropped.
type ClearRequested struct{}

// QuitRequested terminates the coordinator.
type QuitRequested struct{}

func (HistoryChanged) event() {}
func (PasteRequested) event() {}
func (ClearRequested) event() {}
func (QuitRequested) event()  {}

// Renderer shows a history snapshot to the user. Render is called on the
// coordinator goroutine and receives a copy it may keep.
type Renderer interface {
	Render(entries []history.Entry)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func([]history.Entry)

func (f RendererFunc) Render(entries []history.Entry) { f(entries) }

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithQueueSize sets the event channel depth.
func WithQueueSize(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.events = make(chan Event, n)
		}
	}
}

// Coordinator serialises events from every producer into one FIFO stream.
type Coordinator struct {
	store    *history.Store
	backend  clip.Backend
	renderer Renderer

	events   chan Event
	done     chan struct{}
	stopOnce sync.Once
}

// New returns a Coordinator. Call Run to start consuming events.
func New(store *history.Store, backend clip.Backend, r Renderer, opts ...Option) *Coordinator {
	if r == nil {
		r = LogRenderer{}
	}
	c := &Coordinator{
		store:    store,
		backend:  backend,
		renderer: r,
		events:   make(chan Event, DefaultQueueSize),
		done:     make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Send enqueues ev in arrival order. It blocks while the queue is full and
// returns false once the coordinator has terminated.
func (c *Coordinator) Send(ev Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	}
}

// Done is closed when Run returns.
func (c *Coordinator) Done() <-chan struct{} { return c.done }

// Run renders the current history and then handles events until a
// QuitRequested arrives (returns nil) or ctx is cancelled (returns ctx.Err()).
// Run must be called at most once.
func (c *Coordinator) Run(ctx context.Context) error {
	defer c.stop()

	c.render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-c.events:
			if quit := c.handle(ev); quit {
				slog.Info("coordinator stopping")
				return nil
			}
		}
	}
}

func (c *Coordinator) handle(ev Event) (quit bool) {
	switch ev := ev.(type) {
	case HistoryChanged:
		c.render()
	case PasteRequested:
		err := c.paste(ev)
		if ev.Reply != nil {
			ev.Reply <- err
		}
	case ClearRequested:
		c.store.Clear()
		slog.Info("history cleared")
		c.render()
	case QuitRequested:
		return true
	default:
		slog.Warn("coordinator: unknown event", "type", ev)
	}
	return false
}

// paste writes the requested entry back through a throwaway Monitor so the
// poller's last-seen state is left alone.
func (c *Coordinator) paste(req PasteRequested) error {
	index := req.Index
	e, ok := c.store.At(index)
	if !ok {
		slog.Debug("paste ignored: index out of range", "index", index, "entries", c.store.Len())
		return ErrNoEntry
	}
	if req.ID != uuid.Nil && e.ID != req.ID {
		slog.Info("paste refused: entry moved", "index", index, "want", req.ID, "have", e.ID)
		return ErrStale
	}
	if _, ok := e.Content.(history.Image); ok {
		slog.Info("paste skipped: images are not written back", "index", index)
		return ErrImage
	}
	if err := monitor.New(c.backend).SetClipboard(e.Content); err != nil {
		slog.Warn("paste failed", "index", index, "err", err)
		return err
	}
	LogEntry("pasted", index, e)
	return nil
}

func (c *Coordinator) render() {
	c.renderer.Render(c.store.All())
}

func (c *Coordinator) stop() {
	c.stopOnce.Do(func() { close(c.done) })
}
