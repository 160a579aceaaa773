// Package control serves the daemon side of the local control socket: it
// answers snapshot queries straight from the history store and turns paste,
// clear and quit requests into coordinator events.
package control

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"

	"go.klb.dev/klippy/internal/crypto"
	"go.klb.dev/klippy/internal/dispatch"
	"go.klb.dev/klippy/internal/history"
	"go.klb.dev/klippy/internal/message"
	"go.klb.dev/klippy/internal/wire"
)

const (
	readTimeout  = 5 * time.Second
	pasteTimeout = 5 * time.Second
)

// ErrStale is reported when a paste names an entry that is no longer at the
// requested index. Client.Do returns it wrapped, so errors.Is works across
// the socket.
var ErrStale = dispatch.ErrStale

// Sender accepts coordinator events. *dispatch.Coordinator satisfies it.
type Sender interface {
	Send(dispatch.Event) bool
}

// Server answers control requests.
type Server struct {
	store   *history.Store
	events  Sender
	key     *crypto.Key
	version string
	backend string
	started time.Time
}

// NewServer returns a Server. key may be nil to accept plain JSON.
func NewServer(store *history.Store, events Sender, key *crypto.Key, version, backend string) *Server {
	return &Server{
		store:   store,
		events:  events,
		key:     key,
		version: version,
		backend: backend,
		started: time.Now(),
	}
}

// Serve accepts connections until ctx is cancelled or ln fails.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	wc := wire.New(conn, s.key)

	wc.SetReadDeadline(readTimeout)
	req, err := wc.ReadMsg()
	if err != nil {
		slog.Debug("control: bad request", "err", err)
		return
	}
	wc.SetReadDeadline(0)

	resp := s.Handle(req)
	if err := wc.WriteMsg(resp); err != nil {
		slog.Debug("control: write failed", "err", err)
	}
}

// Handle answers one request.
func (s *Server) Handle(req *message.Message) *message.Message {
	switch req.Type {
	case message.TypeList:
		return s.list(req.Limit)

	case message.TypeShow:
		e, ok := s.store.At(req.Index)
		if !ok {
			return message.Errorf("no entry at index %d", req.Index)
		}
		it := toItem(req.Index, e)
		if t, ok := e.Content.(history.Text); ok {
			it.Text = string(t)
		}
		return &message.Message{Type: message.TypeItems, Items: []message.Item{it}, Count: s.store.Len(), Capacity: s.store.Cap()}

	case message.TypePaste:
		return s.paste(req)

	case message.TypeClear:
		return s.send(dispatch.ClearRequested{})

	case message.TypeQuit:
		return s.send(dispatch.QuitRequested{})

	case message.TypeStatus:
		return &message.Message{
			Type:      message.TypeStatusResponse,
			Version:   s.version,
			Backend:   s.backend,
			StartedAt: s.started,
			Count:     s.store.Len(),
			Capacity:  s.store.Cap(),
		}

	default:
		return message.Errorf("unknown request type %q", req.Type)
	}
}

func (s *Server) list(limit int) *message.Message {
	entries := s.store.All()
	if limit <= 0 {
		entries = history.Visible(entries)
	} else if limit < len(entries) {
		entries = entries[:limit]
	}
	items := make([]message.Item, 0, len(entries))
	for i, e := range entries {
		items = append(items, toItem(i, e))
	}
	return &message.Message{
		Type:     message.TypeItems,
		Items:    items,
		Count:    s.store.Len(),
		Capacity: s.store.Cap(),
	}
}

// paste checks the request against the current snapshot, then waits for the
// coordinator, which checks again before writing the clipboard.
func (s *Server) paste(req *message.Message) *message.Message {
	e, ok := s.store.At(req.Index)
	if !ok {
		return message.Errorf("no entry at index %d", req.Index)
	}
	var pin uuid.UUID
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return message.Errorf("invalid entry id %q", req.ID)
		}
		if e.ID != id {
			return staleError()
		}
		pin = id
	}
	if _, ok := e.Content.(history.Image); ok {
		return message.Errorf("entry %d is an image; images cannot be pasted back", req.Index)
	}

	reply := make(chan error, 1)
	if !s.events.Send(dispatch.PasteRequested{Index: req.Index, ID: pin, Reply: reply}) {
		return message.Errorf("daemon is shutting down")
	}
	select {
	case err := <-reply:
		switch {
		case err == nil:
			return &message.Message{Type: message.TypeOK}
		case errors.Is(err, dispatch.ErrStale):
			return staleError()
		default:
			return message.Errorf("paste %d: %v", req.Index, err)
		}
	case <-time.After(pasteTimeout):
		return message.Errorf("paste %d: no answer from coordinator", req.Index)
	}
}

func staleError() *message.Message {
	return &message.Message{Type: message.TypeError, Code: message.CodeStale, Error: ErrStale.Error()}
}

func (s *Server) send(ev dispatch.Event) *message.Message {
	if !s.events.Send(ev) {
		return message.Errorf("daemon is shutting down")
	}
	return &message.Message{Type: message.TypeOK}
}

func toItem(index int, e history.Entry) message.Item {
	return message.Item{
		Index:      index,
		ID:         e.ID.String(),
		Kind:       e.Content.Kind(),
		Label:      history.Label(e),
		Size:       e.Content.Size(),
		RecordedAt: e.RecordedAt,
	}
}
