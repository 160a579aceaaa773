package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxItems is the default history capacity.
const MaxItems = 50

// Entry is one recorded clipboard snapshot. Entries are created by the Store
// and never modified afterwards.
type Entry struct {
	ID         uuid.UUID
	Content    Content
	RecordedAt time.Time
}

// Store is a bounded, ordered collection of entries, most recent first.
// Insertion order is the only order.
type Store struct {
	mu       sync.Mutex
	items    []Entry
	capacity int
	now      func() time.Time
}

// NewStore returns an empty Store. A capacity of zero or less selects MaxItems.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = MaxItems
	}
	return &Store{
		items:    make([]Entry, 0, capacity+1),
		capacity: capacity,
		now:      time.Now,
	}
}

// Add records content at the front of the history and drops the oldest
// entries beyond capacity. It always succeeds.
func (s *Store) Add(c Content) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(c)
}

// AddTextIfAbsent records text unless an equal text entry is already stored.
// The scan and the insert happen under one lock acquisition.
func (s *Store) AddTextIfAbsent(text string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.containsTextLocked(text) {
		return Entry{}, false
	}
	return s.addLocked(Text(text)), true
}

// All returns a copy of the entries, most recent first.
func (s *Store) All() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.items))
	copy(out, s.items)
	return out
}

// At returns the entry at index, or false if index is out of range.
func (s *Store) At(index int) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return Entry{}, false
	}
	return s.items[index], true
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.items)
	s.items = s.items[:0]
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Cap returns the maximum number of entries the store keeps.
func (s *Store) Cap() int { return s.capacity }

// Must be called with s.mu held.
func (s *Store) addLocked(c Content) Entry {
	e := Entry{
		ID:         uuid.New(),
		Content:    c,
		RecordedAt: s.now(),
	}
	s.items = append(s.items, Entry{})
	copy(s.items[1:], s.items)
	s.items[0] = e
	if len(s.items) > s.capacity {
		clear(s.items[s.capacity:])
		s.items = s.items[:s.capacity]
	}
	return e
}

// Must be called with s.mu held.
func (s *Store) containsTextLocked(text string) bool {
	want := Text(text)
	for _, e := range s.items {
		if Equal(e.Content, want) {
			return true
		}
	}
	return false
}
