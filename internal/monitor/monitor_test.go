package monitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/klippy/internal/clip"
	"go.klb.dev/klippy/internal/history"
)

func TestCheckRecordsNewText(t *testing.T) {
	cb := clip.NewMemory()
	store := history.NewStore(0)
	m := New(cb)

	cb.SetText("first")
	e, ok := m.Check(store)
	require.True(t, ok)
	assert.Equal(t, history.Text("first"), e.Content)

	_, ok = m.Check(store)
	assert.False(t, ok, "unchanged text must not be recorded again")
	assert.Equal(t, 1, store.Len())
}

func TestCheckSuppressesTextAlreadyInHistory(t *testing.T) {
	cb := clip.NewMemory()
	store := history.NewStore(0)
	store.Add(history.Text("hello"))
	m := New(cb)
	m.lastText = ptr("something else")

	cb.SetText("hello")
	_, ok := m.Check(store)

	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())
	require.NotNil(t, m.lastText)
	assert.Equal(t, "hello", *m.lastText)
}

func TestCheckOnlyExactDuplicatesAreSuppressed(t *testing.T) {
	cb := clip.NewMemory()
	store := history.NewStore(0)
	store.Add(history.Text("hello"))
	m := New(cb)

	cb.SetText("hello!")
	_, ok := m.Check(store)

	assert.True(t, ok)
	assert.Equal(t, 2, store.Len())
}

func TestCheckRecordsEveryImageChange(t *testing.T) {
	cb := clip.NewMemory()
	store := history.NewStore(0)
	m := New(cb)

	cb.SetImage([]byte{1, 1, 1})
	_, ok := m.Check(store)
	require.True(t, ok)

	_, ok = m.Check(store)
	assert.False(t, ok, "same image twice in a row is not new")

	cb.SetImage([]byte{2, 2, 2})
	_, ok = m.Check(store)
	require.True(t, ok)

	// Back to the first image: the store already holds it, but images are
	// never checked against the store.
	cb.SetImage([]byte{1, 1, 1})
	_, ok = m.Check(store)
	require.True(t, ok)

	assert.Equal(t, 3, store.Len())
	for _, e := range store.All() {
		assert.Equal(t, "image", e.Content.Kind())
	}
}

func TestCheckPrefersChangedTextOverImage(t *testing.T) {
	cb := &splitClipboard{text: "t", image: []byte{9}}
	store := history.NewStore(0)
	m := New(cb)

	e, ok := m.Check(store)
	require.True(t, ok)
	assert.Equal(t, history.Text("t"), e.Content)
	assert.Equal(t, 1, store.Len())

	// Text unchanged now, so the image gets its turn.
	e, ok = m.Check(store)
	require.True(t, ok)
	assert.Equal(t, history.Image{9}, e.Content)
}

func TestCheckSkipsUnreadableClipboard(t *testing.T) {
	cb := clip.NewMemory()
	cb.SetText("x")
	cb.Fail(clip.ErrUnavailable)
	store := history.NewStore(0)
	m := New(cb)

	_, ok := m.Check(store)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())

	cb.Fail(nil)
	_, ok = m.Check(store)
	assert.True(t, ok, "next tick retries")
}

func TestCheckEmptyClipboard(t *testing.T) {
	_, ok := New(clip.NewMemory()).Check(history.NewStore(0))
	assert.False(t, ok)
}

func TestSetClipboardText(t *testing.T) {
	cb := clip.NewMemory()
	store := history.NewStore(0)
	m := New(cb)

	require.NoError(t, m.SetClipboard(history.Text("pasted")))

	got, err := cb.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "pasted", got)

	_, ok := m.Check(store)
	assert.False(t, ok, "own write is not new to the same monitor")
}

func TestSetClipboardImageIsNoop(t *testing.T) {
	cb := clip.NewMemory()
	cb.SetText("keep")
	m := New(cb)

	require.NoError(t, m.SetClipboard(history.Image{1, 2}))

	got, err := cb.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "keep", got)
	assert.Equal(t, 0, cb.Writes())
	assert.Nil(t, m.lastText)
}

func TestSetClipboardWriteFailure(t *testing.T) {
	cb := clip.NewMemory()
	cb.Fail(clip.ErrUnavailable)
	m := New(cb)

	err := m.SetClipboard(history.Text("x"))
	assert.True(t, errors.Is(err, clip.ErrUnavailable))
	assert.Nil(t, m.lastText)
}

func TestPasteBackIsNotRecordedTwice(t *testing.T) {
	cb := clip.NewMemory()
	store := history.NewStore(0)
	poller := New(cb)

	cb.SetText("a")
	poller.Check(store)
	cb.SetText("b")
	poller.Check(store)
	require.Equal(t, 2, store.Len())

	// Paste "a" back through a throwaway monitor; the polling monitor still
	// remembers "b" and sees a change, but "a" is already stored.
	require.NoError(t, New(cb).SetClipboard(history.Text("a")))
	_, ok := poller.Check(store)

	assert.False(t, ok)
	assert.Equal(t, 2, store.Len())
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abc")))
	assert.NotEqual(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abd")))
}

func ptr(s string) *string { return &s }

// splitClipboard reports text and an image at the same time, which some
// platforms do for rich copies.
type splitClipboard struct {
	text  string
	image []byte
}

func (c *splitClipboard) Name() string               { return "split" }
func (c *splitClipboard) ReadText() (string, error)  { return c.text, nil }
func (c *splitClipboard) ReadImage() ([]byte, error) { return c.image, nil }
func (c *splitClipboard) WriteText(s string) error   { c.text = s; return nil }
func (c *splitClipboard) Close()                     {}
