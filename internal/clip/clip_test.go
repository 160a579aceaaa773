package clip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHoldsOneKindAtATime(t *testing.T) {
	m := NewMemory()

	_, err := m.ReadText()
	assert.ErrorIs(t, err, ErrEmpty)

	m.SetImage([]byte{1, 2, 3})
	_, err = m.ReadText()
	assert.ErrorIs(t, err, ErrEmpty)
	img, err := m.ReadImage()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, img)

	require.NoError(t, m.WriteText("hi"))
	text, err := m.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
	_, err = m.ReadImage()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, 1, m.Writes())
}

func TestMemoryFail(t *testing.T) {
	m := NewMemory()
	m.SetText("x")
	boom := errors.New("boom")
	m.Fail(boom)

	_, err := m.ReadText()
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, m.WriteText("y"), boom)
	assert.Equal(t, 0, m.Writes())

	m.Fail(nil)
	text, err := m.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "x", text)
}

func TestHeadlessIsAlwaysUnavailable(t *testing.T) {
	h := Headless()
	_, err := h.ReadText()
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = h.ReadImage()
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, h.WriteText("dropped"))
}

func TestOpen(t *testing.T) {
	b, err := Open(KindMemory)
	require.NoError(t, err)
	assert.Equal(t, "memory", b.Name())

	b, err = Open(KindHeadless)
	require.NoError(t, err)
	assert.Equal(t, "headless (no-op)", b.Name())

	_, err = Open("bogus")
	assert.Error(t, err)
}
