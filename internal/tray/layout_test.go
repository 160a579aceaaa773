package tray

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/klippy/internal/history"
	"go.klb.dev/klippy/internal/hotkey"
)

func TestLayoutEmpty(t *testing.T) {
	slots := Layout(nil)
	require.Len(t, slots, history.MenuLimit)
	assert.Equal(t, Slot{Title: history.EmptyLabel, Visible: true}, slots[0])
	for _, s := range slots[1:] {
		assert.False(t, s.Visible)
	}
}

func TestLayoutCapsAndLabels(t *testing.T) {
	store := history.NewStore(0)
	for i := 0; i < 40; i++ {
		store.Add(history.Text(fmt.Sprintf("entry\n%d", i)))
	}
	store.Add(history.Image{1})

	slots := Layout(store.All())
	require.Len(t, slots, history.MenuLimit)

	assert.Equal(t, history.ImageLabel, slots[0].Title)
	assert.Equal(t, "entry 39", slots[1].Title)
	assert.Equal(t, hotkey.Hint(0), slots[0].Tooltip)
	assert.Equal(t, hotkey.Hint(9), slots[9].Tooltip)
	assert.Empty(t, slots[10].Tooltip)
	for _, s := range slots {
		assert.True(t, s.Visible)
		assert.True(t, s.Enabled)
	}
}

func TestLayoutPartial(t *testing.T) {
	store := history.NewStore(0)
	store.Add(history.Text("a"))
	store.Add(history.Text("b"))

	slots := Layout(store.All())
	assert.Equal(t, "b", slots[0].Title)
	assert.Equal(t, "a", slots[1].Title)
	assert.False(t, slots[2].Visible)
}
