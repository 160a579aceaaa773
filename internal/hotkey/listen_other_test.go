//go:build !windows && !(cgo && (darwin || linux))

package hotkey

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.klb.dev/klippy/internal/dispatch"
)

type refuse struct{}

func (refuse) Send(dispatch.Event) bool { return false }

func TestListenUnsupportedRegistersNothing(t *testing.T) {
	assert.Equal(t, 0, Listen(context.Background(), refuse{}))
	assert.Equal(t, "Super+3", Hint(3))
}
