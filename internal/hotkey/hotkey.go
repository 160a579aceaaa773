// Package hotkey registers the global Super+0..9 (Cmd+0..9 on macOS)
// shortcuts that paste history entries 0..9.
package hotkey

import (
	"context"
	"fmt"

	"go.klb.dev/klippy/internal/dispatch"
)

// Count is how many numeric shortcuts exist (digits 0..9).
const Count = 10

// Sender accepts coordinator events. *dispatch.Coordinator satisfies it.
type Sender interface {
	Send(dispatch.Event) bool
}

// Hint returns the shortcut label for history index i, or "" if i has none.
func Hint(i int) string {
	if i < 0 || i >= Count {
		return ""
	}
	return fmt.Sprintf("%s+%d", modifierName, i)
}

// Listen registers every digit shortcut and forwards presses as
// PasteRequested events until ctx is cancelled. A shortcut that another
// application already owns is logged and skipped. Listen returns how many
// shortcuts were registered; on platforms without global hotkeys it is 0.
func Listen(ctx context.Context, events Sender) int {
	return listen(ctx, events)
}
