//go:build !windows && !(cgo && (darwin || linux))

package hotkey

import (
	"context"
	"log/slog"
	"runtime"
)

// Only used for menu hints here; nothing is registered.
const modifierName = "Super"

func listen(_ context.Context, _ Sender) int {
	slog.Warn("global hotkeys unsupported on this platform", "os", runtime.GOOS)
	return 0
}
