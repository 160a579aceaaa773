package dispatch

import (
	"context"
	"log/slog"

	"go.klb.dev/klippy/internal/history"
)

// LogEntry logs a history entry at INFO (kind, size) and DEBUG (label).
// Full clipboard text is never logged.
func LogEntry(event string, index int, e history.Entry) {
	slog.Info(event,
		"index", index,
		"kind", e.Content.Kind(),
		"size_bytes", e.Content.Size(),
	)
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("history entry", "id", e.ID, "label", history.Label(e))
	}
}

// LogRenderer is the Renderer used when there is no tray: it only logs the
// size of each snapshot.
type LogRenderer struct{}

func (LogRenderer) Render(entries []history.Entry) {
	slog.Debug("history snapshot",
		"entries", len(entries),
		"visible", len(history.Visible(entries)),
	)
}
