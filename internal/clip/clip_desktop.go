//go:build darwin || windows || linux

package clip

import (
	"log/slog"

	"golang.design/x/clipboard"
)

type desktopBackend struct{}

// New returns the platform clipboard backend, or the headless backend if the
// display environment is unavailable (e.g. a server without X11 or Wayland).
// clipboard.Init is called here rather than in init() so that CLI
// sub-commands (list, paste, status) don't trigger the warning.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return Headless()
	}
	return desktopBackend{}
}

func (desktopBackend) Name() string { return "system clipboard" }

func (desktopBackend) ReadText() (string, error) {
	b := clipboard.Read(clipboard.FmtText)
	if len(b) == 0 {
		return "", ErrEmpty
	}
	return string(b), nil
}

func (desktopBackend) ReadImage() ([]byte, error) {
	b := clipboard.Read(clipboard.FmtImage)
	if len(b) == 0 {
		return nil, ErrEmpty
	}
	return b, nil
}

// WriteText hands text to the platform clipboard. x/clipboard signals a
// failed write with a nil change channel.
func (desktopBackend) WriteText(text string) error {
	if changed := clipboard.Write(clipboard.FmtText, []byte(text)); changed == nil {
		return ErrUnavailable
	}
	return nil
}

func (desktopBackend) Close() {}
