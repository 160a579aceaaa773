//go:build windows || (cgo && (darwin || linux))

package hotkey

import (
	"context"
	"log/slog"

	"golang.design/x/hotkey"

	"go.klb.dev/klippy/internal/dispatch"
)

var digitKeys = [Count]hotkey.Key{
	hotkey.Key0, hotkey.Key1, hotkey.Key2, hotkey.Key3, hotkey.Key4,
	hotkey.Key5, hotkey.Key6, hotkey.Key7, hotkey.Key8, hotkey.Key9,
}

func listen(ctx context.Context, events Sender) int {
	registered := 0
	for i, key := range digitKeys {
		hk := hotkey.New([]hotkey.Modifier{modifier}, key)
		if err := hk.Register(); err != nil {
			slog.Warn("hotkey unavailable", "key", Hint(i), "err", err)
			continue
		}
		registered++
		go forward(ctx, hk, i, events)
	}
	slog.Info("hotkeys registered", "count", registered, "modifier", modifierName)
	return registered
}

func forward(ctx context.Context, hk *hotkey.Hotkey, index int, events Sender) {
	defer func() { _ = hk.Unregister() }()
	for {
		select {
		case <-ctx.Done():
			return
		case <-hk.Keydown():
			if !events.Send(dispatch.PasteRequested{Index: index}) {
				return
			}
		}
	}
}
