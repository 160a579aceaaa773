//go:build linux && cgo

package hotkey

import "golang.design/x/hotkey"

// Mod4 is the Super key under X11.
const (
	modifier     = hotkey.Mod4
	modifierName = "Super"
)
