//go:build windows

package hotkey

import "golang.design/x/hotkey"

const (
	modifier     = hotkey.ModWin
	modifierName = "Win"
)
