//go:build darwin && cgo

package hotkey

import "golang.design/x/hotkey"

const (
	modifier     = hotkey.ModCmd
	modifierName = "Cmd"
)
