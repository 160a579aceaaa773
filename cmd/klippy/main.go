// klippy: clipboard history in the system tray.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "klippy",
		Short: "Clipboard history manager",
		Long: `klippy watches the system clipboard and keeps the last 50 distinct
items it saw. Pick one from the tray menu, press Super+0..9 (Cmd+0..9 on
macOS) or run "klippy paste N" to put it back on the clipboard.

Run "klippy run" to start the daemon. The list/show/paste/clear/status/quit
commands talk to the running daemon over a local socket.

Config file search order (first found wins):
  /etc/klippy/klippy.toml
  $HOME/.config/klippy/klippy.toml
  path supplied via --config

All flags can be set via KLIPPY_<FLAG> env vars or config-file keys.
See "klippy run --help" for the full flag reference.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newListCmd(),
		newShowCmd(),
		newPasteCmd(),
		newClearCmd(),
		newQuitCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("klippy %s\n", Version)
		},
	}
}
