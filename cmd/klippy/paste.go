package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/klippy/internal/message"
)

func newPasteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "paste INDEX",
		Short: "Put a history entry back on the clipboard",
		Long: `Asks the running daemon to copy history entry INDEX (0 = newest) back
onto the system clipboard, exactly like choosing it from the tray menu.

Pass --id (from "klippy list --json") to refuse the paste if the history has
changed since it was listed.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runPaste(v, args[0]) },
	}

	cmd.Flags().String("id", "", "entry id that must still be at INDEX")
	addClientFlags(cmd)

	return cmd
}

func runPaste(v *viper.Viper, arg string) error {
	index, err := parseIndex(arg)
	if err != nil {
		return err
	}
	client, err := newClient(v)
	if err != nil {
		return err
	}
	if _, err := client.Do(&message.Message{
		Type:  message.TypePaste,
		Index: index,
		ID:    v.GetString("id"),
	}); err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	return nil
}
