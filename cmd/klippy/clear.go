package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/klippy/internal/message"
)

func newClearCmd() *cobra.Command {
	return newSignalCmd("clear", "Forget every history entry", message.TypeClear)
}

func newQuitCmd() *cobra.Command {
	return newSignalCmd("quit", "Stop the running daemon", message.TypeQuit)
}

// newSignalCmd builds a command that sends one argument-less request.
func newSignalCmd(use, short string, typ message.Type) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient(v)
			if err != nil {
				return err
			}
			if _, err := client.Do(&message.Message{Type: typ}); err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			return nil
		},
	}
	addClientFlags(cmd)

	return cmd
}
