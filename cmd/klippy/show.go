package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/klippy/internal/message"
)

func newShowCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "show INDEX",
		Short: "Print one history entry to stdout (like pbpaste)",
		Long: `Writes the full text of history entry INDEX to stdout without touching
the clipboard. Image entries cannot be printed.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runShow(v, args[0]) },
	}
	addClientFlags(cmd)

	return cmd
}

func runShow(v *viper.Viper, arg string) error {
	index, err := parseIndex(arg)
	if err != nil {
		return err
	}
	client, err := newClient(v)
	if err != nil {
		return err
	}
	resp, err := client.Do(&message.Message{Type: message.TypeShow, Index: index})
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	if len(resp.Items) == 0 {
		return fmt.Errorf("show: no entry at index %d", index)
	}
	it := resp.Items[0]
	if it.Kind != "text" {
		return fmt.Errorf("show: entry %d is an image", index)
	}
	_, err = os.Stdout.WriteString(it.Text)
	return err
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid index %q: want a non-negative integer", s)
	}
	return n, nil
}
