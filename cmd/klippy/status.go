package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/klippy/internal/ipc"
	"go.klb.dev/klippy/internal/message"
)

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show daemon status",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runStatus(v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addClientFlags(cmd)

	return cmd
}

func runStatus(v *viper.Viper) error {
	client, err := newClient(v)
	if err != nil {
		return err
	}
	resp, err := client.Do(&message.Message{Type: message.TypeStatus})
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	if v.GetBool("json") {
		enc, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(enc))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Version:\t%s\n", resp.Version)
	fmt.Fprintf(w, "Socket:\t%s\n", ipc.SocketPath())
	fmt.Fprintf(w, "Backend:\t%s\n", resp.Backend)
	if !resp.StartedAt.IsZero() {
		fmt.Fprintf(w, "Started:\t%s (%s)\n", resp.StartedAt.Format(time.RFC3339), humanize.Time(resp.StartedAt))
	}
	fmt.Fprintf(w, "Entries:\t%d / %d\n", resp.Count, resp.Capacity)
	return w.Flush()
}
