package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/klippy/internal/history"
	"go.klb.dev/klippy/internal/message"
)

func newListCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clipboard history, newest first",
		Long: `Prints the history held by the running daemon, one entry per line, in
the same form as the tray menu. Use the INDEX column with "klippy paste" or
"klippy show".`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runList(v) },
	}

	f := cmd.Flags()
	f.Int("limit", history.MenuLimit, "maximum entries to print (0 = menu limit)")
	f.Bool("json", false, "output raw JSON")
	addClientFlags(cmd)

	return cmd
}

func runList(v *viper.Viper) error {
	client, err := newClient(v)
	if err != nil {
		return err
	}
	resp, err := client.Do(&message.Message{Type: message.TypeList, Limit: v.GetInt("limit")})
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if v.GetBool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp.Items)
	}

	if len(resp.Items) == 0 {
		fmt.Println(history.EmptyLabel)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "INDEX\tAGE\tLABEL\n")
	for _, it := range resp.Items {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", it.Index, humanize.Time(it.RecordedAt), itemLabel(it))
	}
	_ = tw.Flush()

	if resp.Count > len(resp.Items) {
		fmt.Printf("(%d of %d entries shown)\n", len(resp.Items), resp.Count)
	}
	return nil
}

// itemLabel adds the payload size to image entries, whose labels carry no
// other distinguishing detail.
func itemLabel(it message.Item) string {
	if it.Kind == "image" {
		return fmt.Sprintf("%s (%s)", it.Label, humanize.Bytes(uint64(it.Size)))
	}
	return it.Label
}
