package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/klippy/internal/clip"
	"go.klb.dev/klippy/internal/control"
	"go.klb.dev/klippy/internal/crypto"
	"go.klb.dev/klippy/internal/dispatch"
	"go.klb.dev/klippy/internal/history"
	"go.klb.dev/klippy/internal/hotkey"
	"go.klb.dev/klippy/internal/ipc"
	"go.klb.dev/klippy/internal/poller"
	"go.klb.dev/klippy/internal/tray"
)

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the clipboard history daemon",
		Long: `Starts klippy: polls the clipboard, keeps the history, shows the tray
menu, registers the numeric hotkeys and serves the local control socket.

Config file search order:
  /etc/klippy/klippy.toml
  $HOME/.config/klippy/klippy.toml
  path supplied via --config

Precedence (lowest → highest): defaults → config file → KLIPPY_* env vars → flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runDaemon(v) },
	}

	f := cmd.Flags()
	f.Duration("poll-interval", poller.DefaultInterval, "how often the clipboard is read")
	f.Int("max-items", history.MaxItems, "history capacity")
	f.String("backend", string(clip.KindAuto), "clipboard backend: auto|memory|headless")
	f.Bool("no-tray", false, "do not show the tray menu")
	f.Bool("no-hotkeys", false, "do not register the numeric paste hotkeys")
	f.String("token", "", "control socket secret (empty = plain JSON)")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runDaemon(v *viper.Viper) error {
	setupLogging(v)

	key, err := crypto.DeriveKey(v.GetString("token"))
	if err != nil {
		return err
	}
	if ipc.IsRunning() {
		return fmt.Errorf("klippy is already running (socket %s)", ipc.SocketPath())
	}

	backend, err := clip.Open(clip.Kind(v.GetString("backend")))
	if err != nil {
		return err
	}
	defer backend.Close()

	noTray := v.GetBool("no-tray")
	noHotkeys := v.GetBool("no-hotkeys")
	store := history.NewStore(v.GetInt("max-items"))

	slog.Info("klippy starting",
		"version", Version,
		"backend", backend.Name(),
		"capacity", store.Cap(),
		"tray", !noTray,
		"hotkeys", !noHotkeys,
		"encrypted", key != nil,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var (
		tr       *tray.Tray
		renderer dispatch.Renderer = dispatch.LogRenderer{}
	)
	if !noTray {
		tr = tray.New()
		renderer = tr
	}
	coord := dispatch.New(store, backend, renderer)
	p := poller.New(backend, store, coord, v.GetDuration("poll-interval"))

	// Control socket for list/show/paste/clear/status/quit
	ipcLn, err := ipc.Listen()
	if err != nil {
		slog.Warn("control socket unavailable", "err", err)
	} else {
		slog.Info("control socket listening", "path", ipc.SocketPath())
	}

	start := func() {
		go p.Run(ctx)
		if ipcLn != nil {
			srv := control.NewServer(store, coord, key, Version, backend.Name())
			go func() {
				if err := srv.Serve(ctx, ipcLn); err != nil {
					slog.Error("control socket failed", "err", err)
				}
			}()
		}
		if !noHotkeys {
			hotkey.Listen(ctx, coord)
		}
	}

	if tr == nil {
		start()
		return coordinate(ctx, cancel, coord)
	}

	errCh := make(chan error, 1)
	tr.Run(coord, func() {
		start()
		go func() {
			errCh <- coordinate(ctx, cancel, coord)
			tr.Quit()
		}()
	})
	// The coordinator is never started if the tray fails before ready.
	cancel()
	select {
	case err := <-errCh:
		return err
	case <-time.After(time.Second):
		return nil
	}
}

// coordinate runs the coordinator until quit or a signal, then stops every
// producer by cancelling ctx.
func coordinate(ctx context.Context, cancel context.CancelFunc, coord *dispatch.Coordinator) error {
	defer cancel()
	err := coord.Run(ctx)
	if errors.Is(err, context.Canceled) {
		slog.Info("klippy stopping", "reason", "signal")
		return nil
	}
	return err
}
