package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/klippy/internal/control"
	"go.klb.dev/klippy/internal/crypto"
	"go.klb.dev/klippy/internal/logging"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and KLIPPY_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → KLIPPY_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("klippy")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/klippy/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/klippy", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("KLIPPY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-background", false, "run interactively: tinter logs + debug level")
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: info for service, debug for interactive)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// addClientFlags adds the flags every daemon-facing command needs.
func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().String("token", "", "control socket secret (must match the daemon)")
	addConfigFlag(cmd)
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	interactive := v.GetBool("no-background") || logging.IsTTY(os.Stderr)
	format := logging.ParseFormat(v.GetString("log-format"))
	logging.Setup(format, logging.Resolve(interactive, v.GetString("log-level")))
}

// newClient builds a control client from the token setting.
func newClient(v *viper.Viper) (*control.Client, error) {
	key, err := crypto.DeriveKey(v.GetString("token"))
	if err != nil {
		return nil, err
	}
	return control.NewClient(key), nil
}
