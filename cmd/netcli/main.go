// Package main provides netcli, an interactive diagnostic client for
// the room gateway. It connects with the library client, prints every
// event it emits, and maps stdin commands onto the room/messaging API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YzzY5665/netClient/internal/config"
	"github.com/YzzY5665/netClient/internal/observability"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		url        string
		gameName   string
	)

	cmd := &cobra.Command{
		Use:   "netcli",
		Short: "Interactive client for the room gateway",
		Long: `netcli connects to a room gateway, prints every protocol event it
receives, and turns stdin commands into room and messaging intents.
Type "help" at the prompt for the command list.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if url != "" {
				cfg.Gateway.URL = url
			}
			if gameName != "" {
				cfg.Gateway.GameName = gameName
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := observability.NewLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer logger.Sync()

			return runSession(cmd.Context(), cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to configuration file (defaults + env when omitted)")
	cmd.Flags().StringVar(&url, "url", "", "gateway WebSocket URL (overrides config)")
	cmd.Flags().StringVar(&gameName, "game", "", "game name for room namespacing (overrides config)")
	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
