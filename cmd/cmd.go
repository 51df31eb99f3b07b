package cmd

import (
	"context"
	"log/slog"

	"github.com/gaze-network/dot721-indexer/internal/config"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "dot721",
	Short: "dot-721 inscription indexer",
	Long:  `Indexes dot-721 inscriptions from the remarks of a Substrate chain into collections, tokens, approvals and whitelists.`,
}

func init() {
	var configFile string

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		config := config.Parse(configFile)

		if err := logger.Init(config.Logger); err != nil {
			logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", config.Logger))
		}
	})
}

func Execute(ctx context.Context) {
	// Register sub-commands
	cmd.AddCommand(
		NewRunCommand(),
		NewMigrateCommand(),
		NewVersionCommand(),
	)

	// Execute command
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.PanicContext(ctx, "Failed to execute root command", slogx.Error(err))
	}
}
