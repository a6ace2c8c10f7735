// Command tfbench benchmarks token usage of semantic LSP navigation against
// full-file reads on a generated Terraform project.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tfbench/internal/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := newRootCommand().Execute(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "tfbench",
		Short:         "Benchmark LSP semantic navigation against full-file context",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "path to YAML config file")

	root.AddCommand(
		newTokensCommand(&configPath),
		newErrorsCommand(&configPath),
		newQualityCommand(&configPath),
		newStartupCommand(&configPath),
		newSymbolsCommand(&configPath),
		newFixtureCommand(&configPath),
		newAllCommand(&configPath),
	)
	return root
}

// loadConfig reads the configuration and reinstalls the default logger at the
// configured level.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger.With("service", cfg.Logging.Service))

	return cfg, nil
}
