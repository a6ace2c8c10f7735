package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newAllCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every benchmark suite in sequence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			slog.Info("running token benchmark")
			if err := runTokens(cmd.Context(), cfg, "", ""); err != nil {
				return err
			}

			slog.Info("running error-detection benchmark")
			if err := runErrors(cmd.Context(), cfg, ""); err != nil {
				return err
			}

			slog.Info("running semantic quality benchmark")
			if err := runQuality(cmd.Context(), cfg, ""); err != nil {
				return err
			}

			slog.Info("running startup cost benchmark")
			return runStartup(cmd.Context(), cfg, "", 3)
		},
	}
	return cmd
}
