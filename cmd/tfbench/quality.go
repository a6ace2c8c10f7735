package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tfbench/internal/adapter/lsp"
	"tfbench/internal/bench"
	"tfbench/internal/config"
	benchDomain "tfbench/internal/domain/bench"
	"tfbench/internal/fixture"
	"tfbench/internal/report"
)

func newQualityCommand(configPath *string) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Score semantic symbol search accuracy against known fixture answers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runQuality(cmd.Context(), cfg, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "JSON report path (default: <report.dir>/semantic_quality.json)")
	return cmd
}

func runQuality(ctx context.Context, cfg *config.Config, outPath string) error {
	dir, err := filepath.Abs(cfg.Fixture.Dir)
	if err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("fixture dir: %w", err))
	}
	if err := fixture.Write(dir); err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("fixture: %w", err))
	}

	client := lsp.NewClient(cfg.LSP, dir)
	if err := client.Start(ctx); err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("language server: %w", err))
	}
	defer stopClient(client, cfg.LSP.ShutdownTimeout)

	runner := bench.NewQualityRunner(client, cfg.LSP.RequestTimeout)
	rows := runner.Run(ctx, bench.DefaultQualityChecks())

	rep := bench.AggregateQuality(rows)
	rep.RunID = uuid.NewString()
	rep.GeneratedAt = time.Now().UTC()

	report.PrintQuality(rep)

	if outPath == "" {
		if err := os.MkdirAll(cfg.Report.Dir, 0o755); err != nil {
			return benchDomain.OutputFailure(fmt.Errorf("report dir: %w", err))
		}
		outPath = filepath.Join(cfg.Report.Dir, "semantic_quality.json")
	}
	if err := report.WriteQualityJSON(rep, outPath); err != nil {
		return benchDomain.OutputFailure(err)
	}
	slog.Info("report written", "path", outPath)
	return nil
}
