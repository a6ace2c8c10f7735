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

func newStartupCommand(configPath *string) *cobra.Command {
	var outPath string
	var samples int

	cmd := &cobra.Command{
		Use:   "startup",
		Short: "Measure language server startup time and memory overhead",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runStartup(cmd.Context(), cfg, outPath, samples)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "JSON report path (default: <report.dir>/startup_cost.json)")
	cmd.Flags().IntVarP(&samples, "samples", "n", 3, "number of fresh server spawns to measure")
	return cmd
}

func runStartup(ctx context.Context, cfg *config.Config, outPath string, samples int) error {
	if samples < 1 {
		return benchDomain.SetupFailure(fmt.Errorf("samples must be >= 1, got %d", samples))
	}

	dir, err := filepath.Abs(cfg.Fixture.Dir)
	if err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("fixture dir: %w", err))
	}
	if err := fixture.Write(dir); err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("fixture: %w", err))
	}

	// Each sample spawns and tears down its own server; no shared client.
	prober := bench.NewStartupProber(func() bench.LifecycleClient {
		return lsp.NewClient(cfg.LSP, dir)
	}, cfg.LSP.RequestTimeout)
	rows := prober.Run(ctx, samples)

	rep := bench.AggregateStartup(rows)
	rep.RunID = uuid.NewString()
	rep.GeneratedAt = time.Now().UTC()

	report.PrintStartup(rep)

	if outPath == "" {
		if err := os.MkdirAll(cfg.Report.Dir, 0o755); err != nil {
			return benchDomain.OutputFailure(fmt.Errorf("report dir: %w", err))
		}
		outPath = filepath.Join(cfg.Report.Dir, "startup_cost.json")
	}
	if err := report.WriteStartupJSON(rep, outPath); err != nil {
		return benchDomain.OutputFailure(err)
	}
	slog.Info("report written", "path", outPath)
	return nil
}
