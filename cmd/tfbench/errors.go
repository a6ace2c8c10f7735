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

func newErrorsCommand(configPath *string) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Run the error-detection benchmark on intentionally broken files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runErrors(cmd.Context(), cfg, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "JSON report path (default: <report.dir>/error_detection.json)")
	return cmd
}

func runErrors(ctx context.Context, cfg *config.Config, outPath string) error {
	// Broken files live in their own workspace so the clean project benchmark
	// never sees their diagnostics.
	dir, err := filepath.Abs(cfg.Fixture.Dir + "_errors")
	if err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("fixture dir: %w", err))
	}
	if err := fixture.WriteBroken(dir); err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("fixture: %w", err))
	}
	slog.Info("broken fixture ready", "dir", dir)

	client := lsp.NewClient(cfg.LSP, dir)
	if err := client.Start(ctx); err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("language server: %w", err))
	}
	defer stopClient(client, cfg.LSP.ShutdownTimeout)

	detector := bench.NewErrorDetector(client, dir, cfg.LSP.DiagnosticsWait)
	rows := detector.Run(ctx)

	report.PrintDiagnostics(rows)

	rep := benchDomain.ErrorReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Files:       rows,
	}

	if outPath == "" {
		if err := os.MkdirAll(cfg.Report.Dir, 0o755); err != nil {
			return benchDomain.OutputFailure(fmt.Errorf("report dir: %w", err))
		}
		outPath = filepath.Join(cfg.Report.Dir, "error_detection.json")
	}
	if err := report.WriteErrorsJSON(rep, outPath); err != nil {
		return benchDomain.OutputFailure(err)
	}
	slog.Info("report written", "path", outPath)
	return nil
}
