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

	"tfbench/internal/adapter/filecache"
	"tfbench/internal/adapter/lsp"
	"tfbench/internal/bench"
	"tfbench/internal/config"
	benchDomain "tfbench/internal/domain/bench"
	"tfbench/internal/fixture"
	"tfbench/internal/report"
	"tfbench/internal/token"
)

func newTokensCommand(configPath *string) *cobra.Command {
	var outPath, mdPath string

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Run the token-efficiency benchmark (semantic search vs full-file reads)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runTokens(cmd.Context(), cfg, outPath, mdPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "JSON report path (default: <report.dir>/token_benchmark.json)")
	cmd.Flags().StringVar(&mdPath, "md", "", "also write a markdown summary to this path")
	return cmd
}

func runTokens(ctx context.Context, cfg *config.Config, outPath, mdPath string) error {
	dir, err := filepath.Abs(cfg.Fixture.Dir)
	if err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("fixture dir: %w", err))
	}
	if err := fixture.Write(dir); err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("fixture: %w", err))
	}
	slog.Info("fixture ready", "dir", dir)

	cache, err := filecache.New(cfg.Cache.MaxSizeMB << 20)
	if err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("file cache: %w", err))
	}
	defer cache.Close()

	client := lsp.NewClient(cfg.LSP, dir)
	if err := client.Start(ctx); err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("language server: %w", err))
	}
	defer stopClient(client, cfg.LSP.ShutdownTimeout)
	slog.Info("language server ready", "pid", client.PID())

	runner := bench.NewRunner(client, cache, token.FromConfig(cfg.Estimator), dir, cfg.LSP.RequestTimeout)

	scenarios := bench.DefaultScenarios()
	results := make([]benchDomain.ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		results = append(results, runner.Run(ctx, sc))
	}

	rep := bench.Aggregate(results, cfg.Pricing)
	rep.RunID = uuid.NewString()
	rep.GeneratedAt = time.Now().UTC()

	report.PrintSummary(rep)

	if outPath == "" {
		if err := os.MkdirAll(cfg.Report.Dir, 0o755); err != nil {
			return benchDomain.OutputFailure(fmt.Errorf("report dir: %w", err))
		}
		outPath = filepath.Join(cfg.Report.Dir, "token_benchmark.json")
	}
	if err := report.WriteJSON(rep, outPath); err != nil {
		return benchDomain.OutputFailure(err)
	}
	slog.Info("report written", "path", outPath)

	if mdPath != "" {
		if err := report.WriteMarkdown(rep, mdPath); err != nil {
			return benchDomain.OutputFailure(err)
		}
		slog.Info("markdown written", "path", mdPath)
	}
	return nil
}

// stopClient shuts the language server down with its own deadline, detached
// from the (possibly already cancelled) command context.
func stopClient(client *lsp.Client, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Stop(ctx); err != nil {
		slog.Warn("language server stop", "error", err)
	}
}
