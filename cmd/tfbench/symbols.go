package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tfbench/internal/adapter/lsp"
	"tfbench/internal/config"
	benchDomain "tfbench/internal/domain/bench"
	lspDomain "tfbench/internal/domain/lsp"
	"tfbench/internal/fixture"
)

func newSymbolsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "Print the document symbol tree the language server sees per fixture file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runSymbols(cmd.Context(), cfg)
		},
	}
	return cmd
}

func runSymbols(ctx context.Context, cfg *config.Config) error {
	dir, err := filepath.Abs(cfg.Fixture.Dir)
	if err != nil {
		return fmt.Errorf("fixture dir: %w", err)
	}
	if err := fixture.Write(dir); err != nil {
		return fmt.Errorf("fixture: %w", err)
	}

	blocks, err := fixture.CountBlocks(dir)
	if err != nil {
		return fmt.Errorf("count blocks: %w", err)
	}

	client := lsp.NewClient(cfg.LSP, dir)
	if err := client.Start(ctx); err != nil {
		return benchDomain.SetupFailure(fmt.Errorf("language server: %w", err))
	}
	defer stopClient(client, cfg.LSP.ShutdownTimeout)

	for _, name := range fixture.Files() {
		if !strings.HasSuffix(name, ".tf") {
			continue
		}
		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path) //nolint:gosec // G304: path under fixture dir
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		uri := "file://" + path
		if err := client.OpenFile(uri, "terraform", string(content)); err != nil {
			return fmt.Errorf("open %s: %w", name, err)
		}

		reqCtx, cancel := context.WithTimeout(ctx, cfg.LSP.RequestTimeout)
		symbols, err := client.DocumentSymbols(reqCtx, uri)
		cancel()
		if err != nil {
			slog.Warn("document symbols failed", "file", name, "error", err)
			continue
		}

		fmt.Printf("\n%s  (%d symbols, %d parsed blocks)\n", name, len(symbols), blocks[name])
		printSymbols(symbols, 1)
	}
	return nil
}

func printSymbols(symbols []lspDomain.DocumentSymbol, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, sym := range symbols {
		fmt.Printf("%s%s [%s] line %d\n", indent, sym.Name, lspDomain.KindName(sym.Kind), sym.Range.Start.Line+1)
		printSymbols(sym.Children, depth+1)
	}
}
