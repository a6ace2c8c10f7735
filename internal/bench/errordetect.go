package bench

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tfbench/internal/domain/bench"
	lspDomain "tfbench/internal/domain/lsp"
	"tfbench/internal/fixture"
)

// DiagnosticClient is the slice of the language server client the error
// detector needs.
type DiagnosticClient interface {
	OpenFile(uri, languageID, content string) error
	WaitDiagnostics(ctx context.Context, uri string) []lspDomain.Diagnostic
}

// ErrorDetector measures how many problems the language server reports for
// the intentionally broken fixture files, against a bare HCL parse as the
// non-semantic comparison.
type ErrorDetector struct {
	client DiagnosticClient
	dir    string
	wait   time.Duration
}

// NewErrorDetector creates a detector over the broken fixture dir. wait
// bounds how long each file waits for publishDiagnostics after didOpen.
func NewErrorDetector(client DiagnosticClient, dir string, wait time.Duration) *ErrorDetector {
	return &ErrorDetector{client: client, dir: dir, wait: wait}
}

// Run opens each broken fixture file with the language server, collects the
// published diagnostics, and pairs them with parse-level diagnostics. A file
// that cannot be read or opened is marked failed; the loop always continues
// to the next file.
func (d *ErrorDetector) Run(ctx context.Context) []bench.FileDiagnostics {
	parseDiags, err := fixture.Validate(d.dir)
	if err != nil {
		slog.Warn("parse validation unavailable", "error", err)
		parseDiags = map[string][]string{}
	}

	var rows []bench.FileDiagnostics
	for _, name := range fixture.BrokenFiles() {
		row := bench.FileDiagnostics{
			File:             name,
			ParseDiagnostics: len(parseDiags[name]),
		}

		path := filepath.Join(d.dir, name)
		content, err := os.ReadFile(path) //nolint:gosec // G304: path under fixture dir
		if err != nil {
			row.Error = err.Error()
			rows = append(rows, row)
			continue
		}

		uri := "file://" + path
		if err := d.client.OpenFile(uri, "terraform", string(content)); err != nil {
			row.Error = err.Error()
			rows = append(rows, row)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, d.wait)
		diags := d.client.WaitDiagnostics(waitCtx, uri)
		cancel()

		row.LSPDiagnostics = len(diags)
		for _, diag := range diags {
			row.Messages = append(row.Messages, diag.Message)
		}
		row.Success = true

		slog.Info("error detection",
			"file", name,
			"lsp_diagnostics", row.LSPDiagnostics,
			"parse_diagnostics", row.ParseDiagnostics,
		)
		rows = append(rows, row)
	}

	return rows
}
