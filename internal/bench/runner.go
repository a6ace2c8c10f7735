// Package bench executes benchmark scenarios and reduces their results.
//
// Each scenario is measured twice: the semantic path asks the language server
// for matching symbols and counts the tokens of the query plus the symbol
// list; the baseline path reads the full content of every relevant fixture
// file, the way a tool without code intelligence would have to. Scenarios run
// strictly sequentially and every failure is contained in the result row.
package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"tfbench/internal/adapter/filecache"
	"tfbench/internal/domain/bench"
	lspDomain "tfbench/internal/domain/lsp"
	"tfbench/internal/token"
)

// SymbolClient is the slice of the language server client the runner needs.
type SymbolClient interface {
	WorkspaceSymbols(ctx context.Context, query string) ([]lspDomain.SymbolInformation, error)
}

// Runner executes scenarios against a started language server and a fixture
// project on disk. It holds no state across scenarios beyond the read cache.
type Runner struct {
	client     SymbolClient
	files      *filecache.Cache
	estimator  token.Estimator
	fixtureDir string
	timeout    time.Duration
}

// NewRunner creates a Runner. timeout bounds each semantic round trip.
func NewRunner(client SymbolClient, files *filecache.Cache, est token.Estimator, fixtureDir string, timeout time.Duration) *Runner {
	return &Runner{
		client:     client,
		files:      files,
		estimator:  est,
		fixtureDir: fixtureDir,
		timeout:    timeout,
	}
}

// Run executes both measurement paths for one scenario. It always produces a
// result: semantic-path failures (server down, malformed response, timeout)
// are recorded as Success=false with zeroed LSP token counts, never returned
// as errors.
func (r *Runner) Run(ctx context.Context, sc bench.Scenario) bench.ScenarioResult {
	result := bench.ScenarioResult{ScenarioName: sc.Name}

	r.runSemantic(ctx, sc, &result)
	r.runBaseline(sc, &result)

	result.Savings = result.BaselineTokens - result.LSPTokens
	if result.BaselineTokens > 0 {
		result.Percent = float64(result.Savings) / float64(result.BaselineTokens) * 100
	}

	slog.Info("scenario complete",
		"scenario", sc.Name,
		"lsp_tokens", result.LSPTokens,
		"baseline_tokens", result.BaselineTokens,
		"percent_saved", fmt.Sprintf("%.1f", result.Percent),
		"success", result.Success,
	)
	return result
}

// runSemantic performs the workspace/symbol round trip and estimates its
// token cost. This is the only suspension point in a scenario.
func (r *Runner) runSemantic(ctx context.Context, sc bench.Scenario, result *bench.ScenarioResult) {
	reqCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	symbols, err := r.client.WorkspaceSymbols(reqCtx, sc.Query)
	result.LSPTimeSeconds = time.Since(start).Seconds()

	if err != nil {
		result.Success = false
		result.Error = err.Error()
		slog.Warn("semantic path failed", "scenario", sc.Name, "error", err)
		return
	}

	payload, err := json.Marshal(symbols)
	if err != nil {
		result.Success = false
		result.Error = fmt.Sprintf("marshal symbols: %v", err)
		return
	}

	input := fmt.Sprintf("Task: %s\nUsing semantic symbol search\nQuery: %s", sc.Name, sc.Query)
	result.LSPInputTokens = r.estimator.Estimate(input)
	result.LSPOutputTokens = r.estimator.Estimate(string(payload))
	result.LSPTokens = result.LSPInputTokens + result.LSPOutputTokens
	result.SymbolCount = len(symbols)
	result.Success = true
}

// runBaseline reads the scenario's relevant files in full and estimates the
// token cost of shipping them as context. Missing files are skipped; the
// baseline path itself never fails a scenario.
func (r *Runner) runBaseline(sc bench.Scenario, result *bench.ScenarioResult) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Task: %s\nReading entire files for context\nFiles: %s\n",
		sc.Name, strings.Join(sc.RelevantFiles, ", "))

	read := 0
	for _, name := range sc.RelevantFiles {
		data, err := r.files.ReadFile(filepath.Join(r.fixtureDir, name))
		if err != nil {
			slog.Warn("baseline file skipped", "scenario", sc.Name, "file", name, "error", err)
			continue
		}
		fmt.Fprintf(&sb, "\n# File: %s\n%s\n", name, data)
		read++
	}

	input := sb.String()
	ack := fmt.Sprintf("Found content in %d files, total %d characters", read, len(input))

	result.BaselineInputTokens = r.estimator.Estimate(input)
	result.BaselineOutputToken = r.estimator.Estimate(ack)
	result.BaselineTokens = result.BaselineInputTokens + result.BaselineOutputToken
}
