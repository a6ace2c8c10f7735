// Package report persists aggregate benchmark results as JSON and markdown,
// and prints a console summary. Writers surface filesystem errors to the
// caller. A failed write is an output failure, never silent.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"tfbench/internal/domain/bench"
)

// WriteJSON serializes the report to path, creating or overwriting the file.
// Field names are stable and ordered as produced by the aggregator.
func WriteJSON(report bench.AggregateReport, path string) error {
	return writeJSON(report, path, "report")
}

func writeJSON(v any, path, what string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", what, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s %s: %w", what, path, err)
	}
	return nil
}

// ReadJSON loads a previously written report.
func ReadJSON(path string) (bench.AggregateReport, error) {
	var report bench.AggregateReport
	data, err := os.ReadFile(path) //nolint:gosec // G304: path provided by caller
	if err != nil {
		return report, fmt.Errorf("read report %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("parse report %s: %w", path, err)
	}
	return report, nil
}

// WriteErrorsJSON serializes an error-detection report to path.
func WriteErrorsJSON(report bench.ErrorReport, path string) error {
	return writeJSON(report, path, "error report")
}

// WriteQualityJSON serializes a semantic quality report to path.
func WriteQualityJSON(report bench.QualityReport, path string) error {
	return writeJSON(report, path, "quality report")
}

// WriteStartupJSON serializes a startup cost report to path.
func WriteStartupJSON(report bench.StartupReport, path string) error {
	return writeJSON(report, path, "startup report")
}

// WriteMarkdown renders the report as a human-readable summary document.
func WriteMarkdown(report bench.AggregateReport, path string) error {
	if err := os.WriteFile(path, []byte(Markdown(report)), 0o644); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}

// Markdown renders the report body. Split out from WriteMarkdown so tests
// and the console path can reuse it.
func Markdown(report bench.AggregateReport) string {
	var sb strings.Builder

	sb.WriteString("# Token Usage Benchmark: Semantic vs Full-File Context\n\n")
	if report.RunID != "" {
		fmt.Fprintf(&sb, "Run `%s`", report.RunID)
		if !report.GeneratedAt.IsZero() {
			fmt.Fprintf(&sb, " — generated %s", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString("## Totals\n\n")
	fmt.Fprintf(&sb, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Scenarios | %d |\n", len(report.Scenarios))
	fmt.Fprintf(&sb, "| Semantic tokens | %d |\n", report.TotalLSPTokens)
	fmt.Fprintf(&sb, "| Baseline tokens | %d |\n", report.TotalBaselineTokens)
	fmt.Fprintf(&sb, "| Tokens saved | %d |\n", report.TotalSavings)
	fmt.Fprintf(&sb, "| Percent saved | %.2f%% |\n", report.PercentSaved)
	fmt.Fprintf(&sb, "| Success rate | %.1f%% |\n", report.SuccessRate)
	sb.WriteString("\n")

	sb.WriteString("## Scenarios\n\n")
	sb.WriteString("| Scenario | Semantic | Baseline | Savings | % Saved | OK |\n")
	sb.WriteString("|---|---|---|---|---|---|\n")
	for _, r := range report.Scenarios {
		ok := "yes"
		if !r.Success {
			ok = "no"
		}
		fmt.Fprintf(&sb, "| %s | %d | %d | %d | %.1f%% | %s |\n",
			r.ScenarioName, r.LSPTokens, r.BaselineTokens, r.Savings, r.Percent, ok)
	}
	sb.WriteString("\n")

	if report.BestScenario != "" {
		sb.WriteString("## Highlights\n\n")
		fmt.Fprintf(&sb, "- Best: %s (%.1f%% saved)\n", report.BestScenario, report.BestPercent)
		fmt.Fprintf(&sb, "- Worst: %s (%.1f%% saved)\n", report.WorstScenario, report.WorstPercent)
		sb.WriteString("\n")
	}

	sb.WriteString("## Cost\n\n")
	fmt.Fprintf(&sb, "- Semantic approach: $%.4f\n", report.LSPCostUSD)
	fmt.Fprintf(&sb, "- Baseline approach: $%.4f\n", report.BaselineCostUSD)
	fmt.Fprintf(&sb, "- Estimated savings: $%.4f\n", report.EstimatedCostSavings)
	sb.WriteString("\n")

	sb.WriteString("Token counts are heuristic estimates (about 4 characters per token, " +
		"weighted for punctuation), not an exact tokenization.\n")

	return sb.String()
}
