// Package bench defines domain types for the token-efficiency benchmark.
// A benchmark run executes a fixed set of scenarios, each measured through a
// semantic path (language-server symbol query) and a baseline path (full file
// reads), and reduces the per-scenario results into an aggregate report.
package bench

import "time"

// Scenario names one benchmark operation: a symbol query for the semantic
// path and the set of fixture files the baseline path would have to read.
type Scenario struct {
	Name          string   `json:"name"`
	Query         string   `json:"query"`
	RelevantFiles []string `json:"relevant_files"`
}

// ScenarioResult holds the measurements for a single scenario execution.
// A result is immutable once recorded; failed scenarios carry zeroed token
// counts for the failed path and Success=false.
type ScenarioResult struct {
	ScenarioName        string  `json:"scenario_name"`
	LSPTokens           int     `json:"lsp_tokens"`
	LSPInputTokens      int     `json:"lsp_input_tokens"`
	LSPOutputTokens     int     `json:"lsp_output_tokens"`
	BaselineTokens      int     `json:"baseline_tokens"`
	BaselineInputTokens int     `json:"baseline_input_tokens"`
	BaselineOutputToken int     `json:"baseline_output_tokens"`
	Savings             int     `json:"savings"`
	Percent             float64 `json:"percent"`
	LSPTimeSeconds      float64 `json:"lsp_time_seconds"`
	SymbolCount         int     `json:"symbol_count"`
	Success             bool    `json:"success"`
	Error               string  `json:"error,omitempty"`
}

// AggregateReport is derived entirely from the scenario sequence. It is
// rebuilt fresh at report time, never mutated incrementally. RunID and
// GeneratedAt are assigned by the caller after aggregation so that the
// aggregation itself stays deterministic.
type AggregateReport struct {
	RunID       string    `json:"run_id,omitempty"`
	GeneratedAt time.Time `json:"generated_at,omitzero"`

	Scenarios []ScenarioResult `json:"scenarios"`

	TotalLSPTokens      int     `json:"total_lsp_tokens"`
	TotalBaselineTokens int     `json:"total_baseline_tokens"`
	TotalSavings        int     `json:"total_savings"`
	PercentSaved        float64 `json:"percent_saved"` // negative when LSP output is larger
	AveragePercentSaved float64 `json:"average_percent_saved"`
	SuccessRate         float64 `json:"success_rate"`

	BestScenario  string  `json:"best_scenario,omitempty"`
	BestPercent   float64 `json:"best_percent"`
	WorstScenario string  `json:"worst_scenario,omitempty"`
	WorstPercent  float64 `json:"worst_percent"`

	LSPCostUSD           float64 `json:"lsp_cost_usd"`
	BaselineCostUSD      float64 `json:"baseline_cost_usd"`
	EstimatedCostSavings float64 `json:"estimated_cost_savings"`
}

// QualityCheck probes one semantic operation against a known answer in the
// fixture: the query must return at least MinSymbols results and one of them
// must contain the Expected substring.
type QualityCheck struct {
	Name       string `json:"name"`
	Query      string `json:"query"`
	Expected   string `json:"expected"`
	MinSymbols int    `json:"min_symbols"`
}

// QualityResult is one row of the semantic quality suite.
type QualityResult struct {
	Check         string  `json:"check"`
	Success       bool    `json:"success"`
	SymbolsFound  int     `json:"symbols_found"`
	FoundExpected bool    `json:"found_expected"`
	Seconds       float64 `json:"execution_seconds"`
	Error         string  `json:"error,omitempty"`
}

// QualityReport scores the semantic quality suite. TargetMet records whether
// the run reached the 95% success rate the semantic path is expected to hold.
type QualityReport struct {
	RunID       string          `json:"run_id,omitempty"`
	GeneratedAt time.Time       `json:"generated_at,omitzero"`
	Checks      []QualityResult `json:"checks"`
	Passed      int             `json:"passed"`
	SuccessRate float64         `json:"success_rate"`
	TargetMet   bool            `json:"target_met"`
}

// StartupSample is one measurement of the cost of bringing the language
// server up: spawn plus handshake wall-clock, the first symbol query, and
// the server process resident set size afterwards.
type StartupSample struct {
	Sample            int     `json:"sample"`
	StartupSeconds    float64 `json:"startup_seconds"`
	FirstQuerySeconds float64 `json:"first_query_seconds"`
	MemoryRSSMB       float64 `json:"memory_rss_mb"`
	Success           bool    `json:"success"`
	Error             string  `json:"error,omitempty"`
}

// StartupReport averages the samples and checks them against the expected
// overhead bounds (about half a second of startup, under 100 MB resident).
type StartupReport struct {
	RunID             string          `json:"run_id,omitempty"`
	GeneratedAt       time.Time       `json:"generated_at,omitzero"`
	Samples           []StartupSample `json:"samples"`
	AvgStartupSeconds float64         `json:"avg_startup_seconds"`
	AvgMemoryRSSMB    float64         `json:"avg_memory_rss_mb"`
	StartupTargetMet  bool            `json:"startup_target_met"`
	MemoryTargetMet   bool            `json:"memory_target_met"`
}

// ErrorReport wraps the error-detection benchmark rows for persistence.
type ErrorReport struct {
	RunID       string            `json:"run_id,omitempty"`
	GeneratedAt time.Time         `json:"generated_at,omitzero"`
	Files       []FileDiagnostics `json:"files"`
}

// FileDiagnostics is one row of the error-detection benchmark: diagnostic
// counts for a single intentionally broken fixture file, from the language
// server and from a plain HCL parse.
type FileDiagnostics struct {
	File             string   `json:"file"`
	LSPDiagnostics   int      `json:"lsp_diagnostics"`
	ParseDiagnostics int      `json:"parse_diagnostics"`
	Messages         []string `json:"messages,omitempty"`
	Success          bool     `json:"success"`
	Error            string   `json:"error,omitempty"`
}
