// Package config provides hierarchical configuration loading for tfbench.
// Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for the benchmark harness.
type Config struct {
	Logging   Logging   `yaml:"logging"`
	LSP       LSP       `yaml:"lsp"`
	Estimator Estimator `yaml:"estimator"`
	Pricing   Pricing   `yaml:"pricing"`
	Fixture   Fixture   `yaml:"fixture"`
	Report    Report    `yaml:"report"`
	Cache     Cache     `yaml:"cache"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// LSP holds language server process configuration.
type LSP struct {
	Command         []string      `yaml:"command"`          // argv to spawn, e.g. ["terraform-ls", "serve"]
	RequestTimeout  time.Duration `yaml:"request_timeout"`  // bound on each request/response round trip
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // bound on graceful shutdown before kill
	DiagnosticsWait time.Duration `yaml:"diagnostics_wait"` // how long to wait for publishDiagnostics after didOpen
	MaxDiagnostics  int           `yaml:"max_diagnostics"`  // cap on cached diagnostics per file
}

// Estimator selects and tunes the token estimator.
type Estimator struct {
	Mode          string  `yaml:"mode"`            // "heuristic" | "tiktoken"
	CharsPerToken int     `yaml:"chars_per_token"` // heuristic ratio (default: 4)
	PunctWeight   float64 `yaml:"punct_weight"`    // heuristic punctuation weight (default: 0.3)
	Encoding      string  `yaml:"encoding"`        // tiktoken encoding (default: cl100k_base)
}

// Pricing holds the per-1000-token rates used for cost estimates.
type Pricing struct {
	InputPer1K  float64 `yaml:"input_per_1k"`
	OutputPer1K float64 `yaml:"output_per_1k"`
}

// Fixture holds test project configuration.
type Fixture struct {
	Dir string `yaml:"dir"` // directory the Terraform fixture project is written to
}

// Report holds output configuration.
type Report struct {
	Dir string `yaml:"dir"` // default directory for JSON/markdown reports
}

// Cache holds the baseline-path file read cache configuration.
type Cache struct {
	MaxSizeMB int64 `yaml:"max_size_mb"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Logging: Logging{
			Level:   "info",
			Service: "tfbench",
		},
		LSP: LSP{
			Command:         []string{"terraform-ls", "serve"},
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 3 * time.Second,
			DiagnosticsWait: 2 * time.Second,
			MaxDiagnostics:  100,
		},
		Estimator: Estimator{
			Mode:          "heuristic",
			CharsPerToken: 4,
			PunctWeight:   0.3,
			Encoding:      "cl100k_base",
		},
		// GPT-4 list prices per 1K tokens.
		Pricing: Pricing{
			InputPer1K:  0.03,
			OutputPer1K: 0.06,
		},
		Fixture: Fixture{
			Dir: "tfbench_project",
		},
		Report: Report{
			Dir: "reports",
		},
		Cache: Cache{
			MaxSizeMB: 16,
		},
	}
}
