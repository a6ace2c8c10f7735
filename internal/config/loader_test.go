package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if got := cfg.LSP.Command[0]; got != "terraform-ls" {
		t.Errorf("expected terraform-ls command, got %s", got)
	}
	if cfg.LSP.RequestTimeout != 5*time.Second {
		t.Errorf("expected request timeout 5s, got %v", cfg.LSP.RequestTimeout)
	}
	if cfg.Estimator.Mode != "heuristic" {
		t.Errorf("expected heuristic mode, got %s", cfg.Estimator.Mode)
	}
	if cfg.Pricing.InputPer1K != 0.03 || cfg.Pricing.OutputPer1K != 0.06 {
		t.Errorf("unexpected pricing defaults: %+v", cfg.Pricing)
	}
}

func TestLoadYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "test.yaml")

	content := `
lsp:
  command: ["custom-ls", "serve", "-log-file", "/tmp/ls.log"]
  request_timeout: 10s
estimator:
  mode: "tiktoken"
pricing:
  input_per_1k: 0.01
logging:
  level: "debug"
`
	if err := os.WriteFile(yamlPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Defaults()
	if err := loadYAML(&cfg, yamlPath); err != nil {
		t.Fatal(err)
	}

	if len(cfg.LSP.Command) != 4 || cfg.LSP.Command[0] != "custom-ls" {
		t.Errorf("expected custom-ls command, got %v", cfg.LSP.Command)
	}
	if cfg.LSP.RequestTimeout != 10*time.Second {
		t.Errorf("expected request timeout 10s, got %v", cfg.LSP.RequestTimeout)
	}
	if cfg.Estimator.Mode != "tiktoken" {
		t.Errorf("expected tiktoken mode, got %s", cfg.Estimator.Mode)
	}
	if cfg.Pricing.InputPer1K != 0.01 {
		t.Errorf("expected input rate 0.01, got %v", cfg.Pricing.InputPer1K)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
	// Unchanged fields keep defaults
	if cfg.Pricing.OutputPer1K != 0.06 {
		t.Errorf("expected default output rate, got %v", cfg.Pricing.OutputPer1K)
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	cfg := Defaults()
	if err := loadYAML(&cfg, filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TFBENCH_LSP_COMMAND", "terraform-ls serve -port 9999")
	t.Setenv("TFBENCH_LSP_REQUEST_TIMEOUT", "2s")
	t.Setenv("TFBENCH_PRICE_OUTPUT_PER_1K", "0.12")
	t.Setenv("TFBENCH_LOG_LEVEL", "warn")

	cfg := Defaults()
	loadEnv(&cfg)

	want := []string{"terraform-ls", "serve", "-port", "9999"}
	if len(cfg.LSP.Command) != len(want) {
		t.Fatalf("expected command %v, got %v", want, cfg.LSP.Command)
	}
	for i := range want {
		if cfg.LSP.Command[i] != want[i] {
			t.Errorf("command[%d]: expected %s, got %s", i, want[i], cfg.LSP.Command[i])
		}
	}
	if cfg.LSP.RequestTimeout != 2*time.Second {
		t.Errorf("expected request timeout 2s, got %v", cfg.LSP.RequestTimeout)
	}
	if cfg.Pricing.OutputPer1K != 0.12 {
		t.Errorf("expected output rate 0.12, got %v", cfg.Pricing.OutputPer1K)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Logging.Level)
	}
}

func TestValidateAllowsZeroPunctWeight(t *testing.T) {
	cfg := Defaults()
	cfg.Estimator.PunctWeight = 0
	if err := validate(&cfg); err != nil {
		t.Errorf("zero punct_weight should be valid: %v", err)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty command", func(c *Config) { c.LSP.Command = nil }},
		{"zero request timeout", func(c *Config) { c.LSP.RequestTimeout = 0 }},
		{"unknown estimator mode", func(c *Config) { c.Estimator.Mode = "exact" }},
		{"negative punct weight", func(c *Config) { c.Estimator.PunctWeight = -0.1 }},
		{"negative pricing", func(c *Config) { c.Pricing.InputPer1K = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(&cfg)
			if err := validate(&cfg); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
