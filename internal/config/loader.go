package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "tfbench.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// YAML file is optional; missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Logging.Level, "TFBENCH_LOG_LEVEL")
	setString(&cfg.Logging.Service, "TFBENCH_LOG_SERVICE")

	setArgv(&cfg.LSP.Command, "TFBENCH_LSP_COMMAND")
	setDuration(&cfg.LSP.RequestTimeout, "TFBENCH_LSP_REQUEST_TIMEOUT")
	setDuration(&cfg.LSP.ShutdownTimeout, "TFBENCH_LSP_SHUTDOWN_TIMEOUT")
	setDuration(&cfg.LSP.DiagnosticsWait, "TFBENCH_LSP_DIAGNOSTICS_WAIT")
	setInt(&cfg.LSP.MaxDiagnostics, "TFBENCH_LSP_MAX_DIAGNOSTICS")

	setString(&cfg.Estimator.Mode, "TFBENCH_ESTIMATOR_MODE")
	setInt(&cfg.Estimator.CharsPerToken, "TFBENCH_ESTIMATOR_CHARS_PER_TOKEN")
	setFloat64(&cfg.Estimator.PunctWeight, "TFBENCH_ESTIMATOR_PUNCT_WEIGHT")
	setString(&cfg.Estimator.Encoding, "TFBENCH_ESTIMATOR_ENCODING")

	setFloat64(&cfg.Pricing.InputPer1K, "TFBENCH_PRICE_INPUT_PER_1K")
	setFloat64(&cfg.Pricing.OutputPer1K, "TFBENCH_PRICE_OUTPUT_PER_1K")

	setString(&cfg.Fixture.Dir, "TFBENCH_FIXTURE_DIR")
	setString(&cfg.Report.Dir, "TFBENCH_REPORT_DIR")
	setInt64(&cfg.Cache.MaxSizeMB, "TFBENCH_CACHE_SIZE_MB")
}

// validate checks that required fields are set.
func validate(cfg *Config) error {
	if len(cfg.LSP.Command) == 0 {
		return errors.New("lsp.command is required")
	}
	if cfg.LSP.RequestTimeout <= 0 {
		return errors.New("lsp.request_timeout must be positive")
	}
	if cfg.LSP.ShutdownTimeout <= 0 {
		return errors.New("lsp.shutdown_timeout must be positive")
	}
	switch cfg.Estimator.Mode {
	case "heuristic", "tiktoken":
	default:
		return fmt.Errorf("estimator.mode must be heuristic or tiktoken, got %q", cfg.Estimator.Mode)
	}
	if cfg.Estimator.CharsPerToken < 1 {
		return errors.New("estimator.chars_per_token must be >= 1")
	}
	if cfg.Estimator.PunctWeight < 0 {
		return errors.New("estimator.punct_weight must be non-negative")
	}
	if cfg.Pricing.InputPer1K < 0 || cfg.Pricing.OutputPer1K < 0 {
		return errors.New("pricing rates must be non-negative")
	}
	if cfg.Cache.MaxSizeMB < 1 {
		return errors.New("cache.max_size_mb must be >= 1")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// setArgv splits a space-separated command line into argv form.
func setArgv(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = strings.Fields(v)
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
