package token

import "tfbench/internal/config"

// FromConfig builds the estimator selected by cfg.Mode. Unknown modes fall
// back to the heuristic (config validation rejects them upstream).
func FromConfig(cfg config.Estimator) Estimator {
	switch cfg.Mode {
	case "tiktoken":
		return NewTiktoken(cfg.Encoding)
	default:
		return &Heuristic{CharsPerToken: cfg.CharsPerToken, PunctWeight: cfg.PunctWeight}
	}
}
