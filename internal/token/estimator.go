// Package token provides token-count estimation for benchmark payloads.
//
// The primary estimator is a character heuristic (roughly 4 characters per
// token for technical content, weighted for punctuation density). It is an
// approximation with bounded error, not an exact tokenization. Good enough
// for comparing two measurement paths against each other, not for billing.
package token

import (
	"strings"
	"unicode/utf8"
)

// Estimator converts a text blob into an approximate token count.
type Estimator interface {
	Estimate(text string) int
}

// punctuation is the fixed set of characters that commonly tokenize as
// separate tokens in code and configuration text.
const punctuation = "{}()[].,;:\"'`=+-*/\\<>!@#$%^&|~"

// Heuristic estimates tokens as chars/CharsPerToken plus a per-punctuation
// adjustment. It is a pure function of its input: no I/O, never fails.
type Heuristic struct {
	CharsPerToken int     // characters per token, 4 if unset
	PunctWeight   float64 // extra tokens per punctuation character; zero disables the adjustment
}

// NewHeuristic returns a Heuristic with the default ratios.
func NewHeuristic() *Heuristic {
	return &Heuristic{CharsPerToken: 4, PunctWeight: 0.3}
}

// Estimate returns the approximate token count for text. Whitespace runs are
// collapsed before counting; the result is truncated toward zero and is never
// negative. The empty string yields 0.
func (h *Heuristic) Estimate(text string) int {
	cleaned := strings.Join(strings.Fields(text), " ")
	if cleaned == "" {
		return 0
	}

	ratio := h.CharsPerToken
	if ratio <= 0 {
		ratio = 4
	}

	punct := 0
	for _, r := range cleaned {
		if strings.ContainsRune(punctuation, r) {
			punct++
		}
	}

	base := float64(utf8.RuneCountInString(cleaned)) / float64(ratio)
	n := int(base + h.PunctWeight*float64(punct))
	if n < 0 {
		return 0
	}
	return n
}
