package token

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Tiktoken counts tokens with a real BPE encoding (cl100k_base by default).
// The encoding is initialized lazily on first use; if initialization fails
// (e.g. the encoding data cannot be loaded), it falls back to the heuristic
// so Estimate never errors.
type Tiktoken struct {
	Encoding string // tiktoken encoding name, cl100k_base if empty

	once     sync.Once
	enc      *tiktoken.Tiktoken
	fallback *Heuristic
}

// NewTiktoken returns a Tiktoken estimator for the given encoding name.
func NewTiktoken(encoding string) *Tiktoken {
	return &Tiktoken{Encoding: encoding, fallback: NewHeuristic()}
}

// Estimate returns the exact token count under the configured encoding, or
// the heuristic estimate when the encoding is unavailable.
func (t *Tiktoken) Estimate(text string) int {
	t.once.Do(func() {
		name := t.Encoding
		if name == "" {
			name = "cl100k_base"
		}
		if enc, err := tiktoken.GetEncoding(name); err == nil {
			t.enc = enc
		}
	})

	if t.enc != nil {
		return len(t.enc.Encode(text, nil, nil))
	}
	if t.fallback == nil {
		t.fallback = NewHeuristic()
	}
	return t.fallback.Estimate(text)
}
