package token

import (
	"strings"
	"testing"

	"tfbench/internal/config"
)

func TestEstimateEmpty(t *testing.T) {
	h := NewHeuristic()
	if got := h.Estimate(""); got != 0 {
		t.Errorf("expected 0 for empty string, got %d", got)
	}
	if got := h.Estimate("   \n\t  "); got != 0 {
		t.Errorf("expected 0 for whitespace-only string, got %d", got)
	}
}

func TestEstimateKnownValues(t *testing.T) {
	h := NewHeuristic()

	cases := []struct {
		text string
		want int
	}{
		{"aaaa", 1},          // 4 chars, no punctuation
		{"aaaaaaaa", 2},      // 8 chars
		{"{}", 1},            // 2 chars/4 = 0.5, plus 2*0.3 = 0.6 -> 1
		{"ab", 0},            // truncation toward zero
		{"a   b", 0},         // whitespace collapses to "a b", 3 chars
		// 27 chars -> 6.75, five punctuation chars -> +1.5, truncated to 8
		{"resource \"aws_vpc\" \"main\" {", 8},
	}

	for _, tc := range cases {
		if got := h.Estimate(tc.text); got != tc.want {
			t.Errorf("Estimate(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestEstimateMonotonicInLength(t *testing.T) {
	h := NewHeuristic()

	// Fixed punctuation density: repeat the same chunk.
	prev := 0
	for n := 1; n <= 64; n *= 2 {
		text := strings.Repeat("vpc_id = aws_vpc.main.id\n", n)
		got := h.Estimate(text)
		if got < prev {
			t.Fatalf("estimate decreased from %d to %d at n=%d", prev, got, n)
		}
		prev = got
	}
}

func TestEstimatePunctuationOnly(t *testing.T) {
	h := NewHeuristic()
	if got := h.Estimate("{}()[];;;"); got < 0 {
		t.Errorf("expected non-negative estimate, got %d", got)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	h := NewHeuristic()
	text := `resource "aws_vpc" "main" { cidr_block = var.vpc_cidr }`
	first := h.Estimate(text)
	for i := 0; i < 10; i++ {
		if got := h.Estimate(text); got != first {
			t.Fatalf("estimate changed between calls: %d vs %d", first, got)
		}
	}
}

func TestHeuristicZeroValueDefaults(t *testing.T) {
	var h Heuristic
	if got := h.Estimate("aaaa"); got != 1 {
		t.Errorf("zero-value heuristic should default to 4 chars/token, got %d", got)
	}
}

func TestEstimateZeroWeightDisablesPunctuation(t *testing.T) {
	h := Heuristic{CharsPerToken: 4, PunctWeight: 0}

	// Eight punctuation chars: 8/4 = 2 flat, no per-punctuation bonus.
	if got := h.Estimate("{}()[].,"); got != 2 {
		t.Errorf("Estimate with zero weight = %d, want 2", got)
	}
	weighted := Heuristic{CharsPerToken: 4, PunctWeight: 0.3}
	if d := weighted.Estimate("{}()[].,"); d <= 2 {
		t.Errorf("weighted estimate %d should exceed unweighted 2", d)
	}
}

func TestEstimateNeverNegative(t *testing.T) {
	h := Heuristic{CharsPerToken: 4, PunctWeight: -1}
	if got := h.Estimate("{}"); got != 0 {
		t.Errorf("Estimate with negative weight = %d, want floor at 0", got)
	}
}

func TestTiktokenFallsBackOnBadEncoding(t *testing.T) {
	tk := NewTiktoken("no-such-encoding")
	h := NewHeuristic()

	text := `resource "aws_instance" "bastion" { ami = data.aws_ami.amazon_linux.id }`
	if got, want := tk.Estimate(text), h.Estimate(text); got != want {
		t.Errorf("expected heuristic fallback %d, got %d", want, got)
	}
}

func TestFromConfig(t *testing.T) {
	est := FromConfig(config.Estimator{Mode: "heuristic", CharsPerToken: 2})
	h, ok := est.(*Heuristic)
	if !ok {
		t.Fatalf("expected *Heuristic, got %T", est)
	}
	if h.CharsPerToken != 2 {
		t.Errorf("expected chars per token 2, got %d", h.CharsPerToken)
	}

	if _, ok := FromConfig(config.Estimator{Mode: "tiktoken"}).(*Tiktoken); !ok {
		t.Error("expected *Tiktoken for tiktoken mode")
	}
}
