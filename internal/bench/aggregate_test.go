package bench

import (
	"math"
	"reflect"
	"testing"

	"tfbench/internal/config"
	"tfbench/internal/domain/bench"
)

var testPricing = config.Pricing{InputPer1K: 0.03, OutputPer1K: 0.06}

func TestAggregateEmpty(t *testing.T) {
	report := Aggregate(nil, testPricing)

	if report.TotalLSPTokens != 0 || report.TotalBaselineTokens != 0 || report.TotalSavings != 0 {
		t.Errorf("expected zero totals, got %+v", report)
	}
	if report.PercentSaved != 0 {
		t.Errorf("expected percent_saved 0 for empty input, got %v", report.PercentSaved)
	}
	if report.SuccessRate != 0 {
		t.Errorf("expected success rate 0, got %v", report.SuccessRate)
	}
}

func TestAggregateZeroBaseline(t *testing.T) {
	results := []bench.ScenarioResult{
		{ScenarioName: "empty", LSPTokens: 0, BaselineTokens: 0, Success: true},
	}
	report := Aggregate(results, testPricing)
	if report.PercentSaved != 0 {
		t.Errorf("expected percent_saved 0 when baseline total is 0, got %v", report.PercentSaved)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	results := []bench.ScenarioResult{
		{ScenarioName: "a", LSPTokens: 100, LSPInputTokens: 40, LSPOutputTokens: 60, BaselineTokens: 500, BaselineInputTokens: 480, BaselineOutputToken: 20, Percent: 80, Success: true},
		{ScenarioName: "b", LSPTokens: 300, LSPInputTokens: 100, LSPOutputTokens: 200, BaselineTokens: 200, BaselineInputTokens: 150, BaselineOutputToken: 50, Percent: -50, Success: true},
	}

	first := Aggregate(results, testPricing)
	second := Aggregate(results, testPricing)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregate is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestAggregateSingleScenario(t *testing.T) {
	results := []bench.ScenarioResult{
		{ScenarioName: "Find all VPC resources", LSPTokens: 67, BaselineTokens: 2058, Success: true},
	}
	report := Aggregate(results, testPricing)

	if report.TotalSavings != 1991 {
		t.Errorf("expected savings 1991, got %d", report.TotalSavings)
	}
	if math.Abs(report.PercentSaved-96.74) > 0.01 {
		t.Errorf("expected percent_saved ~96.74, got %.4f", report.PercentSaved)
	}
	if report.SuccessRate != 100 {
		t.Errorf("expected success rate 100, got %v", report.SuccessRate)
	}
}

func TestAggregateNegativeSavings(t *testing.T) {
	// Semantic output larger than baseline: a legitimate outcome, not an error.
	results := []bench.ScenarioResult{
		{ScenarioName: "verbose symbols", LSPTokens: 400, BaselineTokens: 200, Percent: -100, Success: true},
	}
	report := Aggregate(results, testPricing)

	if report.TotalSavings != -200 {
		t.Errorf("expected savings -200, got %d", report.TotalSavings)
	}
	if report.PercentSaved != -100 {
		t.Errorf("expected percent_saved -100, got %v", report.PercentSaved)
	}
}

func TestAggregateTenScenarios(t *testing.T) {
	pairs := [][2]int{
		{67, 2058}, {120, 2058}, {90, 1460}, {85, 1705}, {210, 5223},
		{75, 3763}, {50, 2058}, {180, 5223}, {45, 2058}, {60, 2058},
	}

	var results []bench.ScenarioResult
	wantLSP, wantBaseline := 0, 0
	for i, p := range pairs {
		results = append(results, bench.ScenarioResult{
			ScenarioName:   DefaultScenarios()[i].Name,
			LSPTokens:      p[0],
			BaselineTokens: p[1],
			Success:        true,
		})
		wantLSP += p[0]
		wantBaseline += p[1]
	}

	report := Aggregate(results, testPricing)

	if report.TotalLSPTokens != wantLSP {
		t.Errorf("expected total lsp tokens %d, got %d", wantLSP, report.TotalLSPTokens)
	}
	if report.TotalBaselineTokens != wantBaseline {
		t.Errorf("expected total baseline tokens %d, got %d", wantBaseline, report.TotalBaselineTokens)
	}

	wantPercent := float64(wantBaseline-wantLSP) / float64(wantBaseline) * 100
	if math.Abs(report.PercentSaved-wantPercent) > 0.005 {
		t.Errorf("expected percent_saved %.2f, got %.2f", wantPercent, report.PercentSaved)
	}
	if len(report.Scenarios) != 10 {
		t.Errorf("expected 10 scenarios in report, got %d", len(report.Scenarios))
	}
}

func TestAggregateBestWorst(t *testing.T) {
	results := []bench.ScenarioResult{
		{ScenarioName: "middling", Percent: 50, Success: true},
		{ScenarioName: "best", Percent: 97, Success: true},
		{ScenarioName: "worst", Percent: -10, Success: false},
	}
	report := Aggregate(results, testPricing)

	if report.BestScenario != "best" || report.BestPercent != 97 {
		t.Errorf("unexpected best: %s %.1f", report.BestScenario, report.BestPercent)
	}
	if report.WorstScenario != "worst" || report.WorstPercent != -10 {
		t.Errorf("unexpected worst: %s %.1f", report.WorstScenario, report.WorstPercent)
	}
	if math.Abs(report.SuccessRate-66.6667) > 0.01 {
		t.Errorf("expected success rate ~66.67, got %.4f", report.SuccessRate)
	}
}

func TestAggregateCost(t *testing.T) {
	results := []bench.ScenarioResult{
		{
			ScenarioName:        "cost",
			LSPInputTokens:      1000,
			LSPOutputTokens:     1000,
			LSPTokens:           2000,
			BaselineInputTokens: 10000,
			BaselineOutputToken: 1000,
			BaselineTokens:      11000,
			Success:             true,
		},
	}
	report := Aggregate(results, testPricing)

	// LSP: 1*0.03 + 1*0.06 = 0.09; baseline: 10*0.03 + 1*0.06 = 0.36
	if math.Abs(report.LSPCostUSD-0.09) > 1e-9 {
		t.Errorf("expected lsp cost 0.09, got %v", report.LSPCostUSD)
	}
	if math.Abs(report.BaselineCostUSD-0.36) > 1e-9 {
		t.Errorf("expected baseline cost 0.36, got %v", report.BaselineCostUSD)
	}
	if math.Abs(report.EstimatedCostSavings-0.27) > 1e-9 {
		t.Errorf("expected cost savings 0.27, got %v", report.EstimatedCostSavings)
	}
}
