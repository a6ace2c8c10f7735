package bench

import (
	"tfbench/internal/config"
	"tfbench/internal/domain/bench"
)

// Aggregate reduces a scenario sequence into an AggregateReport. It is pure
// and deterministic: the same input always yields the same report, so RunID
// and GeneratedAt are left for the caller to stamp. Percentages are guarded
// against empty input and zero baselines; a negative percent (semantic output
// larger than baseline) is a legitimate value, not an error.
func Aggregate(results []bench.ScenarioResult, pricing config.Pricing) bench.AggregateReport {
	report := bench.AggregateReport{
		Scenarios: results,
	}

	var lspIn, lspOut, baseIn, baseOut int
	succeeded := 0
	percentSum := 0.0

	for i, r := range results {
		report.TotalLSPTokens += r.LSPTokens
		report.TotalBaselineTokens += r.BaselineTokens
		lspIn += r.LSPInputTokens
		lspOut += r.LSPOutputTokens
		baseIn += r.BaselineInputTokens
		baseOut += r.BaselineOutputToken

		if r.Success {
			succeeded++
		}
		percentSum += r.Percent

		if i == 0 || r.Percent > report.BestPercent {
			report.BestScenario = r.ScenarioName
			report.BestPercent = r.Percent
		}
		if i == 0 || r.Percent < report.WorstPercent {
			report.WorstScenario = r.ScenarioName
			report.WorstPercent = r.Percent
		}
	}

	report.TotalSavings = report.TotalBaselineTokens - report.TotalLSPTokens
	if report.TotalBaselineTokens > 0 {
		report.PercentSaved = float64(report.TotalSavings) / float64(report.TotalBaselineTokens) * 100
	}
	if len(results) > 0 {
		report.AveragePercentSaved = percentSum / float64(len(results))
		report.SuccessRate = float64(succeeded) / float64(len(results)) * 100
	}

	report.LSPCostUSD = cost(lspIn, lspOut, pricing)
	report.BaselineCostUSD = cost(baseIn, baseOut, pricing)
	report.EstimatedCostSavings = report.BaselineCostUSD - report.LSPCostUSD

	return report
}

// cost converts input/output token counts to dollars at per-1K rates.
func cost(in, out int, p config.Pricing) float64 {
	return float64(in)/1000*p.InputPer1K + float64(out)/1000*p.OutputPer1K
}
