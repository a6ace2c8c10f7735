package bench

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tfbench/internal/domain/bench"
)

// qualityTargetPercent is the success rate the semantic path is expected to
// reach on a clean fixture.
const qualityTargetPercent = 95.0

// DefaultQualityChecks returns the fixed probe set for the semantic quality
// suite. Every check has a known answer in the clean fixture project, so a
// miss means the semantic path lost information, not that the question was
// open-ended.
func DefaultQualityChecks() []bench.QualityCheck {
	return []bench.QualityCheck{
		{Name: "Find VPC resource", Query: "aws_vpc", Expected: "main", MinSymbols: 1},
		{Name: "Find instance resource", Query: "aws_instance", Expected: "bastion", MinSymbols: 1},
		{Name: "Find subnet resources", Query: "aws_subnet", Expected: "public", MinSymbols: 2},
		{Name: "Find security groups", Query: "security_group", Expected: "web", MinSymbols: 3},
		{Name: "Find provider block", Query: "provider", Expected: "aws", MinSymbols: 1},
		{Name: "Find instance type variable", Query: "instance_type", Expected: "instance_type", MinSymbols: 1},
		{Name: "Find CIDR variable", Query: "vpc_cidr", Expected: "vpc_cidr", MinSymbols: 1},
		{Name: "Find outputs", Query: "output", Expected: "vpc_cidr", MinSymbols: 5},
	}
}

// QualityRunner scores workspace/symbol answers against the expected-symbol
// oracle of each check.
type QualityRunner struct {
	client  SymbolClient
	timeout time.Duration
}

// NewQualityRunner creates a QualityRunner. timeout bounds each query.
func NewQualityRunner(client SymbolClient, timeout time.Duration) *QualityRunner {
	return &QualityRunner{client: client, timeout: timeout}
}

// Run executes every check. A failed query is a failed row; the loop always
// continues to the next check.
func (q *QualityRunner) Run(ctx context.Context, checks []bench.QualityCheck) []bench.QualityResult {
	rows := make([]bench.QualityResult, 0, len(checks))
	for _, check := range checks {
		row := bench.QualityResult{Check: check.Name}

		reqCtx, cancel := context.WithTimeout(ctx, q.timeout)
		start := time.Now()
		symbols, err := q.client.WorkspaceSymbols(reqCtx, check.Query)
		row.Seconds = time.Since(start).Seconds()
		cancel()

		if err != nil {
			row.Error = err.Error()
			slog.Warn("quality check failed", "check", check.Name, "error", err)
			rows = append(rows, row)
			continue
		}

		row.SymbolsFound = len(symbols)
		for _, sym := range symbols {
			if strings.Contains(sym.Name, check.Expected) || strings.Contains(sym.ContainerName, check.Expected) {
				row.FoundExpected = true
				break
			}
		}
		row.Success = row.FoundExpected && row.SymbolsFound >= check.MinSymbols

		slog.Info("quality check",
			"check", check.Name,
			"symbols", row.SymbolsFound,
			"found_expected", row.FoundExpected,
			"success", row.Success,
		)
		rows = append(rows, row)
	}
	return rows
}

// AggregateQuality reduces quality rows to a report. Like Aggregate it is
// pure; RunID and GeneratedAt are stamped by the caller.
func AggregateQuality(rows []bench.QualityResult) bench.QualityReport {
	report := bench.QualityReport{Checks: rows}
	for _, r := range rows {
		if r.Success {
			report.Passed++
		}
	}
	if len(rows) > 0 {
		report.SuccessRate = float64(report.Passed) / float64(len(rows)) * 100
		report.TargetMet = report.SuccessRate >= qualityTargetPercent
	}
	return report
}
