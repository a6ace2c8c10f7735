package report

import (
	"fmt"

	"github.com/fatih/color"

	"tfbench/internal/domain/bench"
)

// PrintSummary writes a colorized scenario table and totals to stdout.
func PrintSummary(report bench.AggregateReport) {
	header := color.New(color.Bold)
	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	header.Println("Token Usage: Semantic vs Full-File Context")
	fmt.Println()

	fmt.Printf("%-36s %10s %10s %10s %9s\n", "Scenario", "Semantic", "Baseline", "Savings", "% Saved")
	fmt.Println(divider)
	for _, r := range report.Scenarios {
		name := r.ScenarioName
		if len(name) > 35 {
			name = name[:35]
		}
		line := fmt.Sprintf("%-36s %10d %10d %10d %8.1f%%", name, r.LSPTokens, r.BaselineTokens, r.Savings, r.Percent)
		if r.Success {
			fmt.Println(line)
		} else {
			bad.Printf("%s  (failed: %s)\n", line, r.Error)
		}
	}
	fmt.Println(divider)
	fmt.Printf("%-36s %10d %10d %10d %8.2f%%\n", "TOTALS",
		report.TotalLSPTokens, report.TotalBaselineTokens, report.TotalSavings, report.PercentSaved)
	fmt.Println()

	fmt.Printf("Success rate: %.1f%%\n", report.SuccessRate)
	if report.BestScenario != "" {
		fmt.Printf("Best: %s (%.1f%%), worst: %s (%.1f%%)\n",
			report.BestScenario, report.BestPercent, report.WorstScenario, report.WorstPercent)
	}
	good.Printf("Estimated cost savings: $%.4f (semantic $%.4f vs baseline $%.4f)\n",
		report.EstimatedCostSavings, report.LSPCostUSD, report.BaselineCostUSD)
}

// PrintDiagnostics writes the error-detection rows to stdout.
func PrintDiagnostics(rows []bench.FileDiagnostics) {
	header := color.New(color.Bold)
	bad := color.New(color.FgRed)

	header.Println("Error Detection: language server vs bare parse")
	fmt.Println()

	fmt.Printf("%-24s %16s %16s\n", "File", "LSP diagnostics", "Parse diagnostics")
	fmt.Println(divider)
	for _, row := range rows {
		if !row.Success {
			bad.Printf("%-24s  failed: %s\n", row.File, row.Error)
			continue
		}
		fmt.Printf("%-24s %16d %16d\n", row.File, row.LSPDiagnostics, row.ParseDiagnostics)
	}
}

// PrintQuality writes the semantic quality rows and score to stdout.
func PrintQuality(report bench.QualityReport) {
	header := color.New(color.Bold)
	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	header.Println("Semantic Quality: workspace symbol accuracy")
	fmt.Println()

	fmt.Printf("%-36s %8s %9s %9s\n", "Check", "Symbols", "Expected", "Time")
	fmt.Println(divider)
	for _, r := range report.Checks {
		if r.Error != "" {
			bad.Printf("%-36s  failed: %s\n", r.Check, r.Error)
			continue
		}
		expected := "yes"
		if !r.FoundExpected {
			expected = "no"
		}
		line := fmt.Sprintf("%-36s %8d %9s %8.3fs", r.Check, r.SymbolsFound, expected, r.Seconds)
		if r.Success {
			fmt.Println(line)
		} else {
			bad.Println(line)
		}
	}
	fmt.Println(divider)

	fmt.Printf("Passed %d/%d (%.1f%%)\n", report.Passed, len(report.Checks), report.SuccessRate)
	if report.TargetMet {
		good.Println("Target (95% success) met")
	} else {
		bad.Println("Target (95% success) not met")
	}
}

// PrintStartup writes the startup cost samples and averages to stdout.
func PrintStartup(report bench.StartupReport) {
	header := color.New(color.Bold)
	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	header.Println("Startup Cost: language server acquisition overhead")
	fmt.Println()

	fmt.Printf("%8s %12s %14s %12s\n", "Sample", "Startup", "First query", "RSS")
	fmt.Println(divider)
	for _, s := range report.Samples {
		if !s.Success {
			bad.Printf("%8d  failed: %s\n", s.Sample, s.Error)
			continue
		}
		fmt.Printf("%8d %11.3fs %13.3fs %9.1fMB\n",
			s.Sample, s.StartupSeconds, s.FirstQuerySeconds, s.MemoryRSSMB)
	}
	fmt.Println(divider)

	fmt.Printf("Average startup %.3fs, average RSS %.1fMB\n",
		report.AvgStartupSeconds, report.AvgMemoryRSSMB)
	printTarget := func(met bool, label string) {
		if met {
			good.Printf("Target met: %s\n", label)
		} else {
			bad.Printf("Target not met: %s\n", label)
		}
	}
	printTarget(report.StartupTargetMet, "startup within 0.5s")
	printTarget(report.MemoryTargetMet, "memory under 100MB")
}

const divider = "--------------------------------------------------------------------------------"
