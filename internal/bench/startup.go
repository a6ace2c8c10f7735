package bench

import (
	"context"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"tfbench/internal/domain/bench"
	lspDomain "tfbench/internal/domain/lsp"
)

// Overhead bounds the startup suite checks against: roughly half a second to
// become queryable and under 100 MB resident.
const (
	startupTargetSeconds = 0.5
	memoryTargetMB       = 100.0
)

// LifecycleClient is the slice of the language server client the startup
// prober needs: the full process lifecycle plus one query to confirm the
// server is actually answering, not just spawned.
type LifecycleClient interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	PID() int
	WorkspaceSymbols(ctx context.Context, query string) ([]lspDomain.SymbolInformation, error)
}

// StartupProber measures what a scoped language server acquisition costs.
// Each sample spawns a fresh server, so the factory is called once per
// sample.
type StartupProber struct {
	newClient func() LifecycleClient
	timeout   time.Duration
	rss       func(pid int) (uint64, error)
}

// NewStartupProber creates a prober. timeout bounds the first query and the
// per-sample shutdown.
func NewStartupProber(newClient func() LifecycleClient, timeout time.Duration) *StartupProber {
	return &StartupProber{newClient: newClient, timeout: timeout, rss: processRSS}
}

// Run collects the requested number of samples. A failed sample is recorded
// and the next one still runs.
func (p *StartupProber) Run(ctx context.Context, samples int) []bench.StartupSample {
	rows := make([]bench.StartupSample, 0, samples)
	for i := 1; i <= samples; i++ {
		rows = append(rows, p.sample(ctx, i))
	}
	return rows
}

func (p *StartupProber) sample(ctx context.Context, n int) bench.StartupSample {
	row := bench.StartupSample{Sample: n}
	client := p.newClient()

	start := time.Now()
	if err := client.Start(ctx); err != nil {
		row.Error = err.Error()
		return row
	}
	row.StartupSeconds = time.Since(start).Seconds()

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		if err := client.Stop(stopCtx); err != nil {
			slog.Warn("startup sample stop", "sample", n, "error", err)
		}
	}()

	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	queryStart := time.Now()
	_, err := client.WorkspaceSymbols(reqCtx, "terraform")
	row.FirstQuerySeconds = time.Since(queryStart).Seconds()
	cancel()
	if err != nil {
		row.Error = err.Error()
		return row
	}

	// The server runs in its own process, so its RSS is the whole memory
	// overhead of having it around.
	if rss, err := p.rss(client.PID()); err != nil {
		slog.Warn("rss unavailable", "sample", n, "error", err)
	} else {
		row.MemoryRSSMB = float64(rss) / (1024 * 1024)
	}

	row.Success = true
	slog.Info("startup sample",
		"sample", n,
		"startup_seconds", row.StartupSeconds,
		"first_query_seconds", row.FirstQuerySeconds,
		"memory_rss_mb", row.MemoryRSSMB,
	)
	return row
}

func processRSS(pid int) (uint64, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return 0, err
	}
	info, err := proc.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}

// AggregateStartup averages the successful samples and checks the overhead
// bounds. Pure; RunID and GeneratedAt are stamped by the caller.
func AggregateStartup(samples []bench.StartupSample) bench.StartupReport {
	report := bench.StartupReport{Samples: samples}

	ok := 0
	var sumStartup, sumMem float64
	for _, s := range samples {
		if !s.Success {
			continue
		}
		ok++
		sumStartup += s.StartupSeconds
		sumMem += s.MemoryRSSMB
	}
	if ok > 0 {
		report.AvgStartupSeconds = sumStartup / float64(ok)
		report.AvgMemoryRSSMB = sumMem / float64(ok)
		report.StartupTargetMet = report.AvgStartupSeconds <= startupTargetSeconds
		report.MemoryTargetMet = report.AvgMemoryRSSMB < memoryTargetMB
	}
	return report
}
