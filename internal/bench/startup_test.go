package bench

import (
	"context"
	"errors"
	"testing"
	"time"

	"tfbench/internal/domain/bench"
	lspDomain "tfbench/internal/domain/lsp"
)

// fakeLifecycleClient satisfies LifecycleClient without spawning a process.
type fakeLifecycleClient struct {
	startErr error
	queryErr error
	started  bool
	stopped  bool
}

func (f *fakeLifecycleClient) Start(_ context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	return nil
}

func (f *fakeLifecycleClient) Stop(_ context.Context) error {
	f.stopped = true
	return nil
}

func (f *fakeLifecycleClient) PID() int { return 4242 }

func (f *fakeLifecycleClient) WorkspaceSymbols(_ context.Context, _ string) ([]lspDomain.SymbolInformation, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return []lspDomain.SymbolInformation{{Name: "aws_vpc.main"}}, nil
}

func TestStartupProberSamples(t *testing.T) {
	var clients []*fakeLifecycleClient
	prober := NewStartupProber(func() LifecycleClient {
		c := &fakeLifecycleClient{}
		clients = append(clients, c)
		return c
	}, time.Second)
	prober.rss = func(pid int) (uint64, error) {
		if pid != 4242 {
			t.Errorf("rss queried for pid %d, want 4242", pid)
		}
		return 48 << 20, nil
	}

	rows := prober.Run(context.Background(), 3)
	if len(rows) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(rows))
	}
	if len(clients) != 3 {
		t.Fatalf("expected a fresh client per sample, got %d", len(clients))
	}
	for i, row := range rows {
		if !row.Success {
			t.Errorf("sample %d failed: %s", i, row.Error)
		}
		if row.MemoryRSSMB != 48 {
			t.Errorf("sample %d rss = %v MB, want 48", i, row.MemoryRSSMB)
		}
		if !clients[i].stopped {
			t.Errorf("sample %d left its server running", i)
		}
	}
}

func TestStartupProberStartFailure(t *testing.T) {
	client := &fakeLifecycleClient{startErr: errors.New("binary not found")}
	prober := NewStartupProber(func() LifecycleClient { return client }, time.Second)

	rows := prober.Run(context.Background(), 1)
	row := rows[0]
	if row.Success || row.Error == "" {
		t.Errorf("start failure should be recorded: %+v", row)
	}
	if client.stopped {
		t.Error("a client that never started must not be stopped")
	}
}

func TestStartupProberQueryFailureStillStops(t *testing.T) {
	client := &fakeLifecycleClient{queryErr: errors.New("timeout")}
	prober := NewStartupProber(func() LifecycleClient { return client }, time.Second)

	rows := prober.Run(context.Background(), 1)
	if rows[0].Success {
		t.Error("query failure should fail the sample")
	}
	if !client.stopped {
		t.Error("server must be stopped even when the query fails")
	}
}

func TestAggregateStartup(t *testing.T) {
	samples := []bench.StartupSample{
		{Sample: 1, StartupSeconds: 0.3, MemoryRSSMB: 40, Success: true},
		{Sample: 2, StartupSeconds: 0.5, MemoryRSSMB: 60, Success: true},
		{Sample: 3, Error: "spawn failed"},
	}
	report := AggregateStartup(samples)
	if report.AvgStartupSeconds != 0.4 {
		t.Errorf("avg startup = %v, want 0.4", report.AvgStartupSeconds)
	}
	if report.AvgMemoryRSSMB != 50 {
		t.Errorf("avg rss = %v, want 50", report.AvgMemoryRSSMB)
	}
	if !report.StartupTargetMet || !report.MemoryTargetMet {
		t.Errorf("targets should be met: %+v", report)
	}
}

func TestAggregateStartupTargetsNotMet(t *testing.T) {
	report := AggregateStartup([]bench.StartupSample{
		{Sample: 1, StartupSeconds: 2.0, MemoryRSSMB: 250, Success: true},
	})
	if report.StartupTargetMet {
		t.Error("2s startup must not meet the half-second target")
	}
	if report.MemoryTargetMet {
		t.Error("250 MB must not meet the 100 MB target")
	}
}

func TestAggregateStartupEmpty(t *testing.T) {
	report := AggregateStartup(nil)
	if report.StartupTargetMet || report.MemoryTargetMet {
		t.Errorf("no successful samples must not claim targets met: %+v", report)
	}
}
