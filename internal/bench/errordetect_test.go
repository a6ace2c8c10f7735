package bench

import (
	"context"
	"errors"
	"testing"
	"time"

	lspDomain "tfbench/internal/domain/lsp"
	"tfbench/internal/fixture"
)

// fakeDiagnosticClient publishes a fixed diagnostic count per opened file.
type fakeDiagnosticClient struct {
	perFile int
	openErr error
	opened  []string
}

func (f *fakeDiagnosticClient) OpenFile(uri, _, _ string) error {
	if f.openErr != nil {
		return f.openErr
	}
	f.opened = append(f.opened, uri)
	return nil
}

func (f *fakeDiagnosticClient) WaitDiagnostics(_ context.Context, _ string) []lspDomain.Diagnostic {
	diags := make([]lspDomain.Diagnostic, f.perFile)
	for i := range diags {
		diags[i] = lspDomain.Diagnostic{Severity: lspDomain.SeverityError, Message: "problem"}
	}
	return diags
}

func TestErrorDetectorRun(t *testing.T) {
	dir := t.TempDir()
	if err := fixture.WriteBroken(dir); err != nil {
		t.Fatal(err)
	}

	client := &fakeDiagnosticClient{perFile: 2}
	detector := NewErrorDetector(client, dir, 50*time.Millisecond)

	rows := detector.Run(context.Background())
	if len(rows) != len(fixture.BrokenFiles()) {
		t.Fatalf("expected %d rows, got %d", len(fixture.BrokenFiles()), len(rows))
	}
	for _, row := range rows {
		if !row.Success {
			t.Errorf("%s: expected success, got error %q", row.File, row.Error)
		}
		if row.LSPDiagnostics != 2 {
			t.Errorf("%s: expected 2 lsp diagnostics, got %d", row.File, row.LSPDiagnostics)
		}
	}
	if len(client.opened) != len(fixture.BrokenFiles()) {
		t.Errorf("expected %d didOpen calls, got %d", len(fixture.BrokenFiles()), len(client.opened))
	}
}

func TestErrorDetectorContinuesOnOpenFailure(t *testing.T) {
	dir := t.TempDir()
	if err := fixture.WriteBroken(dir); err != nil {
		t.Fatal(err)
	}

	client := &fakeDiagnosticClient{openErr: errors.New("connection closed")}
	detector := NewErrorDetector(client, dir, 50*time.Millisecond)

	rows := detector.Run(context.Background())
	if len(rows) != len(fixture.BrokenFiles()) {
		t.Fatalf("expected a row per file even on failure, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Success {
			t.Errorf("%s: expected failure", row.File)
		}
		if row.Error == "" {
			t.Errorf("%s: expected recorded error", row.File)
		}
	}
}
