package fixture

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCreatesProject(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir); err != nil {
		t.Fatal(err)
	}

	for _, name := range Files() {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestWriteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir); err != nil {
		t.Fatal(err)
	}
	if err := Write(dir); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
}

func TestCleanFixtureParses(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir); err != nil {
		t.Fatal(err)
	}

	diags, err := Validate(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 3 {
		t.Fatalf("expected 3 .tf files validated, got %d", len(diags))
	}
	for file, msgs := range diags {
		if len(msgs) != 0 {
			t.Errorf("%s: unexpected parse errors: %v", file, msgs)
		}
	}
}

func TestBrokenFixtureWritesAllFiles(t *testing.T) {
	dir := t.TempDir()
	if err := WriteBroken(dir); err != nil {
		t.Fatal(err)
	}

	diags, err := Validate(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range BrokenFiles() {
		if _, ok := diags[name]; !ok {
			t.Errorf("expected %s to be validated", name)
		}
	}
}

func TestCountBlocks(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir); err != nil {
		t.Fatal(err)
	}

	counts, err := CountBlocks(dir)
	if err != nil {
		t.Fatal(err)
	}

	// main.tf defines the terraform block, the provider, resources and data
	// sources; variables.tf and outputs.tf are all top-level blocks.
	if counts["main.tf"] < 20 {
		t.Errorf("expected at least 20 blocks in main.tf, got %d", counts["main.tf"])
	}
	if counts["variables.tf"] != 17 {
		t.Errorf("expected 17 variable blocks, got %d", counts["variables.tf"])
	}
	if counts["outputs.tf"] != 25 {
		t.Errorf("expected 25 output blocks, got %d", counts["outputs.tf"])
	}
}
