package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tfbench/internal/fixture"
)

func newFixtureCommand(configPath *string) *cobra.Command {
	var dir string
	var broken bool

	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Write the Terraform fixture project to disk and validate it",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.Fixture.Dir
			}
			return runFixture(dir, broken)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "target directory (default: fixture.dir from config)")
	cmd.Flags().BoolVar(&broken, "broken", false, "write the intentionally broken files instead")
	return cmd
}

func runFixture(dir string, broken bool) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("fixture dir: %w", err)
	}

	if broken {
		if err := fixture.WriteBroken(abs); err != nil {
			return fmt.Errorf("fixture: %w", err)
		}
		fmt.Printf("wrote %d broken files to %s\n", len(fixture.BrokenFiles()), abs)
		return nil
	}

	if err := fixture.Write(abs); err != nil {
		return fmt.Errorf("fixture: %w", err)
	}

	problems, err := fixture.Validate(abs)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	total := 0
	for _, msgs := range problems {
		total += len(msgs)
	}

	blocks, err := fixture.CountBlocks(abs)
	if err != nil {
		return fmt.Errorf("count blocks: %w", err)
	}

	fmt.Printf("wrote %d files to %s\n", len(fixture.Files()), abs)
	for _, name := range fixture.Files() {
		if n, ok := blocks[name]; ok {
			fmt.Printf("  %-14s %3d blocks, %d parse errors\n", name, n, len(problems[name]))
		}
	}
	if total > 0 {
		return fmt.Errorf("fixture has %d parse errors", total)
	}
	return nil
}
