// Package fixture materializes the on-disk Terraform test project the
// benchmarks run against: a realistic multi-resource AWS configuration for
// the token scenarios, and a set of intentionally broken files for the
// error-detection benchmark. Fixtures are read-only during a run.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// Files lists the clean fixture files, in the order they are written.
func Files() []string {
	return []string{"main.tf", "variables.tf", "outputs.tf", "user_data.sh"}
}

// BrokenFiles lists the intentionally erroneous fixture files.
func BrokenFiles() []string {
	return []string{"syntax_errors.tf", "logic_errors.tf", "reference_errors.tf", "variables_errors.tf"}
}

// Write creates dir and writes the clean Terraform project into it,
// overwriting any previous contents of the same names.
func Write(dir string) error {
	contents := map[string]string{
		"main.tf":      mainTF,
		"variables.tf": variablesTF,
		"outputs.tf":   outputsTF,
		"user_data.sh": userDataSH,
	}
	return writeAll(dir, contents)
}

// WriteBroken creates dir and writes the broken Terraform files into it.
func WriteBroken(dir string) error {
	contents := map[string]string{
		"syntax_errors.tf":    syntaxErrorsTF,
		"logic_errors.tf":     logicErrorsTF,
		"reference_errors.tf": referenceErrorsTF,
		"variables_errors.tf": variablesErrorsTF,
	}
	return writeAll(dir, contents)
}

func writeAll(dir string, contents map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create fixture dir: %w", err)
	}
	for name, body := range contents {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// Validate parses every .tf file in dir with the HCL parser and returns the
// diagnostic messages per file. An empty slice means the file is
// syntactically valid HCL; semantic mistakes (dangling references, type
// mismatches) are invisible to a bare parse and only surface through the
// language server.
func Validate(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read fixture dir: %w", err)
	}

	parser := hclparse.NewParser()
	result := make(map[string][]string)

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".tf" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		src, err := os.ReadFile(path) //nolint:gosec // G304: path under fixture dir
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}

		_, diags := parser.ParseHCL(src, e.Name())
		msgs := make([]string, 0, len(diags))
		for _, d := range diags {
			if d.Severity == hcl.DiagError {
				msgs = append(msgs, d.Summary)
			}
		}
		result[e.Name()] = msgs
	}

	return result, nil
}

// CountBlocks returns the number of top-level HCL blocks per .tf file in dir.
// Used as a structural cross-check for the symbol-exploration output.
func CountBlocks(dir string) (map[string]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read fixture dir: %w", err)
	}

	parser := hclparse.NewParser()
	counts := make(map[string]int)

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".tf" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		src, err := os.ReadFile(path) //nolint:gosec // G304: path under fixture dir
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}

		f, diags := parser.ParseHCL(src, e.Name())
		if diags.HasErrors() || f == nil {
			counts[e.Name()] = 0
			continue
		}
		body, ok := f.Body.(*hclsyntax.Body)
		if !ok {
			counts[e.Name()] = 0
			continue
		}
		counts[e.Name()] = len(body.Blocks)
	}

	return counts, nil
}
