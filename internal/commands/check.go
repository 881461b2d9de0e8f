package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teklund/barrelint/pkg/classifier"
	"github.com/teklund/barrelint/pkg/output"
	"github.com/teklund/barrelint/pkg/rules"
	"github.com/teklund/barrelint/pkg/scanner"
)

var checkCmd = &cobra.Command{
	Use:   "check [root]",
	Short: "Run the conformance rules over a source tree",
	Long: `Walks the source tree, extracts every import and export statement and
evaluates the conformance rules against each site: internal imports that
bypass a feature's barrel, self-barrel imports, cross-feature exports and
improper layer imports.

Exit codes: 0 when the tree is clean, 1 when violations are found, 2 on
configuration errors. Advisories are printed but do not fail the run.

Example:
  barrelint check
  barrelint check lib --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := cfg.Root
	if len(args) > 0 {
		root = args[0]
	}

	c := classifier.New(cfg.ClassifierOptions())
	engine := rules.NewEngine(c, cfg.RuleFlags())

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("%s: not a directory", root)
		}
		output.Error(fmt.Sprintf("Invalid source root: %v", err))
		return &ExitError{Code: 2, Err: err}
	}

	files, err := scanner.SourceFiles(root, c.Ext())
	if err != nil {
		output.Error(err.Error())
		return &ExitError{Code: 2, Err: err}
	}

	violationCount := 0
	advisoryCount := 0
	checkedSites := 0

	for _, rel := range files {
		if c.IsExcluded(rel) {
			continue
		}
		src, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			output.Verbose(fmt.Sprintf("skipping unreadable file %s: %v", rel, err))
			continue
		}

		for _, stmt := range scanner.Statements(src) {
			checkedSites++
			site := rules.Site{
				URI:      stmt.URI,
				FilePath: rel,
				Range:    rules.Range{Start: stmt.Start, End: stmt.End},
			}

			var diags []rules.Diagnostic
			if stmt.Kind == scanner.Export {
				diags = engine.CheckExport(site)
			} else {
				diags = engine.CheckImport(site)
			}

			for _, d := range diags {
				printDiagnostic(rel, stmt.Line, d)
				if d.Severity == rules.Advisory {
					advisoryCount++
				} else {
					violationCount++
				}
			}
		}
	}

	output.Verbose(fmt.Sprintf("checked %d sites in %d files", checkedSites, len(files)))

	if violationCount == 0 {
		if advisoryCount > 0 {
			output.Info(fmt.Sprintf("%d advisory note(s)", advisoryCount))
		}
		output.Success("No architecture violations found")
		return nil
	}

	output.Error(fmt.Sprintf("%d violation(s), %d advisory note(s)", violationCount, advisoryCount))
	return &ExitError{Code: 1}
}

func printDiagnostic(path string, line int, d rules.Diagnostic) {
	heading := fmt.Sprintf("%s:%d [%s] %s", path, line, d.Kind, d.Message)
	if d.Severity == rules.Advisory {
		output.Info(heading)
	} else {
		output.Warn(heading)
	}
	if d.Correction != nil {
		output.Step(fmt.Sprintf("suggestion: %s", d.Correction.ReplacementText))
	}
}
