package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teklund/barrelint/pkg/classifier"
	"github.com/teklund/barrelint/pkg/graph"
	"github.com/teklund/barrelint/pkg/logger"
	"github.com/teklund/barrelint/pkg/output"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles [root]",
	Short: "Detect export cycles between feature barrels",
	Long: `Scans every monolithic barrel file under the source root, builds the
barrel-to-barrel export graph and reports every dependency cycle between
features, immediate or transitive.

Exit codes: 0 when no cycles exist, 1 when cycles are found, 2 on
configuration errors such as a missing root directory.

Example:
  barrelint cycles
  barrelint cycles lib --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCycles,
}

func init() {
	RootCmd.AddCommand(cyclesCmd)
}

func runCycles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := cfg.Root
	if len(args) > 0 {
		root = args[0]
	}

	output.Verbose(fmt.Sprintf("scanning %s", root))

	log := logger.NewSilent()
	if verbose {
		log = logger.Default()
	}
	builder := graph.NewBuilder(classifier.New(cfg.ClassifierOptions())).WithLogger(log)
	g, err := builder.Build(root)
	if err != nil {
		output.Error(err.Error())
		return &ExitError{Code: 2, Err: err}
	}

	output.Verbose(fmt.Sprintf("%d barrels, %d export edges", g.Len(), g.EdgeCount()))

	cycles := graph.FindCycles(g)
	if len(cycles) == 0 {
		output.Success(fmt.Sprintf("No cycles found across %d feature barrels", g.Len()))
		return nil
	}

	output.Error(fmt.Sprintf("%d dependency cycle(s) found:", len(cycles)))
	for _, cycle := range cycles {
		output.Step(g.FormatCycle(cycle))
	}
	return &ExitError{Code: 1}
}
