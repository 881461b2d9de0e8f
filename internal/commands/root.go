package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teklund/barrelint"
	"github.com/teklund/barrelint/pkg/config"
	"github.com/teklund/barrelint/pkg/logger"
	"github.com/teklund/barrelint/pkg/output"
)

var (
	verbose    bool
	configPath string
)

// ExitError carries a process exit code out of a command: 1 for findings,
// 2 for configuration or I/O errors.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// RootCmd is the root command for barrelint.
var RootCmd = &cobra.Command{
	Use:   "barrelint",
	Short: "Barrelint - architecture checker for feature-first codebases",
	Long: `Barrelint checks feature-first codebases that expose their public surface
through barrel files. It flags imports that bypass a feature's barrel,
enforces the layer dependency direction, and audits the export graph for
cycles between features.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetVerbose(verbose)
		if verbose {
			logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed analysis information")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "Path to configuration file")

	RootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("barrelint v%s\n", barrelint.Version)
		},
	})
}

// loadConfig reads the configuration file, mapping failures to exit code 2.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		output.Error(fmt.Sprintf("Configuration error: %v", err))
		return nil, &ExitError{Code: 2, Err: err}
	}
	return cfg, nil
}
