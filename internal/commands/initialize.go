package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teklund/barrelint/pkg/config"
	"github.com/teklund/barrelint/pkg/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default barrelint.yaml",
	Long: `Writes the default configuration to barrelint.yaml in the current
directory so the token sets and rule flags can be adjusted per project.
Refuses to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	RootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil {
		err = fmt.Errorf("%s already exists", configPath)
		output.Error(err.Error())
		return &ExitError{Code: 2, Err: err}
	}

	if err := config.Save(configPath, config.Default()); err != nil {
		output.Error(err.Error())
		return &ExitError{Code: 2, Err: err}
	}

	output.Success(fmt.Sprintf("Created %s", configPath))
	output.Step("adjust the token sets and rule flags to your project")
	return nil
}
