package main

import (
	"github.com/obentoo/flakeage/internal/common/output"
	"github.com/obentoo/flakeage/internal/common/script"
	"github.com/obentoo/flakeage/internal/report"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run the update script",
	Long: `Run the configured update script with no arguments and wait for it.
The script's exit status is printed; flakeage itself only fails when the
script cannot be started.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner, err := report.NewUpdateRunner(cfg, script.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	result, err := report.Update(runner)
	if err != nil {
		return err
	}

	output.StatusColor(result.ExitCode).Fprintln(cmd.OutOrStdout(), report.FormatUpdateResult(result))
	return nil
}
