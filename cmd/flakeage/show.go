package main

import (
	"fmt"

	"github.com/obentoo/flakeage/internal/common/output"
	"github.com/obentoo/flakeage/internal/report"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show how long ago the newest input was updated",
	Long: `Read the flake lock file, find the most recently modified input and print
how many days ago that was. This is the default command.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	summary, err := report.Show(cfg, now())
	if err != nil {
		return err
	}

	line := report.FormatSummary(summary)
	if summary.Stale(cfg.StaleAfterDays) {
		line = output.Warning.Sprint(line)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
