package main

import (
	"fmt"

	"github.com/obentoo/flakeage/internal/report"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every input with its age",
	Long: `List every input of the flake lock file with its last-modified date and
age in days, newest first. Inputs older than stale_after_days are marked.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ages, err := report.List(cfg, now())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.FormatList(ages, cfg.StaleAfterDays))
	return nil
}
