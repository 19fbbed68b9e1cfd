package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/obentoo/flakeage/internal/common/config"
	"github.com/obentoo/flakeage/internal/common/logger"
	"github.com/obentoo/flakeage/internal/common/output"
	"github.com/obentoo/flakeage/internal/common/version"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	noColor      bool
	cfgPath      string
	lockFilePath string
	scriptPath   string
	schemaName   string
)

// now is replaced in tests
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "flakeage",
	Short: "Report how stale your flake inputs are",
	Long: `Inspect the flake.lock of your configuration and report when its inputs
were last updated, or run your update script.

Without a subcommand, flakeage behaves like "flakeage show".`,
	Version:       version.Short(),
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		if noColor {
			output.NoColor()
		}
	},
	RunE: runShow,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default $XDG_CONFIG_HOME/flakeage/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&lockFilePath, "lock-file", "", "Flake lock file (overrides lock_file)")
	rootCmd.PersistentFlags().StringVar(&scriptPath, "script", "", "Update script (overrides update_script)")
	rootCmd.PersistentFlags().StringVar(&schemaName, "schema", "", `Lock schema, "nodes" or "root-inputs" (overrides schema)`)

	rootCmd.SetVersionTemplate("{{ .Version }}\n")
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.LoadFrom(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if lockFilePath != "" {
		cfg.LockFile = lockFilePath
	}
	if scriptPath != "" {
		cfg.UpdateScript = scriptPath
	}
	if schemaName != "" {
		cfg.Schema = schemaName
	}

	if cfg.LogFile {
		if err := logger.Default().EnableFileLogging(""); err != nil {
			logger.Warn("file logging disabled: %v", err)
		}
	}

	return cfg, nil
}

// execute runs the root command and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	logger.SetOutput(stderr)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Error: %v", err)
		return 1
	}
	return 0
}

func main() {
	code := execute(os.Args[1:], os.Stdout, os.Stderr)
	logger.Close()
	os.Exit(code)
}
