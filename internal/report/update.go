package report

import (
	"fmt"

	"github.com/obentoo/flakeage/internal/common/config"
	"github.com/obentoo/flakeage/internal/common/logger"
	"github.com/obentoo/flakeage/internal/common/script"
)

// NewUpdateRunner creates the script runner for the configured update script
func NewUpdateRunner(cfg *config.Config, opts ...script.RunnerOption) (*script.Runner, error) {
	path, err := cfg.UpdateScriptPath()
	if err != nil {
		return nil, err
	}
	return script.NewRunner(path, opts...), nil
}

// Update runs the update script and waits for it to finish.
// The script's own exit code is returned in the result, never as an error.
func Update(executor script.Executor) (*script.Result, error) {
	logger.Debug("Running %s", executor.Path())

	result, err := executor.Run()
	if err != nil {
		return nil, err
	}

	logger.Debug("%s finished: %s", executor.Path(), result.Status)
	return result, nil
}

// FormatUpdateResult formats the exit status line
func FormatUpdateResult(result *script.Result) string {
	return fmt.Sprintf("Exited with status %s!", result)
}
