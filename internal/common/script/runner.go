package script

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

var (
	ErrScriptNotFound = errors.New("update script not found")
	ErrScriptFailed   = errors.New("update script could not be run")
)

// Result describes how the script exited
type Result struct {
	ExitCode int    // -1 when the process was terminated by a signal
	Status   string // process state text, e.g. "exit status 1" or "signal: killed"
}

// Success reports whether the script exited with code 0
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// String returns the exit code, or the process state when there is none
func (r *Result) String() string {
	if r.ExitCode >= 0 {
		return strconv.Itoa(r.ExitCode)
	}
	return r.Status
}

// Runner executes a script with no arguments, inheriting the standard streams
type Runner struct {
	path   string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// RunnerOption is a functional option for configuring Runner
type RunnerOption func(*Runner)

// WithOutput replaces the inherited stdout and stderr
func WithOutput(stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithInput replaces the inherited stdin
func WithInput(stdin io.Reader) RunnerOption {
	return func(r *Runner) {
		r.stdin = stdin
	}
}

// NewRunner creates a new Runner for the script at path
func NewRunner(path string, opts ...RunnerOption) *Runner {
	r := &Runner{
		path:   path,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the script path
func (r *Runner) Path() string {
	return r.path
}

// Run executes the script and waits for it. A non-zero exit code is reported
// in the Result, not as an error; errors mean the script never ran.
func (r *Runner) Run() (*Result, error) {
	// exec.Command looks bare names up in PATH; the configured path is a file
	path, err := filepath.Abs(r.path)
	if err != nil {
		return nil, errors.Join(ErrScriptFailed, err)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, r.path)
		}
		return nil, errors.Join(ErrScriptFailed, err)
	}

	cmd := exec.Command(path)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errors.Join(ErrScriptFailed, err)
		}
	}

	return &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Status:   cmd.ProcessState.String(),
	}, nil
}
