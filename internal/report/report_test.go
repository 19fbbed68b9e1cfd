package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/obentoo/flakeage/internal/common/config"
	"github.com/obentoo/flakeage/internal/common/output"
	"github.com/obentoo/flakeage/internal/common/script"
	"github.com/obentoo/flakeage/internal/flake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLock = `{
  "nodes": {
    "home-manager": {"locked": {"lastModified": 1699000000}},
    "nixpkgs": {"locked": {"lastModified": 1700000000}},
    "flake-utils": {"locked": {"lastModified": 1600000000}},
    "root": {"inputs": {"home-manager": "home-manager", "nixpkgs": "nixpkgs"}}
  },
  "root": "root",
  "version": 7
}`

// testConfig writes content to a temp lock file and returns a config pointing at it
func testConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flake.lock")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := config.Default()
	cfg.LockFile = path
	cfg.UpdateScript = filepath.Join(t.TempDir(), "update.sh")
	return cfg
}

func TestMain(m *testing.M) {
	output.NoColor()
	os.Exit(m.Run())
}

func TestShow(t *testing.T) {
	cfg := testConfig(t, testLock)
	latest := time.Unix(1700000000, 0).UTC()
	now := latest.Add(10*24*time.Hour + 5*time.Hour)

	summary, err := Show(cfg, now)
	require.NoError(t, err)

	assert.Equal(t, cfg.LockFile, summary.LockFile)
	assert.Equal(t, "nixpkgs", summary.Latest.Name)
	assert.True(t, summary.Latest.LastModified.Equal(latest))
	assert.Equal(t, 10, summary.Days)
	assert.Equal(t, 3, summary.Inputs)

	expected := "Latest input is from 10 days ago (" + flake.FormatDateTime(latest.Local()) + ")."
	assert.Equal(t, expected, FormatSummary(summary))
}

func TestShowRootInputsSchema(t *testing.T) {
	cfg := testConfig(t, testLock)
	cfg.Schema = string(flake.SchemaRootInputs)

	summary, err := Show(cfg, time.Unix(1700000000, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Inputs, "flake-utils is not a root input")
}

func TestShowFutureTimestamp(t *testing.T) {
	cfg := testConfig(t, testLock)
	now := time.Unix(1700000000, 0).Add(-time.Hour)

	summary, err := Show(cfg, now)
	require.NoError(t, err)
	assert.Equal(t, -1, summary.Days)
	assert.Contains(t, FormatSummary(summary), "from -1 days ago")
}

func TestShowErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		mutate  func(*config.Config)
		check   func(t *testing.T, err error)
	}{
		{
			name:    "missing file",
			content: testLock,
			mutate:  func(c *config.Config) { c.LockFile = filepath.Join(filepath.Dir(c.LockFile), "nope.lock") },
			check: func(t *testing.T, err error) {
				var readErr *flake.ReadError
				assert.ErrorAs(t, err, &readErr)
			},
		},
		{
			name:    "invalid json",
			content: `{`,
			check: func(t *testing.T, err error) {
				var syntaxErr *flake.SyntaxError
				assert.ErrorAs(t, err, &syntaxErr)
			},
		},
		{
			name:    "wrong version",
			content: `{"version":6,"root":"root","nodes":{}}`,
			check:   func(t *testing.T, err error) { assert.ErrorIs(t, err, flake.ErrUnsupportedVersion) },
		},
		{
			name:    "malformed",
			content: `{"version":7,"root":"root"}`,
			check:   func(t *testing.T, err error) { assert.ErrorIs(t, err, flake.ErrMalformed) },
		},
		{
			name:    "no inputs",
			content: `{"version":7,"root":"root","nodes":{"root":{}}}`,
			check:   func(t *testing.T, err error) { assert.ErrorIs(t, err, flake.ErrNoInputs) },
		},
		{
			name:    "unknown schema",
			content: testLock,
			mutate:  func(c *config.Config) { c.Schema = "graph" },
			check:   func(t *testing.T, err error) { assert.ErrorIs(t, err, flake.ErrUnknownSchema) },
		},
		{
			name:    "lock file not configured",
			content: testLock,
			mutate:  func(c *config.Config) { c.LockFile = "" },
			check:   func(t *testing.T, err error) { assert.ErrorIs(t, err, config.ErrLockFileNotSet) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.content)
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			summary, err := Show(cfg, time.Now())
			require.Error(t, err)
			assert.Nil(t, summary)
			tt.check(t, err)
		})
	}
}

func TestSummaryStale(t *testing.T) {
	s := &Summary{Days: 31}
	assert.True(t, s.Stale(30))
	assert.False(t, s.Stale(31))
	assert.False(t, s.Stale(0), "a threshold of 0 disables the check")
}

func TestList(t *testing.T) {
	cfg := testConfig(t, testLock)
	now := time.Unix(1700000000, 0).Add(24 * time.Hour)

	ages, err := List(cfg, now)
	require.NoError(t, err)

	names := make([]string, 0, len(ages))
	for _, a := range ages {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"nixpkgs", "home-manager", "flake-utils"}, names)
	assert.Equal(t, 1, ages[0].Days)
	assert.Equal(t, 12, ages[1].Days)
}

func TestListTiesSortByName(t *testing.T) {
	cfg := testConfig(t, `{"version":7,"root":"root","nodes":{"b":{"locked":{"lastModified":10}},"a":{"locked":{"lastModified":10}}}}`)

	ages, err := List(cfg, time.Unix(10, 0))
	require.NoError(t, err)
	require.Len(t, ages, 2)
	assert.Equal(t, "a", ages[0].Name)
	assert.Equal(t, "b", ages[1].Name)
}

func TestFormatList(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	ages := []InputAge{
		{Name: "nixpkgs", LastModified: ts, Days: 3},
		{Name: "home-manager", LastModified: ts, Days: 45},
	}

	out := FormatList(ages, 30)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[0], "INPUT         LAST MODIFIED"), "header: %q", lines[0])
	date := flake.FormatDateTime(ts.Local())
	assert.Equal(t, "nixpkgs       "+date+"  3d", lines[1])
	assert.Equal(t, "home-manager  "+date+"  45d  (stale)", lines[2])

	assert.NotContains(t, FormatList(ages, 0), "(stale)")
	assert.Equal(t, "No inputs", FormatList(nil, 30))
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		result   *script.Result
		err      error
		expected string
	}{
		{name: "success", result: &script.Result{ExitCode: 0, Status: "exit status 0"}, expected: "Exited with status 0!"},
		{name: "non-zero exit is reported", result: &script.Result{ExitCode: 2, Status: "exit status 2"}, expected: "Exited with status 2!"},
		{name: "signalled", result: &script.Result{ExitCode: -1, Status: "signal: killed"}, expected: "Exited with status signal: killed!"},
		{name: "cannot start", err: script.ErrScriptNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := script.NewMockRunner("/home/user/.dotfiles/scripts/update.sh")
			mock.RunFunc = func() (*script.Result, error) { return tt.result, tt.err }

			result, err := Update(mock)
			assert.Equal(t, 1, mock.Calls)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatUpdateResult(result))
		})
	}
}

func TestNewUpdateRunner(t *testing.T) {
	cfg := config.Default()
	cfg.UpdateScript = "/opt/update.sh"

	runner, err := NewUpdateRunner(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/opt/update.sh", runner.Path())

	cfg.UpdateScript = ""
	_, err = NewUpdateRunner(cfg)
	assert.ErrorIs(t, err, config.ErrUpdateScriptNotSet)
}
