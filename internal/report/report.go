// Package report turns a flake lock into age reports and runs the update script.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/obentoo/flakeage/internal/common/config"
	"github.com/obentoo/flakeage/internal/common/logger"
	"github.com/obentoo/flakeage/internal/common/output"
	"github.com/obentoo/flakeage/internal/flake"
)

// Summary is the result of the show operation
type Summary struct {
	LockFile string
	Latest   flake.Input
	Days     int // whole days between Latest and now, negative for the future
	Inputs   int
}

// Stale reports whether the latest input is older than threshold days.
// A threshold of 0 disables the check.
func (s *Summary) Stale(threshold int) bool {
	return threshold > 0 && s.Days > threshold
}

// InputAge is one row of the list operation
type InputAge struct {
	Name         string
	LastModified time.Time
	Days         int
}

// loadInputs reads the lock file named by cfg with the configured schema
func loadInputs(cfg *config.Config) (string, *flake.InputSet, error) {
	schema, err := flake.ParseSchema(cfg.Schema)
	if err != nil {
		return "", nil, err
	}

	path, err := cfg.LockFilePath()
	if err != nil {
		return "", nil, err
	}

	logger.Debug("Reading %s (schema %s)", path, schema)
	inputs, err := flake.Load(path, schema)
	if err != nil {
		return "", nil, err
	}
	logger.Debug("Found %d inputs", inputs.Len())

	return path, inputs, nil
}

// Show finds the most recently modified input and how long ago that was
func Show(cfg *config.Config, now time.Time) (*Summary, error) {
	path, inputs, err := loadInputs(cfg)
	if err != nil {
		return nil, err
	}

	latest := inputs.LatestInput()
	logger.Debug("Latest input is %s", latest.Name)

	return &Summary{
		LockFile: path,
		Latest:   latest,
		Days:     flake.DaysBetween(now.UTC(), latest.LastModified),
		Inputs:   inputs.Len(),
	}, nil
}

// FormatSummary formats the one-line age report, using local time for the date
func FormatSummary(s *Summary) string {
	return fmt.Sprintf("Latest input is from %d days ago (%s).",
		s.Days, flake.FormatDateTime(s.Latest.LastModified.Local()))
}

// List returns every input with its age, newest first
func List(cfg *config.Config, now time.Time) ([]InputAge, error) {
	_, inputs, err := loadInputs(cfg)
	if err != nil {
		return nil, err
	}

	ages := make([]InputAge, 0, inputs.Len())
	for _, in := range inputs.Inputs() {
		ages = append(ages, InputAge{
			Name:         in.Name,
			LastModified: in.LastModified,
			Days:         flake.DaysBetween(now.UTC(), in.LastModified),
		})
	}

	sort.SliceStable(ages, func(i, j int) bool {
		if !ages[i].LastModified.Equal(ages[j].LastModified) {
			return ages[i].LastModified.After(ages[j].LastModified)
		}
		return ages[i].Name < ages[j].Name
	})

	return ages, nil
}

// FormatList formats input ages as an aligned table. Rows older than
// staleAfter days are marked; 0 disables marking.
func FormatList(ages []InputAge, staleAfter int) string {
	if len(ages) == 0 {
		return "No inputs"
	}

	headers := []string{"INPUT", "LAST MODIFIED", "AGE"}
	rows := make([][]string, 0, len(ages))
	for _, a := range ages {
		rows = append(rows, []string{
			a.Name,
			flake.FormatDateTime(a.LastModified.Local()),
			fmt.Sprintf("%dd", a.Days),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(output.Header.Sprint(strings.TrimRight(joinPadded(headers, widths), " ")))
	sb.WriteString("\n")

	for i, row := range rows {
		a := ages[i]
		line := output.FormatInput(runewidth.FillRight(row[0], widths[0])) + "  " +
			runewidth.FillRight(row[1], widths[1]) + "  " +
			output.FormatAge(a.Days, staleAfter)
		if staleAfter > 0 && a.Days > staleAfter {
			line += output.Dim.Sprint("  (stale)")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// joinPadded pads each cell to its column width and joins them with two spaces
func joinPadded(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = runewidth.FillRight(c, widths[i])
	}
	return strings.Join(padded, "  ")
}
