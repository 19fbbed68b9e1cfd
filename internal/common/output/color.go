package output

import (
	"github.com/fatih/color"
)

var (
	// Message colors
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Dim     = color.New(color.Faint)

	// Structural colors
	Header = color.New(color.FgWhite, color.Bold)
	Input  = color.New(color.FgBlue, color.Bold)
)

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// AgeColor picks the color for an age in days: stale ages are yellow,
// ages in the future red, anything else green. A threshold of 0 never marks
// an age stale.
func AgeColor(days, staleAfter int) *color.Color {
	switch {
	case days < 0:
		return Error
	case staleAfter > 0 && days > staleAfter:
		return Warning
	default:
		return Success
	}
}

// FormatAge formats a day count with its age color
func FormatAge(days, staleAfter int) string {
	return AgeColor(days, staleAfter).Sprintf("%dd", days)
}

// FormatInput formats an input name with color
func FormatInput(name string) string {
	return Input.Sprint(name)
}

// StatusColor returns green for a zero exit code and yellow otherwise
func StatusColor(exitCode int) *color.Color {
	if exitCode == 0 {
		return Success
	}
	return Warning
}
