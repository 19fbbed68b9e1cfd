package flake

import "time"

// DateTimeLayout renders as YYYY-MM-DD HH:MM:SS
const DateTimeLayout = "2006-01-02 15:04:05"

const secondsPerDay = 24 * 60 * 60

// FormatDateTime formats t in its own location without a zone suffix.
// Callers convert to local time first.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// DaysBetween returns the whole days from then to now, rounded down.
// The result is negative when then is after now. It works on Unix seconds,
// so instants further apart than a time.Duration can hold still count.
func DaysBetween(now, then time.Time) int {
	secs := now.Unix() - then.Unix()
	if now.Nanosecond() < then.Nanosecond() {
		secs--
	}
	days := secs / secondsPerDay
	if secs%secondsPerDay != 0 && secs < 0 {
		days--
	}
	return int(days)
}
