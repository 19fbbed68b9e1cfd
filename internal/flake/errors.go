package flake

import (
	"errors"
	"fmt"
)

// Error variables for lock file parsing
var (
	// ErrMalformed is returned when a required field is missing or has the wrong type
	ErrMalformed = errors.New("malformed flake lock")
	// ErrNoInputs is returned when the lock file has no inputs to report on
	ErrNoInputs = errors.New("no inputs")
	// ErrUnsupportedVersion is matched by every *VersionError
	ErrUnsupportedVersion = errors.New("unsupported flake lock version")
	// ErrUnknownSchema is returned for schema names other than "nodes" and "root-inputs"
	ErrUnknownSchema = errors.New("unknown lock schema")
)

// ReadError is returned when the lock file cannot be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read flake lock file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// SyntaxError is returned when the lock file is not valid JSON
type SyntaxError struct {
	Offset int64 // byte offset of the error, 0 when unknown
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("could not parse flake lock as json (offset %d): %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("could not parse flake lock as json: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// VersionError is returned when the top-level version is not SupportedVersion.
// Actual holds the JSON text of the value found ("null" when absent).
type VersionError struct {
	Expected int
	Actual   string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("version of flake lock should be %d, but instead it is '%s'", e.Expected, e.Actual)
}

// Is reports whether target is ErrUnsupportedVersion
func (e *VersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// malformed wraps ErrMalformed with a short description of what was wrong
func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
