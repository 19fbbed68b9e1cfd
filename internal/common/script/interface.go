package script

// Executor defines the interface for running the update script.
// This interface allows for mocking the script in tests.
type Executor interface {
	// Run executes the script and waits for it to finish
	Run() (*Result, error)

	// Path returns the script path
	Path() string
}
