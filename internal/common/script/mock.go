package script

// MockRunner implements Executor for testing.
// RunFunc controls the behavior of Run; without it Run reports exit code 0.
type MockRunner struct {
	RunFunc func() (*Result, error)
	Calls   int
	path    string
}

// NewMockRunner creates a new MockRunner for the specified script path
func NewMockRunner(path string) *MockRunner {
	return &MockRunner{
		path: path,
	}
}

// Run records the call and returns the configured result
func (m *MockRunner) Run() (*Result, error) {
	m.Calls++
	if m.RunFunc != nil {
		return m.RunFunc()
	}
	return &Result{ExitCode: 0, Status: "exit status 0"}, nil
}

// Path returns the script path
func (m *MockRunner) Path() string {
	return m.path
}

// Ensure MockRunner implements Executor
var _ Executor = (*MockRunner)(nil)

// Ensure Runner implements Executor
var _ Executor = (*Runner)(nil)
