package ports

// ExecResult holds the captured output of an external command.
type ExecResult struct {
	Stdout   string
	ExitCode int
}

// CommandRunner defines the interface for external process invocation.
// This is a driven port (implemented by adapters).
type CommandRunner interface {
	// Run executes program with args and captures its stdout, blocking
	// until the process exits. The error is non-nil only when the process
	// could not be spawned; a nonzero exit is reported via ExitCode.
	Run(program string, args ...string) (ExecResult, error)
}
