package humps

import "fmt"

// CommandError provides structured error reporting for CLI commands.
type CommandError struct {
	Message    string
	Cause      error
	Suggestion string
	ExitCode   int
}

// Error implements the error interface.
func (e CommandError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "command failed"
}

// Unwrap exposes the wrapped error.
func (e CommandError) Unwrap() error {
	return e.Cause
}

// ExitStatus returns the process exit code associated with the error.
func (e CommandError) ExitStatus() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	return 1
}

// usageError builds a CommandError for invalid user input.
func usageError(suggestion, format string, args ...any) error {
	return CommandError{
		Message:    fmt.Sprintf(format, args...),
		Suggestion: suggestion,
		ExitCode:   2,
	}
}

func formatSuggestion(hint string) string {
	if hint == "" {
		return ""
	}
	return fmt.Sprintf("hint: %s", hint)
}

// DiffError is returned when diff finds differences.
type DiffError struct{}

func (e *DiffError) Error() string { return "differences found" }
