package harness

import "fmt"

// ExecutionError reports that the combined script failed to parse or raised
// during execution. Not retried; the invocation is terminal.
type ExecutionError struct {
	Engine string
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("harness: %s execution failed: %v", e.Engine, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// MissingOutputError reports that the script ran to completion but never
// bound the output variable. Callers may substitute a default; the harness
// never coerces this to an empty value.
type MissingOutputError struct {
	Var string
}

func (e *MissingOutputError) Error() string {
	return fmt.Sprintf("harness: script completed without assigning %q", e.Var)
}
