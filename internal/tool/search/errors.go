package search

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrQueryRequired = errors.New("query is required")
	ErrInvalidOffset = errors.New("offset must be >= 0")
	ErrInvalidLimit  = errors.New("limit must be between 0 and the configured maximum")
	ErrFileMissing   = errors.New("search path does not exist")
	ErrNotADirectory = errors.New("search path is not a directory")
)

// StatError is returned when stat fails.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat search path %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }

// CommandFailedError is returned when the underlying search command fails.
type CommandFailedError struct {
	Cmd   string
	Cause error
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Cmd, e.Cause)
}
func (e *CommandFailedError) Unwrap() error { return e.Cause }
