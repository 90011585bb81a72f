package todo

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrStoreNotConfigured = errors.New("todo store not configured")
)

// -- Error Types --

// InvalidStatusError is returned when a todo has an unknown status.
type InvalidStatusError struct {
	Index  int
	Status TodoStatus
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("todo %d has invalid status %q", e.Index, e.Status)
}

// EmptyDescriptionError is returned when a todo has no description.
type EmptyDescriptionError struct {
	Index int
}

func (e *EmptyDescriptionError) Error() string {
	return fmt.Sprintf("todo %d has an empty description", e.Index)
}

// StoreReadError wraps store read failures.
type StoreReadError struct {
	Cause error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("failed to read todos: %v", e.Cause)
}
func (e *StoreReadError) Unwrap() error { return e.Cause }

// StoreWriteError wraps store write failures.
type StoreWriteError struct {
	Cause error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("failed to write todos: %v", e.Cause)
}
func (e *StoreWriteError) Unwrap() error { return e.Cause }
