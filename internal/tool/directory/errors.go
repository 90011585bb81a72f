package directory

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrFileMissing     = errors.New("file or path does not exist")
	ErrNotADirectory   = errors.New("not a directory")
	ErrPatternRequired = errors.New("pattern is required")
	ErrInvalidPattern  = errors.New("invalid pattern")
	ErrInvalidOffset   = errors.New("offset must be >= 0")
	ErrInvalidLimit    = errors.New("limit must be between 0 and the configured maximum")
)

// StatError is returned when stat fails.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }
