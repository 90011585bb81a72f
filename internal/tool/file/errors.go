package file

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrFileMissing              = errors.New("file or path does not exist")
	ErrFileExists               = errors.New("file already exists")
	ErrBinaryFile               = errors.New("file is binary")
	ErrFileTooLarge             = errors.New("file too large")
	ErrOperationsRequired       = errors.New("operations cannot be empty")
	ErrSnippetNotFound          = errors.New("snippet not found")
	ErrReplacementCountMismatch = errors.New("replacement count mismatch")
	ErrIsDirectory              = errors.New("path is a directory")
	ErrPathRequired             = errors.New("path is required")
	ErrContentRequiredForWrite  = errors.New("content is required for write operation")
	ErrInvalidOffset            = errors.New("offset must be >= 0")
	ErrInvalidLimit             = errors.New("limit must be >= 0")
)

// -- Error Types --

// StatError is returned when stat fails for reasons other than a missing file.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }

// ReadError is returned when file content cannot be read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }

// WriteError is returned when file content cannot be written.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}
func (e *WriteError) Unwrap() error { return e.Cause }

// EnsureDirsError is returned when parent directories cannot be created.
type EnsureDirsError struct {
	Path  string
	Cause error
}

func (e *EnsureDirsError) Error() string {
	return fmt.Sprintf("failed to create directories %s: %v", e.Path, e.Cause)
}
func (e *EnsureDirsError) Unwrap() error { return e.Cause }
