package errutil

import "errors"

// Sentinel errors shared across tool packages.
var (
	// File operation errors
	ErrOutsideWorkspace = errors.New("path is outside workspace root")
	ErrFileExists       = errors.New("file already exists, use edit_file instead")
	ErrBinaryFile       = errors.New("binary files are not supported")
	ErrTooLarge         = errors.New("file or content exceeds size limit")
	ErrFileMissing      = errors.New("file does not exist")

	// Shell operation errors
	ErrShellTimeout  = errors.New("shell command timed out")
	ErrShellRejected = errors.New("shell command rejected by policy")
)
