package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/autocode-agent/autocode/internal/config"
)

// fileWriter defines the minimal filesystem operations needed for writing files.
type fileWriter interface {
	Stat(path string) (os.FileInfo, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
	EnsureDirs(path string) error
}

// WriteFileTool handles file writing operations.
type WriteFileTool struct {
	fileOps        fileWriter
	binaryDetector binaryDetector
	config         *config.Config
	pathResolver   pathResolver
}

// NewWriteFileTool creates a new WriteFileTool with injected dependencies.
func NewWriteFileTool(
	fileOps fileWriter,
	binaryDetector binaryDetector,
	cfg *config.Config,
	pathResolver pathResolver,
) *WriteFileTool {
	return &WriteFileTool{
		fileOps:        fileOps,
		binaryDetector: binaryDetector,
		config:         cfg,
		pathResolver:   pathResolver,
	}
}

// Run creates a new file in the workspace with the specified content.
// It validates the path is within workspace boundaries, checks for binary content,
// enforces size limits, and writes atomically using a temp file + rename pattern.
// Returns an error if the file already exists, is binary, too large, or outside the workspace.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *WriteFileTool) Run(ctx context.Context, req *WriteFileRequest) (*WriteFileResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	abs, err := t.pathResolver.Abs(req.Path)
	if err != nil {
		return nil, err
	}
	rel, err := t.pathResolver.Rel(abs)
	if err != nil {
		return nil, err
	}

	// Check if file already exists
	_, err = t.fileOps.Stat(abs)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrFileExists, abs)
	}
	if !os.IsNotExist(err) {
		return nil, &StatError{Path: abs, Cause: err}
	}

	parentDir := filepath.Dir(abs)
	if err := t.fileOps.EnsureDirs(parentDir); err != nil {
		return nil, &EnsureDirsError{Path: parentDir, Cause: err}
	}

	contentBytes := []byte(req.Content)

	if t.binaryDetector.IsBinaryContent(contentBytes) {
		return nil, fmt.Errorf("%w: %s", ErrBinaryFile, abs)
	}

	if err := t.fileOps.WriteFileAtomic(abs, contentBytes, 0o644); err != nil {
		return nil, &WriteError{Path: abs, Cause: err}
	}

	return &WriteFileResponse{
		AbsolutePath: abs,
		RelativePath: rel,
		BytesWritten: len(contentBytes),
	}, nil
}
