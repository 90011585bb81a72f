package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/autocode-agent/autocode/internal/config"
)

// fileEditor defines the minimal filesystem operations needed for editing files.
type fileEditor interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// EditFileTool handles file editing operations.
type EditFileTool struct {
	fileOps      fileEditor
	config       *config.Config
	pathResolver pathResolver
}

// NewEditFileTool creates a new EditFileTool with injected dependencies.
func NewEditFileTool(
	fileOps fileEditor,
	cfg *config.Config,
	pathResolver pathResolver,
) *EditFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &EditFileTool{
		fileOps:      fileOps,
		config:       cfg,
		pathResolver: pathResolver,
	}
}

// Run applies edit operations to an existing file in the workspace.
// Each operation replaces an exact snippet; the occurrence count must match
// the expected count (default 1) or the whole edit is rejected. The file is
// written atomically and the original line endings are preserved.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *EditFileTool) Run(ctx context.Context, req *EditFileRequest) (*EditFileResponse, error) {
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

	info, err := t.fileOps.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, abs)
		}
		return nil, &StatError{Path: abs, Cause: err}
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, abs)
	}

	data, err := t.fileOps.ReadFile(abs)
	if err != nil {
		return nil, &ReadError{Path: abs, Cause: err}
	}

	rawContent := string(data)

	// Detect original line endings for restoration
	hasCRLF := strings.Contains(rawContent, "\r\n")

	// Normalize to \n for consistent matching
	oldContent := strings.ReplaceAll(rawContent, "\r\n", "\n")

	// Preserve original permissions
	originalPerm := info.Mode()

	// Apply operations sequentially (on normalized content)
	content := oldContent
	for _, op := range req.Operations {
		before := strings.ReplaceAll(op.Before, "\r\n", "\n")
		after := strings.ReplaceAll(op.After, "\r\n", "\n")

		expected := op.ExpectedReplacements
		if expected == 0 {
			expected = 1
		}

		// Empty Before means append to end of file
		if before == "" {
			if expected > 1 {
				return nil, fmt.Errorf("%w: append has 1 target, got %d", ErrReplacementCountMismatch, expected)
			}
			content += after
			continue
		}

		count := strings.Count(content, before)
		if count == 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrSnippetNotFound, op.Before, abs)
		}
		if count != expected {
			return nil, fmt.Errorf("%w in %s: expected %d, found %d", ErrReplacementCountMismatch, abs, expected, count)
		}

		content = strings.Replace(content, before, after, expected)
	}

	// Restore original line endings if file had CRLF
	finalContent := content
	if hasCRLF {
		finalContent = strings.ReplaceAll(content, "\n", "\r\n")
	}

	newContentBytes := []byte(finalContent)

	maxFileSize := t.config.Tools.MaxFileSize
	if int64(len(newContentBytes)) > maxFileSize {
		return nil, fmt.Errorf("%w: %s after edit (size %d, limit %d)", ErrFileTooLarge, abs, len(newContentBytes), maxFileSize)
	}

	if err := t.fileOps.WriteFileAtomic(abs, newContentBytes, originalPerm); err != nil {
		return nil, &WriteError{Path: abs, Cause: err}
	}

	diff, added, removed := computeUnifiedDiff(filepath.Base(abs), oldContent, content)

	return &EditFileResponse{
		AbsolutePath: abs,
		RelativePath: rel,
		Diff:         diff,
		AddedLines:   added,
		RemovedLines: removed,
	}, nil
}

func computeUnifiedDiff(filename, oldContent, newContent string) (diff string, added, removed int) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldContent),
		B:        difflib.SplitLines(newContent),
		FromFile: "a/" + filename,
		ToFile:   "b/" + filename,
		Context:  3,
	}
	diff, _ = difflib.GetUnifiedDiffString(ud)

	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			added++
		} else if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			removed++
		}
	}
	return diff, added, removed
}
