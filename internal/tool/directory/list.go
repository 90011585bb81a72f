package directory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/autocode-agent/autocode/internal/config"
	"github.com/autocode-agent/autocode/internal/tool/paginationutil"
)

// ListDirectoryTool handles directory listing operations.
type ListDirectoryTool struct {
	fs               fileSystem
	gitignoreService gitignoreService
	config           *config.Config
	pathResolver     pathResolver
}

// NewListDirectoryTool creates a new ListDirectoryTool with injected dependencies.
func NewListDirectoryTool(
	fs fileSystem,
	gitignoreService gitignoreService,
	cfg *config.Config,
	pathResolver pathResolver,
) *ListDirectoryTool {
	return &ListDirectoryTool{
		fs:               fs,
		gitignoreService: gitignoreService,
		config:           cfg,
		pathResolver:     pathResolver,
	}
}

// Run lists the contents of a directory within the workspace.
// It supports optional recursion and pagination, validating that the path is within
// workspace boundaries, respecting gitignore rules, and returning entries sorted
// directories-first.
func (t *ListDirectoryTool) Run(ctx context.Context, req *ListDirectoryRequest) (*ListDirectoryResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	limit := t.config.Tools.DefaultListDirectoryLimit
	if req.Limit != 0 {
		limit = req.Limit
	}

	// Default to workspace root if path is empty
	path := req.Path
	if path == "" {
		path = "."
	}

	abs, err := t.pathResolver.Abs(path)
	if err != nil {
		return nil, err
	}
	rel, err := t.pathResolver.Rel(abs)
	if err != nil {
		return nil, err
	}

	info, err := t.fs.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, abs)
		}
		return nil, &StatError{Path: abs, Cause: err}
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, abs)
	}

	// maxDepth: 0 = immediate children only, negative = unlimited
	maxDepth := req.MaxDepth
	if maxDepth < 0 {
		maxDepth = -1
	}

	visited := make(map[string]bool)
	maxResults := t.config.Tools.MaxListDirectoryLimit
	var currentCount int

	entries, capHit, err := t.listRecursive(ctx, abs, 0, maxDepth, visited, req.IncludeIgnored, maxResults, &currentCount)
	if err != nil {
		return nil, err
	}

	// Sort: directories first, then files, both alphabetically by RelativePath
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].RelativePath < entries[j].RelativePath
	})

	paged, paginationResult := paginationutil.ApplyPagination(entries, req.Offset, limit)

	var truncationReason string
	if capHit {
		paginationResult.Truncated = true
		truncationReason = fmt.Sprintf("Results capped at %d entries.", maxResults)
	} else if paginationResult.Truncated {
		truncationReason = fmt.Sprintf("Page limit reached. More results at offset %d.", req.Offset+limit)
	}

	return &ListDirectoryResponse{
		DirectoryPath:    rel,
		Entries:          paged,
		Offset:           req.Offset,
		Limit:            limit,
		TotalCount:       paginationResult.TotalCount,
		Truncated:        paginationResult.Truncated,
		TruncationReason: truncationReason,
	}, nil
}

// listRecursive recursively lists all entries up to maxDepth.
// Returns entries, boolean (true if cap hit), error.
func (t *ListDirectoryTool) listRecursive(ctx context.Context, abs string, currentDepth int, maxDepth int, visited map[string]bool, includeIgnored bool, maxResults int, currentCount *int) ([]DirectoryEntry, bool, error) {
	if *currentCount >= maxResults {
		return nil, true, nil
	}

	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}

	if maxDepth >= 0 && currentDepth > maxDepth {
		return []DirectoryEntry{}, false, nil
	}

	// Detect symlink loops using canonical path
	canonicalPath, err := filepath.EvalSymlinks(abs)
	if err != nil {
		canonicalPath = abs
	}

	if visited[canonicalPath] {
		return []DirectoryEntry{}, false, nil
	}
	visited[canonicalPath] = true

	allEntries, err := t.fs.ListDir(abs)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list directory: %w", err)
	}

	var entries []DirectoryEntry
	for _, entry := range allEntries {
		if *currentCount >= maxResults {
			return entries, true, nil
		}

		entryAbs := filepath.Join(abs, entry.Name())
		entryRel, err := t.pathResolver.Rel(entryAbs)
		if err != nil {
			return nil, false, fmt.Errorf("failed to resolve entry %s: %w", entry.Name(), err)
		}

		if !includeIgnored && t.gitignoreService != nil {
			if t.gitignoreService.ShouldIgnore(entryRel) {
				continue
			}
		}

		entries = append(entries, DirectoryEntry{
			RelativePath: entryRel,
			IsDir:        entry.IsDir(),
		})
		*currentCount++

		if entry.IsDir() {
			subEntries, capHit, err := t.listRecursive(ctx, entryAbs, currentDepth+1, maxDepth, visited, includeIgnored, maxResults, currentCount)
			if err != nil {
				return nil, false, err
			}
			entries = append(entries, subEntries...)
			if capHit {
				return entries, true, nil
			}
		}
	}

	return entries, false, nil
}
