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

// FindFileTool handles file finding operations by walking the workspace tree
// and matching entry names against a glob pattern.
type FindFileTool struct {
	fs               fileSystem
	gitignoreService gitignoreService
	config           *config.Config
	pathResolver     pathResolver
}

// NewFindFileTool creates a new FindFileTool with injected dependencies.
func NewFindFileTool(
	fs fileSystem,
	gitignoreService gitignoreService,
	cfg *config.Config,
	pathResolver pathResolver,
) *FindFileTool {
	return &FindFileTool{
		fs:               fs,
		gitignoreService: gitignoreService,
		config:           cfg,
		pathResolver:     pathResolver,
	}
}

// Run searches for files matching a glob pattern within the workspace.
// The pattern matches against the entry base name or the workspace-relative path.
// It supports pagination, gitignore filtering, and workspace path validation.
func (t *FindFileTool) Run(ctx context.Context, req *FindFileRequest) (*FindFileResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	// Validate pattern syntax up front
	if _, err := filepath.Match(req.Pattern, ""); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, req.Pattern, err)
	}

	searchPath := req.SearchPath
	if searchPath == "" {
		searchPath = "."
	}

	abs, err := t.pathResolver.Abs(searchPath)
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

	limit := t.config.Tools.DefaultFindFileLimit
	if req.Limit != 0 {
		limit = req.Limit
	}

	maxDepth := req.MaxDepth
	if maxDepth <= 0 {
		maxDepth = -1
	}

	maxResults := t.config.Tools.MaxFindFileLimit
	visited := make(map[string]bool)

	var matches []string
	err = t.walk(ctx, abs, 0, maxDepth, visited, req, maxResults, &matches)
	if err != nil {
		return nil, err
	}

	// Sort ensures consistent pagination
	sort.Strings(matches)

	paged, paginationResult := paginationutil.ApplyPagination(matches, req.Offset, limit)

	return &FindFileResponse{
		Matches:    paged,
		Offset:     req.Offset,
		Limit:      limit,
		TotalCount: paginationResult.TotalCount,
		Truncated:  paginationResult.Truncated || len(matches) >= maxResults,
	}, nil
}

func (t *FindFileTool) walk(ctx context.Context, abs string, currentDepth, maxDepth int, visited map[string]bool, req *FindFileRequest, maxResults int, matches *[]string) error {
	if len(*matches) >= maxResults {
		return nil
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if maxDepth >= 0 && currentDepth >= maxDepth {
		return nil
	}

	canonicalPath, err := filepath.EvalSymlinks(abs)
	if err != nil {
		canonicalPath = abs
	}
	if visited[canonicalPath] {
		return nil
	}
	visited[canonicalPath] = true

	entries, err := t.fs.ListDir(abs)
	if err != nil {
		return fmt.Errorf("failed to list directory: %w", err)
	}

	for _, entry := range entries {
		if len(*matches) >= maxResults {
			return nil
		}

		entryAbs := filepath.Join(abs, entry.Name())
		entryRel, err := t.pathResolver.Rel(entryAbs)
		if err != nil {
			return fmt.Errorf("failed to resolve entry %s: %w", entry.Name(), err)
		}

		if !req.IncludeIgnored && t.gitignoreService != nil {
			if t.gitignoreService.ShouldIgnore(entryRel) {
				continue
			}
		}

		if !entry.IsDir() && t.matchesPattern(req.Pattern, entry.Name(), entryRel) {
			*matches = append(*matches, entryRel)
		}

		if entry.IsDir() {
			if err := t.walk(ctx, entryAbs, currentDepth+1, maxDepth, visited, req, maxResults, matches); err != nil {
				return err
			}
		}
	}

	return nil
}

func (t *FindFileTool) matchesPattern(pattern, name, rel string) bool {
	if ok, _ := filepath.Match(pattern, name); ok {
		return true
	}
	ok, _ := filepath.Match(pattern, rel)
	return ok
}
