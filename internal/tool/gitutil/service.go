package gitutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// fileSystem defines the minimal filesystem interface needed for the gitignore service.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// Service implements gitignore pattern matching using go-git's gitignore matcher.
type Service struct {
	matcher gitignore.Matcher
}

// NewService creates a new gitignore service by loading .gitignore from the workspace root.
// Returns a service that never ignores if .gitignore doesn't exist (no error).
func NewService(workspaceRoot string, fs fileSystem) (*Service, error) {
	gitignorePath := filepath.Join(workspaceRoot, ".gitignore")

	// .gitignore is optional
	_, err := fs.Stat(gitignorePath)
	if err != nil {
		return &Service{matcher: nil}, nil
	}

	content, err := fs.ReadFile(gitignorePath)
	if err != nil {
		return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
	}

	var patterns []gitignore.Pattern
	for _, line := range splitLines(string(content)) {
		if line == "" {
			continue
		}
		pattern := gitignore.ParsePattern(line, nil)
		if pattern != nil {
			patterns = append(patterns, pattern)
		}
	}

	return &Service{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore checks if a relative path matches any gitignore patterns.
// Returns false if no .gitignore was loaded.
func (g *Service) ShouldIgnore(relativePath string) bool {
	if g.matcher == nil {
		return false
	}

	segments := splitPath(relativePath)
	return g.matcher.Match(segments, false)
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return []string{}
	}

	normalized := filepath.ToSlash(path)

	parts := strings.Split(normalized, "/")
	var segments []string
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}

	return segments
}

// splitLines splits content into lines, handling both \n and \r\n line endings.
func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			line := content[start:i]
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// NoOpService is a gitignore service that never ignores any files.
// It is used when gitignore functionality is disabled or fails to initialize.
type NoOpService struct{}

// ShouldIgnore always returns false for NoOpService.
func (s *NoOpService) ShouldIgnore(relativePath string) bool {
	return false
}
