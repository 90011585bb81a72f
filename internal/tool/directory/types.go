package directory

import (
	"path/filepath"
	"strings"

	"github.com/autocode-agent/autocode/internal/config"
)

// DirectoryEntry represents a single entry in a directory listing.
type DirectoryEntry struct {
	RelativePath string `json:"relative_path"`
	IsDir        bool   `json:"is_dir"`
}

// ListDirectoryRequest holds the parameters for a directory listing.
type ListDirectoryRequest struct {
	Path           string `json:"path"`
	MaxDepth       int    `json:"max_depth,omitempty"`
	IncludeIgnored bool   `json:"include_ignored,omitempty"`
	Offset         int    `json:"offset,omitempty"`
	Limit          int    `json:"limit,omitempty"`
}

func (r *ListDirectoryRequest) Validate(cfg *config.Config) error {
	if r.Offset < 0 {
		return ErrInvalidOffset
	}
	if r.Limit < 0 || r.Limit > cfg.Tools.MaxListDirectoryLimit {
		return ErrInvalidLimit
	}
	return nil
}

// ListDirectoryResponse contains the result of a directory listing.
type ListDirectoryResponse struct {
	DirectoryPath    string
	Entries          []DirectoryEntry
	Offset           int
	Limit            int
	TotalCount       int
	Truncated        bool
	TruncationReason string
}

// FindFileRequest holds the parameters for a file name search.
type FindFileRequest struct {
	Pattern        string `json:"pattern"`
	SearchPath     string `json:"search_path,omitempty"`
	MaxDepth       int    `json:"max_depth,omitempty"`
	IncludeIgnored bool   `json:"include_ignored,omitempty"`
	Offset         int    `json:"offset,omitempty"`
	Limit          int    `json:"limit,omitempty"`
}

func (r *FindFileRequest) Validate(cfg *config.Config) error {
	if r.Pattern == "" {
		return ErrPatternRequired
	}
	if strings.Contains(r.Pattern, "..") || filepath.IsAbs(r.Pattern) {
		return ErrInvalidPattern
	}
	if r.Offset < 0 {
		return ErrInvalidOffset
	}
	if r.Limit < 0 || r.Limit > cfg.Tools.MaxFindFileLimit {
		return ErrInvalidLimit
	}
	return nil
}

// FindFileResponse contains the result of a file name search.
type FindFileResponse struct {
	Matches    []string
	Offset     int
	Limit      int
	TotalCount int
	Truncated  bool
}
