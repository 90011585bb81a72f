package search

import (
	"github.com/autocode-agent/autocode/internal/config"
)

// SearchContentMatch represents a single match in a file.
type SearchContentMatch struct {
	File        string `json:"file"`         // Relative path to the file
	LineNumber  int    `json:"line_number"`  // 1-based line number
	LineContent string `json:"line_content"` // Content of the matching line
}

// SearchContentRequest represents the parameters for a content search.
type SearchContentRequest struct {
	Query          string `json:"query"`
	SearchPath     string `json:"search_path,omitempty"`
	CaseSensitive  bool   `json:"case_sensitive,omitempty"`
	IncludeIgnored bool   `json:"include_ignored,omitempty"`
	Offset         int    `json:"offset,omitempty"`
	Limit          int    `json:"limit,omitempty"`
}

func (r *SearchContentRequest) Validate(cfg *config.Config) error {
	if r.Query == "" {
		return ErrQueryRequired
	}
	if r.Offset < 0 {
		return ErrInvalidOffset
	}
	if r.Limit < 0 || r.Limit > cfg.Tools.MaxSearchContentLimit {
		return ErrInvalidLimit
	}
	return nil
}

// SearchContentResponse contains the result of a content search.
type SearchContentResponse struct {
	Matches    []SearchContentMatch
	Offset     int
	Limit      int
	TotalCount int
	Truncated  bool
}
