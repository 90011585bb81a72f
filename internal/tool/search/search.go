package search

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/autocode-agent/autocode/internal/config"
	"github.com/autocode-agent/autocode/internal/tool/executor"
	"github.com/autocode-agent/autocode/internal/tool/paginationutil"
)

// pathResolver defines workspace path resolution operations.
type pathResolver interface {
	Abs(path string) (string, error)
	Rel(path string) (string, error)
}

// fileSystem defines the minimal filesystem interface needed by search tools.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
}

// commandExecutor defines the interface for executing search commands.
type commandExecutor interface {
	Run(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error)
}

// SearchContentTool handles content searching operations using ripgrep.
type SearchContentTool struct {
	fs              fileSystem
	commandExecutor commandExecutor
	config          *config.Config
	pathResolver    pathResolver
}

// NewSearchContentTool creates a new SearchContentTool with injected dependencies.
func NewSearchContentTool(
	fs fileSystem,
	commandExecutor commandExecutor,
	cfg *config.Config,
	pathResolver pathResolver,
) *SearchContentTool {
	return &SearchContentTool{
		fs:              fs,
		commandExecutor: commandExecutor,
		config:          cfg,
		pathResolver:    pathResolver,
	}
}

// Run searches for content matching a regex pattern using ripgrep.
// It validates the search path is within workspace boundaries, respects gitignore rules
// (unless IncludeIgnored is true), and returns matches with pagination support.
func (t *SearchContentTool) Run(ctx context.Context, req *SearchContentRequest) (*SearchContentResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
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

	limit := t.config.Tools.DefaultSearchContentLimit
	if req.Limit != 0 {
		limit = req.Limit
	}

	maxResults := t.config.Tools.MaxSearchContentLimit
	maxLineLength := t.config.Tools.MaxLineLength

	// rg --json [-i] [--no-ignore] query path
	cmd := []string{"rg", "--json"}
	if !req.CaseSensitive {
		cmd = append(cmd, "-i")
	}
	if req.IncludeIgnored {
		cmd = append(cmd, "--no-ignore")
	}
	cmd = append(cmd, req.Query, abs)

	result, execErr := t.commandExecutor.Run(ctx, cmd, abs, nil)
	if execErr != nil {
		// rg returns 1 for no matches (valid case), 2+ for real errors
		if result == nil || result.ExitCode != 1 {
			return nil, &CommandFailedError{Cmd: "rg", Cause: execErr}
		}
	}

	matches := t.parseMatches(result.Stdout, maxResults, maxLineLength)

	// Sort results for consistency (by file, then line number)
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].File != matches[j].File {
			return matches[i].File < matches[j].File
		}
		return matches[i].LineNumber < matches[j].LineNumber
	})

	paged, paginationResult := paginationutil.ApplyPagination(matches, req.Offset, limit)

	return &SearchContentResponse{
		Matches:    paged,
		Offset:     req.Offset,
		Limit:      limit,
		TotalCount: paginationResult.TotalCount,
		Truncated:  paginationResult.Truncated,
	}, nil
}

// parseMatches decodes ripgrep's JSON event stream, keeping only match events.
func (t *SearchContentTool) parseMatches(output string, maxResults, maxLineLength int) []SearchContentMatch {
	var matches []SearchContentMatch

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rgMatch struct {
			Type string `json:"type"`
			Data struct {
				Path struct {
					Text string `json:"text"`
				} `json:"path"`
				Lines struct {
					Text string `json:"text"`
				} `json:"lines"`
				LineNumber int `json:"line_number"`
			} `json:"data"`
		}

		if err := json.Unmarshal([]byte(line), &rgMatch); err != nil {
			continue
		}
		if rgMatch.Type != "match" {
			continue
		}

		rel, err := t.pathResolver.Rel(rgMatch.Data.Path.Text)
		if err != nil {
			rel = filepath.ToSlash(rgMatch.Data.Path.Text)
		}

		lineContent := strings.TrimRight(rgMatch.Data.Lines.Text, "\n")
		if len(lineContent) > maxLineLength {
			lineContent = lineContent[:maxLineLength] + "...[truncated]"
		}

		matches = append(matches, SearchContentMatch{
			File:        rel,
			LineNumber:  rgMatch.Data.LineNumber,
			LineContent: lineContent,
		})

		if len(matches) >= maxResults {
			break
		}
	}

	return matches
}
