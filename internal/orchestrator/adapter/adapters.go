package adapter

import (
	provider "github.com/autocode-agent/autocode/internal/provider/models"
	"github.com/autocode-agent/autocode/internal/tool/directory"
	"github.com/autocode-agent/autocode/internal/tool/file"
	"github.com/autocode-agent/autocode/internal/tool/search"
	"github.com/autocode-agent/autocode/internal/tool/shell"
	"github.com/autocode-agent/autocode/internal/tool/todo"
)

// This file consolidates all tool adapters using the BaseAdapter pattern.
// Each adapter is a constructor pairing a tool's Run method with the
// parameter schema the provider advertises to the model.

// NewReadFile creates a read_file adapter
func NewReadFile(tool *file.ReadFileTool) Tool {
	return NewBaseAdapter(
		"read_file",
		"Reads a file from the workspace",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"path": {
					Type:        "string",
					Description: "Path to the file (relative to workspace root)",
				},
				"offset": {
					Type:        "integer",
					Description: "Byte offset to start reading from",
				},
				"limit": {
					Type:        "integer",
					Description: "Maximum number of bytes to read",
				},
			},
			Required: []string{"path"},
		},
		tool.Run,
	)
}

// NewWriteFile creates a write_file adapter
func NewWriteFile(tool *file.WriteFileTool) Tool {
	return NewBaseAdapter(
		"write_file",
		"Creates a new file in the workspace. Fails if the file already exists; use edit_file to change existing files",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"path": {
					Type:        "string",
					Description: "Path to the file (relative to workspace root)",
				},
				"content": {
					Type:        "string",
					Description: "File content",
				},
			},
			Required: []string{"path", "content"},
		},
		tool.Run,
	)
}

// NewEditFile creates an edit_file adapter
func NewEditFile(tool *file.EditFileTool) Tool {
	return NewBaseAdapter(
		"edit_file",
		"Applies exact-snippet replacements to an existing file and returns a unified diff",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"path": {
					Type:        "string",
					Description: "Path to the file (relative to workspace root)",
				},
				"operations": {
					Type:        "array",
					Description: "Edit operations, each with 'before' (exact snippet to replace, empty to append), 'after' (replacement text), and optional 'expected_replacements' (occurrence count, default 1)",
					Items: &provider.PropertySchema{
						Type: "object",
					},
				},
			},
			Required: []string{"path", "operations"},
		},
		tool.Run,
	)
}

// NewListDirectory creates a list_directory adapter
func NewListDirectory(tool *directory.ListDirectoryTool) Tool {
	return NewBaseAdapter(
		"list_directory",
		"Lists directory contents within the workspace, honoring .gitignore",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"path": {
					Type:        "string",
					Description: "Directory to list (relative to workspace root, empty for root)",
				},
				"max_depth": {
					Type:        "integer",
					Description: "Maximum recursion depth (0 = immediate children, -1 = unlimited)",
				},
				"include_ignored": {
					Type:        "boolean",
					Description: "Include gitignored entries",
				},
				"offset": {
					Type:        "integer",
					Description: "Pagination offset",
				},
				"limit": {
					Type:        "integer",
					Description: "Maximum entries to return",
				},
			},
		},
		tool.Run,
	)
}

// NewFindFile creates a find_file adapter
func NewFindFile(tool *directory.FindFileTool) Tool {
	return NewBaseAdapter(
		"find_file",
		"Finds files in the workspace whose name or path matches a glob pattern",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"pattern": {
					Type:        "string",
					Description: "Glob pattern to match file names against",
				},
				"search_path": {
					Type:        "string",
					Description: "Directory to search in (relative to workspace root)",
				},
				"max_depth": {
					Type:        "integer",
					Description: "Maximum directory depth to search",
				},
				"include_ignored": {
					Type:        "boolean",
					Description: "Include gitignored files",
				},
				"offset": {
					Type:        "integer",
					Description: "Pagination offset",
				},
				"limit": {
					Type:        "integer",
					Description: "Maximum matches to return",
				},
			},
			Required: []string{"pattern"},
		},
		tool.Run,
	)
}

// NewSearchContent creates a search_content adapter
func NewSearchContent(tool *search.SearchContentTool) Tool {
	return NewBaseAdapter(
		"search_content",
		"Searches file contents in the workspace with a regular expression",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"query": {
					Type:        "string",
					Description: "Regular expression to search for",
				},
				"search_path": {
					Type:        "string",
					Description: "Directory to search in (relative to workspace root)",
				},
				"case_sensitive": {
					Type:        "boolean",
					Description: "Match case sensitively",
				},
				"include_ignored": {
					Type:        "boolean",
					Description: "Search gitignored files too",
				},
				"offset": {
					Type:        "integer",
					Description: "Pagination offset",
				},
				"limit": {
					Type:        "integer",
					Description: "Maximum matches to return",
				},
			},
			Required: []string{"query"},
		},
		tool.Run,
	)
}

// NewRunShell creates a run_shell adapter. Calls are classified against
// the session policy by the orchestrator before this tool executes.
func NewRunShell(tool *shell.ShellTool) Tool {
	return NewBaseAdapter(
		"run_shell",
		"Executes a shell command inside the workspace and returns stdout, stderr and the exit code",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"command": {
					Type:        "string",
					Description: "The shell command to execute",
				},
				"working_dir": {
					Type:        "string",
					Description: "Working directory (relative to workspace root)",
				},
				"timeout_seconds": {
					Type:        "integer",
					Description: "Timeout in seconds before the command is interrupted",
				},
			},
			Required: []string{"command"},
		},
		tool.Run,
	)
}

// NewReadTodos creates a read_todos adapter
func NewReadTodos(tool *todo.ReadTodosTool) Tool {
	return NewBaseAdapter(
		"read_todos",
		"Reads the agent's current todo list",
		&provider.ParameterSchema{
			Type:       "object",
			Properties: map[string]provider.PropertySchema{},
		},
		tool.Run,
	)
}

// NewWriteTodos creates a write_todos adapter
func NewWriteTodos(tool *todo.WriteTodosTool) Tool {
	return NewBaseAdapter(
		"write_todos",
		"Replaces the agent's todo list",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"todos": {
					Type:        "array",
					Description: "Todo items, each with 'description' and 'status' (pending, in_progress, completed, cancelled)",
					Items: &provider.PropertySchema{
						Type: "object",
					},
				},
			},
			Required: []string{"todos"},
		},
		tool.Run,
	)
}
