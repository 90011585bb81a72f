package models

import (
	"context"
)

// PolicyService decides if an action is allowed. It encapsulates the
// command classifier and the tool-name rules; every tool call passes
// through it before execution begins.
type PolicyService interface {
	// CheckShell validates if a shell command is allowed to execute.
	// The command is the raw string the model proposed.
	CheckShell(ctx context.Context, command string) error

	// CheckTool validates if a tool is allowed to be used
	CheckTool(ctx context.Context, toolName string) error
}
