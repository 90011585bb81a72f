package orchestrator

import (
	"errors"
	"fmt"

	"github.com/autocode-agent/autocode/internal/tool/errutil"
)

// ErrMaxTurns indicates the agent loop hit its turn budget without the
// model producing a final text response.
var ErrMaxTurns = errors.New("maximum turns reached")

// CommandDeniedError indicates the classifier rejected a shell command.
type CommandDeniedError struct {
	Command string
	Rule    string
	Reason  string
}

func (e *CommandDeniedError) Error() string {
	return fmt.Sprintf("command denied by %s rule: %s", e.Rule, e.Reason)
}

func (e *CommandDeniedError) Unwrap() error {
	return errutil.ErrShellRejected
}

// ToolDeniedError indicates a tool is not permitted by the tool policy.
type ToolDeniedError struct {
	Tool string
}

func (e *ToolDeniedError) Error() string {
	return fmt.Sprintf("tool '%s' is denied by policy", e.Tool)
}
