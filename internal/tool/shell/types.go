package shell

import (
	"github.com/autocode-agent/autocode/internal/config"
)

// ShellRequest represents a request to execute a shell command on the local machine.
type ShellRequest struct {
	Command        string            `json:"command"`
	WorkingDir     string            `json:"working_dir,omitempty"`
	TimeoutSeconds int               `json:"timeout_seconds,omitempty"`
	Env            map[string]string `json:"env,omitempty"`
}

func (r *ShellRequest) Validate(cfg *config.Config) error {
	if r.Command == "" {
		return ErrCommandRequired
	}
	if r.TimeoutSeconds < 0 {
		return ErrNegativeTimeout
	}
	return nil
}

// ShellResponse represents the result of a local command execution.
type ShellResponse struct {
	Stdout     string
	Stderr     string
	ExitCode   int
	Truncated  bool
	DurationMs int64
	WorkingDir string
}
