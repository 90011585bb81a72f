package shell

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/autocode-agent/autocode/internal/config"
	"github.com/autocode-agent/autocode/internal/tool/executor"
)

// pathResolver defines workspace path resolution operations.
type pathResolver interface {
	Abs(path string) (string, error)
	Rel(path string) (string, error)
}

// commandExecutor defines the interface for executing commands with a timeout.
type commandExecutor interface {
	RunWithTimeout(ctx context.Context, command []string, dir string, env []string, timeout time.Duration) (*executor.Result, error)
}

// ShellTool executes commands on the local machine.
type ShellTool struct {
	commandExecutor commandExecutor
	config          *config.Config
	pathResolver    pathResolver
}

// NewShellTool creates a new ShellTool with injected dependencies.
func NewShellTool(
	commandExecutor commandExecutor,
	cfg *config.Config,
	pathResolver pathResolver,
) *ShellTool {
	if commandExecutor == nil {
		panic("commandExecutor is required")
	}
	if cfg == nil {
		panic("cfg is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &ShellTool{
		commandExecutor: commandExecutor,
		config:          cfg,
		pathResolver:    pathResolver,
	}
}

// Run executes a shell command string through "sh -c" with timeout handling
// and output collection. The working directory must resolve within the workspace.
// NOTE: This tool does NOT enforce policy - the caller is responsible for
// classifying the command before invoking it.
func (t *ShellTool) Run(ctx context.Context, req *ShellRequest) (*ShellResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	workingDir := req.WorkingDir
	if workingDir == "" {
		workingDir = "."
	}

	wdAbs, err := t.pathResolver.Abs(workingDir)
	if err != nil {
		return nil, err
	}
	wdRel, err := t.pathResolver.Rel(wdAbs)
	if err != nil {
		return nil, err
	}

	env := os.Environ()
	for k, v := range req.Env {
		env = append(env, k+"="+v)
	}

	timeoutSeconds := req.TimeoutSeconds
	if timeoutSeconds == 0 {
		timeoutSeconds = t.config.Tools.DefaultShellTimeout
	}
	timeout := time.Duration(timeoutSeconds) * time.Second

	start := time.Now()
	result, execErr := t.commandExecutor.RunWithTimeout(ctx, []string{"sh", "-c", req.Command}, wdAbs, env, timeout)
	if result == nil {
		result = &executor.Result{ExitCode: -1}
	}

	resp := &ShellResponse{
		Stdout:     result.Stdout,
		Stderr:     result.Stderr,
		ExitCode:   result.ExitCode,
		Truncated:  result.Truncated,
		DurationMs: time.Since(start).Milliseconds(),
		WorkingDir: wdRel,
	}

	if execErr != nil {
		if errors.Is(execErr, executor.ErrTimeout) {
			return resp, execErr
		}
		if errors.Is(execErr, context.Canceled) || errors.Is(execErr, context.DeadlineExceeded) {
			return resp, execErr
		}
		// Command ran but failed - the exit code is already in resp
		return resp, nil
	}

	return resp, nil
}
