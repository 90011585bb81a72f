package models

import (
	"context"

	"github.com/autocode-agent/autocode/internal/orchestrator/models"
)

// Provider defines the interface for LLM backends.
type Provider interface {
	// Generate sends a request to the model and returns the response.
	// It may return a partial response AND an error (e.g. a max-tokens
	// truncation). Callers should check if the response is non-nil even
	// when the error is non-nil.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// CountTokens returns the number of tokens in the provided messages.
	// This allows the orchestrator to proactively manage the context window.
	CountTokens(ctx context.Context, messages []models.Message) (int, error)

	// GetContextWindow returns the maximum context size for the current model.
	GetContextWindow() int

	// SetModel changes the active model at runtime.
	SetModel(model string) error

	// GetModel returns the currently active model name.
	GetModel() string

	// ListModels returns a list of available model names.
	ListModels(ctx context.Context) ([]string, error)

	// GetCapabilities returns what features the provider/model supports.
	GetCapabilities() Capabilities

	// DefineTools registers tool definitions with the provider for native
	// tool calling. Call before Generate to enable tool use.
	DefineTools(ctx context.Context, tools []ToolDefinition) error
}
