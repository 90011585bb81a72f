// Package claude implements the Provider interface on top of the official
// github.com/anthropics/anthropic-sdk-go SDK. This is the default backend;
// transient API failures are retried with exponential backoff.
package claude

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/autocode-agent/autocode/internal/orchestrator/models"
	provider "github.com/autocode-agent/autocode/internal/provider/models"
)

const (
	defaultMaxTokens  = 8192
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second
)

// knownModels are the Claude models exposed through ListModels. The API has
// no free model-listing endpoint, so the list is static.
var knownModels = []string{
	"claude-sonnet-4-20250514",
	"claude-opus-4-20250514",
	"claude-3-5-haiku-20241022",
	"claude-3-5-sonnet-20241022",
}

// ClaudeProvider implements the Provider interface for Anthropic Claude.
type ClaudeProvider struct {
	client     AnthropicClient
	maxRetries int
	retryDelay time.Duration

	mu        sync.RWMutex
	modelName string
	tools     []provider.ToolDefinition
}

// Option configures a ClaudeProvider.
type Option func(*ClaudeProvider)

// WithMaxRetries overrides the retry attempt count for transient failures.
func WithMaxRetries(n int) Option {
	return func(p *ClaudeProvider) { p.maxRetries = n }
}

// WithRetryDelay overrides the base backoff delay between retries.
func WithRetryDelay(d time.Duration) Option {
	return func(p *ClaudeProvider) { p.retryDelay = d }
}

// New creates a new ClaudeProvider with the specified client and model.
func New(client AnthropicClient, modelName string, opts ...Option) *ClaudeProvider {
	p := &ClaudeProvider{
		client:     client,
		modelName:  modelName,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate sends a request to the Anthropic API and returns the response.
// Retryable failures (rate limits, 5xx) are retried with exponential backoff.
func (p *ClaudeProvider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	p.mu.RLock()
	model := p.modelName
	tools := p.tools
	p.mu.RUnlock()

	if len(req.Tools) > 0 {
		tools = req.Tools
	}

	params, err := p.buildParams(model, req, tools)
	if err != nil {
		return nil, err
	}

	var message *anthropic.Message
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		message, lastErr = p.client.NewMessage(ctx, params)
		if lastErr == nil {
			break
		}

		lastErr = mapAnthropicError(lastErr)
		if !provider.IsRetryable(lastErr) || attempt == p.maxRetries {
			return nil, lastErr
		}

		// Exponential backoff: delay = baseDelay * 2^attempt
		backoff := p.retryDelay * time.Duration(math.Pow(2, float64(attempt)))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fromAnthropicMessage(message, model)
}

func (p *ClaudeProvider) buildParams(model string, req *provider.GenerateRequest, tools []provider.ToolDefinition) (anthropic.MessageNewParams, error) {
	maxTokens := defaultMaxTokens
	if req.Config != nil && req.Config.MaxTokens != nil {
		maxTokens = *req.Config.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		Messages:  toAnthropicMessages(req.Prompt, req.History),
		MaxTokens: int64(maxTokens),
	}

	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Type: "text", Text: req.SystemPrompt},
		}
	}

	if req.Config != nil {
		if req.Config.Temperature != nil {
			params.Temperature = anthropic.Float(float64(*req.Config.Temperature))
		}
		if req.Config.TopP != nil {
			params.TopP = anthropic.Float(float64(*req.Config.TopP))
		}
		if req.Config.TopK != nil {
			params.TopK = anthropic.Int(int64(*req.Config.TopK))
		}
		if len(req.Config.StopSequences) > 0 {
			params.StopSequences = req.Config.StopSequences
		}
	}

	if len(tools) > 0 {
		anthropicTools, err := toAnthropicTools(tools)
		if err != nil {
			return anthropic.MessageNewParams{}, err
		}
		params.Tools = anthropicTools
	}

	return params, nil
}

// CountTokens returns the number of tokens the provided messages would consume.
func (p *ClaudeProvider) CountTokens(ctx context.Context, messages []models.Message) (int, error) {
	p.mu.RLock()
	model := p.modelName
	p.mu.RUnlock()

	converted := toAnthropicMessages("", messages)
	if len(converted) == 0 {
		return 0, nil
	}

	resp, err := p.client.CountTokens(ctx, anthropic.MessageCountTokensParams{
		Model:    anthropic.Model(model),
		Messages: converted,
	})
	if err != nil {
		return 0, mapAnthropicError(err)
	}

	return int(resp.InputTokens), nil
}

// GetContextWindow returns the maximum context size for the current model.
// All current Claude models carry a 200K token window.
func (p *ClaudeProvider) GetContextWindow() int {
	return 200_000
}

// SetModel changes the active model at runtime.
func (p *ClaudeProvider) SetModel(model string) error {
	if model == "" {
		return provider.ErrInvalidModel
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.modelName = model
	return nil
}

// GetModel returns the currently active model name.
func (p *ClaudeProvider) GetModel() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modelName
}

// ListModels returns the known Claude model names.
func (p *ClaudeProvider) ListModels(ctx context.Context) ([]string, error) {
	names := make([]string, len(knownModels))
	copy(names, knownModels)
	return names, nil
}

// GetCapabilities returns what features the provider/model supports.
func (p *ClaudeProvider) GetCapabilities() provider.Capabilities {
	return provider.Capabilities{
		SupportsToolCalling: true,
		SupportsJSONMode:    false,
		MaxContextTokens:    p.GetContextWindow(),
		MaxOutputTokens:     defaultMaxTokens,
	}
}

// DefineTools registers tool definitions with the provider for native tool calling.
func (p *ClaudeProvider) DefineTools(ctx context.Context, tools []provider.ToolDefinition) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tools = tools
	return nil
}
