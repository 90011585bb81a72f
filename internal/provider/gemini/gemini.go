// Package gemini implements the Provider interface on top of the
// official google.golang.org/genai SDK.
package gemini

import (
	"context"
	"strings"
	"sync"

	"github.com/autocode-agent/autocode/internal/orchestrator/models"
	provider "github.com/autocode-agent/autocode/internal/provider/models"
)

// GeminiProvider implements the Provider interface for Google Gemini.
type GeminiProvider struct {
	client    GeminiClient
	modelName string
	mu        sync.RWMutex
	tools     []provider.ToolDefinition
}

// New creates a new GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string) *GeminiProvider {
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
}

// Generate sends a request to the Gemini API and returns the response.
func (p *GeminiProvider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	p.mu.RLock()
	model := p.modelName
	tools := p.tools
	p.mu.RUnlock()

	contents := toGeminiContents(req.Prompt, req.History)
	config := toGeminiConfig(req.Config, req.SystemPrompt)

	if len(req.Tools) > 0 {
		tools = req.Tools
	}
	if len(tools) > 0 {
		config.Tools = toGeminiTools(tools)
	}

	resp, err := p.client.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp, model)
}

// CountTokens returns the number of tokens in the provided messages.
func (p *GeminiProvider) CountTokens(ctx context.Context, messages []models.Message) (int, error) {
	p.mu.RLock()
	model := p.modelName
	p.mu.RUnlock()

	contents := messagesToGeminiContents(messages)

	resp, err := p.client.CountTokens(ctx, model, contents)
	if err != nil {
		return 0, mapGeminiError(err)
	}

	return int(resp.TotalTokens), nil
}

// GetContextWindow returns the maximum context size for the current model.
func (p *GeminiProvider) GetContextWindow() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch p.modelName {
	case "gemini-1.5-pro", "gemini-1.5-pro-latest":
		return 2_000_000
	default:
		return 1_000_000
	}
}

// SetModel changes the active model at runtime.
func (p *GeminiProvider) SetModel(model string) error {
	if model == "" {
		return provider.ErrInvalidModel
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.modelName = model
	return nil
}

// GetModel returns the currently active model name.
func (p *GeminiProvider) GetModel() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modelName
}

// ListModels returns available gemini model names.
func (p *GeminiProvider) ListModels(ctx context.Context) ([]string, error) {
	infos, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, strings.TrimPrefix(info.Name, "models/"))
	}
	return names, nil
}

// GetCapabilities returns what features the provider/model supports.
func (p *GeminiProvider) GetCapabilities() provider.Capabilities {
	return provider.Capabilities{
		SupportsToolCalling: true,
		SupportsJSONMode:    true,
		MaxContextTokens:    p.GetContextWindow(),
		MaxOutputTokens:     8192, // Gemini default
	}
}

// DefineTools registers tool definitions with the provider for native tool calling.
func (p *GeminiProvider) DefineTools(ctx context.Context, tools []provider.ToolDefinition) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tools = tools
	return nil
}
