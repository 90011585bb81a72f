// Package orchestrator runs the autonomous agent loop: generate, check
// policy, execute tools, feed results back, until the model produces a
// final text response.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/autocode-agent/autocode/internal/config"
	"github.com/autocode-agent/autocode/internal/orchestrator/adapter"
	"github.com/autocode-agent/autocode/internal/orchestrator/models"
	provider "github.com/autocode-agent/autocode/internal/provider/models"
	"github.com/autocode-agent/autocode/internal/ui"
)

// ShellToolName is the tool whose arguments carry a raw shell command.
// Calls to it get the extra classifier checkpoint before execution.
const ShellToolName = "run_shell"

// Orchestrator manages the agent loop, tool execution, and conversation history
type Orchestrator struct {
	config   *config.Config
	provider provider.Provider
	policy   models.PolicyService
	ui       ui.UserInterface
	tools    map[string]adapter.Tool
	history  []models.Message
}

// New creates a new Orchestrator instance
func New(cfg *config.Config, p provider.Provider, pol models.PolicyService, userInterface ui.UserInterface, tools []adapter.Tool) *Orchestrator {
	toolMap := make(map[string]adapter.Tool)
	for _, t := range tools {
		toolMap[t.Name()] = t
	}

	return &Orchestrator{
		config:   cfg,
		provider: p,
		policy:   pol,
		ui:       userInterface,
		tools:    toolMap,
		history:  make([]models.Message, 0),
	}
}

// Run executes the agent loop until the model produces a final text
// response, the turn budget runs out, or the context is cancelled.
func (o *Orchestrator) Run(ctx context.Context, goal string) error {
	maxTurns := o.config.Agent.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 1000
	}

	if err := o.provider.DefineTools(ctx, o.toolDefinitions()); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}

	o.history = []models.Message{
		{
			Role:    "user",
			Content: goal,
		},
	}

	for range maxTurns {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		o.ui.WriteStatus("thinking", "Generating response...")

		req := &provider.GenerateRequest{
			History:      o.history,
			SystemPrompt: o.config.Agent.SystemPrompt,
		}
		response, err := o.provider.Generate(ctx, req)
		if err != nil {
			return fmt.Errorf("provider error: %w", err)
		}

		switch response.Content.Type {
		case provider.ResponseTypeToolCall:
			if len(response.Content.ToolCalls) == 0 {
				o.history = append(o.history, models.Message{
					Role:    "system",
					Content: "Error: empty tool call list",
				})
				continue
			}

			o.history = append(o.history, models.Message{
				Role:      "model",
				ToolCalls: response.Content.ToolCalls,
			})

			toolResults := make([]models.ToolResult, 0, len(response.Content.ToolCalls))
			for _, toolCall := range response.Content.ToolCalls {
				result := o.executeToolCall(ctx, toolCall)
				toolResults = append(toolResults, result)
			}

			o.history = append(o.history, models.Message{
				Role:        "function",
				ToolResults: toolResults,
			})

		case provider.ResponseTypeText:
			// Final answer: the run is complete
			o.ui.WriteMessage(response.Content.Text)
			o.history = append(o.history, models.Message{
				Role:    "assistant",
				Content: response.Content.Text,
			})
			return nil

		case provider.ResponseTypeRefusal:
			o.ui.WriteStatus("blocked", "Model refused to generate")
			o.history = append(o.history, models.Message{
				Role:    "system",
				Content: fmt.Sprintf("Model refused: %s", response.Content.RefusalReason),
			})

		default:
			o.history = append(o.history, models.Message{
				Role:    "system",
				Content: fmt.Sprintf("Error: unknown response type %v", response.Content.Type),
			})
		}
	}

	return fmt.Errorf("%w (%d)", ErrMaxTurns, maxTurns)
}

// History returns the conversation history accumulated so far.
func (o *Orchestrator) History() []models.Message {
	return o.history
}

// executeToolCall runs a single tool call through the policy checkpoint
// and returns the result. Denials never execute; the reason lands in the
// result's Error field so the model can observe it and adapt.
func (o *Orchestrator) executeToolCall(ctx context.Context, toolCall models.ToolCall) models.ToolResult {
	tool, exists := o.tools[toolCall.Name]
	if !exists {
		return models.ToolResult{
			ID:    toolCall.ID,
			Name:  toolCall.Name,
			Error: fmt.Sprintf("unknown tool '%s'", toolCall.Name),
		}
	}

	if err := o.policy.CheckTool(ctx, toolCall.Name); err != nil {
		o.ui.WriteStatus("blocked", fmt.Sprintf("Denied %s", toolCall.Name))
		return models.ToolResult{
			ID:    toolCall.ID,
			Name:  toolCall.Name,
			Error: fmt.Sprintf("policy denied: %v", err),
		}
	}

	// Shell commands pass through the classifier before anything runs
	if toolCall.Name == ShellToolName {
		command, ok := toolCall.Args["command"].(string)
		if !ok || command == "" {
			return models.ToolResult{
				ID:    toolCall.ID,
				Name:  toolCall.Name,
				Error: "missing required argument 'command'",
			}
		}

		if err := o.policy.CheckShell(ctx, command); err != nil {
			o.ui.WriteStatus("blocked", "Command denied")
			return models.ToolResult{
				ID:    toolCall.ID,
				Name:  toolCall.Name,
				Error: err.Error(),
			}
		}
	}

	o.ui.WriteStatus("executing", fmt.Sprintf("Running %s...", toolCall.Name))
	result, err := tool.Execute(ctx, toolCall.Args)
	if err != nil {
		return models.ToolResult{
			ID:    toolCall.ID,
			Name:  toolCall.Name,
			Error: err.Error(),
		}
	}

	return models.ToolResult{
		ID:      toolCall.ID,
		Name:    toolCall.Name,
		Content: result,
	}
}

func (o *Orchestrator) toolDefinitions() []provider.ToolDefinition {
	defs := make([]provider.ToolDefinition, 0, len(o.tools))
	for _, t := range o.tools {
		defs = append(defs, t.Definition())
	}
	return defs
}
