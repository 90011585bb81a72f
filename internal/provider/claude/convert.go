package claude

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/autocode-agent/autocode/internal/orchestrator/models"
	provider "github.com/autocode-agent/autocode/internal/provider/models"
)

// toAnthropicMessages converts a prompt and history to Anthropic message
// params. System messages are skipped; the system prompt travels separately
// in MessageNewParams.System.
func toAnthropicMessages(prompt string, history []models.Message) []anthropic.MessageParam {
	result := make([]anthropic.MessageParam, 0, len(history)+1)

	for _, msg := range history {
		if msg.Role == "system" {
			continue
		}

		param, ok := messageToAnthropicParam(msg)
		if ok {
			result = append(result, param)
		}
	}

	if prompt != "" {
		result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))
	}

	return result
}

// messageToAnthropicParam converts a single message. The second return is
// false when the message carries no content blocks.
func messageToAnthropicParam(msg models.Message) (anthropic.MessageParam, bool) {
	var content []anthropic.ContentBlockParamUnion

	if msg.Content != "" {
		content = append(content, anthropic.NewTextBlock(msg.Content))
	}

	// Tool results (function messages) map to tool_result blocks
	for _, result := range msg.ToolResults {
		text := result.Content
		isError := false
		if result.Error != "" {
			text = result.Error
			isError = true
		}
		content = append(content, anthropic.NewToolResultBlock(result.ID, text, isError))
	}

	// Tool calls (model messages) map to tool_use blocks
	for _, toolCall := range msg.ToolCalls {
		args := toolCall.Args
		if args == nil {
			args = map[string]interface{}{}
		}
		content = append(content, anthropic.NewToolUseBlock(toolCall.ID, args, toolCall.Name))
	}

	if len(content) == 0 {
		return anthropic.MessageParam{}, false
	}

	if msg.Role == "assistant" || msg.Role == "model" {
		return anthropic.NewAssistantMessage(content...), true
	}
	return anthropic.NewUserMessage(content...), true
}

// toAnthropicTools converts internal tool definitions to Anthropic tool
// params. The ParameterSchema already is plain JSON Schema, so it round-trips
// through JSON into the SDK's input schema type.
func toAnthropicTools(tools []provider.ToolDefinition) ([]anthropic.ToolUnionParam, error) {
	result := make([]anthropic.ToolUnionParam, 0, len(tools))

	for _, tool := range tools {
		schema := anthropic.ToolInputSchemaParam{}
		params := tool.Parameters
		if params == nil {
			params = &provider.ParameterSchema{Type: "object"}
		}

		raw, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("invalid tool schema for %s: %w", tool.Name, err)
		}
		if err := json.Unmarshal(raw, &schema); err != nil {
			return nil, fmt.Errorf("invalid tool schema for %s: %w", tool.Name, err)
		}

		toolParam := anthropic.ToolUnionParamOfTool(schema, tool.Name)
		if toolParam.OfTool == nil {
			return nil, fmt.Errorf("invalid tool schema for %s: missing tool definition", tool.Name)
		}
		toolParam.OfTool.Description = anthropic.String(tool.Description)

		result = append(result, toolParam)
	}

	return result, nil
}

// fromAnthropicMessage converts an Anthropic response message to internal format.
func fromAnthropicMessage(message *anthropic.Message, modelUsed string) (*provider.GenerateResponse, error) {
	if message == nil {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeInvalidRequest,
			Message: "empty response from API",
		}
	}

	metadata := provider.ResponseMetadata{
		ModelUsed:        modelUsed,
		PromptTokens:     int(message.Usage.InputTokens),
		CompletionTokens: int(message.Usage.OutputTokens),
		TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
	}

	if message.StopReason == anthropic.StopReasonRefusal {
		return &provider.GenerateResponse{
			Content: provider.ResponseContent{
				Type:          provider.ResponseTypeRefusal,
				RefusalReason: "model refused to generate",
			},
			Metadata: metadata,
		}, nil
	}

	var text string
	var toolCalls []models.ToolCall

	for _, block := range message.Content {
		switch variant := block.AsAny().(type) {
		case anthropic.TextBlock:
			text += variant.Text
		case anthropic.ToolUseBlock:
			args := map[string]interface{}{}
			if len(variant.Input) > 0 {
				if err := json.Unmarshal(variant.Input, &args); err != nil {
					return nil, &provider.ProviderError{
						Code:       provider.ErrorCodeInvalidRequest,
						Message:    fmt.Sprintf("invalid tool input for %s", variant.Name),
						Underlying: err,
					}
				}
			}
			toolCalls = append(toolCalls, models.ToolCall{
				ID:   variant.ID,
				Name: variant.Name,
				Args: args,
			})
		}
	}

	if len(toolCalls) > 0 {
		return &provider.GenerateResponse{
			Content: provider.ResponseContent{
				Type:      provider.ResponseTypeToolCall,
				ToolCalls: toolCalls,
			},
			Metadata: metadata,
		}, nil
	}

	response := &provider.GenerateResponse{
		Content: provider.ResponseContent{
			Type: provider.ResponseTypeText,
			Text: text,
		},
		Metadata: metadata,
	}

	if message.StopReason == anthropic.StopReasonMaxTokens {
		// Partial response alongside the error, per the Provider contract
		return response, &provider.ProviderError{
			Code:      provider.ErrorCodeContextLength,
			Message:   "response truncated due to max tokens",
			Retryable: false,
		}
	}

	return response, nil
}

// mapAnthropicError maps Anthropic API errors to provider errors.
func mapAnthropicError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401, 403:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeAuth,
				Message:    "authentication failed",
				Underlying: err,
				Retryable:  false,
			}
		case 429:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeRateLimit,
				Message:    "rate limit exceeded",
				Underlying: err,
				Retryable:  true,
			}
		case 400:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeInvalidRequest,
				Message:    "invalid request",
				Underlying: err,
				Retryable:  false,
			}
		case 404:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeInvalidModel,
				Message:    "model not found",
				Underlying: err,
				Retryable:  false,
			}
		case 500, 502, 503, 504, 529:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeUnavailable,
				Message:    "service unavailable",
				Underlying: err,
				Retryable:  true,
			}
		default:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeNetwork,
				Message:    fmt.Sprintf("API error (status %d)", apiErr.StatusCode),
				Underlying: err,
				Retryable:  true,
			}
		}
	}

	return &provider.ProviderError{
		Code:       provider.ErrorCodeNetwork,
		Message:    "network error",
		Underlying: err,
		Retryable:  true,
	}
}
