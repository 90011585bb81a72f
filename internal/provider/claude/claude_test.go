package claude

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/autocode-agent/autocode/internal/orchestrator/models"
	provider "github.com/autocode-agent/autocode/internal/provider/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockAnthropicClient is a mock implementation of AnthropicClient for testing.
type MockAnthropicClient struct {
	NewMessageFunc  func(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
	CountTokensFunc func(ctx context.Context, params anthropic.MessageCountTokensParams) (*anthropic.MessageTokensCount, error)

	NewMessageCalls int
}

func (m *MockAnthropicClient) NewMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	m.NewMessageCalls++
	if m.NewMessageFunc != nil {
		return m.NewMessageFunc(ctx, params)
	}
	return nil, errors.New("NewMessageFunc not set")
}

func (m *MockAnthropicClient) CountTokens(ctx context.Context, params anthropic.MessageCountTokensParams) (*anthropic.MessageTokensCount, error) {
	if m.CountTokensFunc != nil {
		return m.CountTokensFunc(ctx, params)
	}
	return nil, errors.New("CountTokensFunc not set")
}

// unmarshalMessage builds an anthropic.Message from raw JSON. The SDK's
// content-block unions resolve AsAny() from the raw JSON captured during
// unmarshalling, so fixtures cannot be constructed as struct literals.
func unmarshalMessage(raw string) *anthropic.Message {
	var m anthropic.Message
	if err := m.UnmarshalJSON([]byte(raw)); err != nil {
		panic(err)
	}
	return &m
}

func textMessage(text string) *anthropic.Message {
	raw, err := json.Marshal(map[string]any{
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": 10, "output_tokens": 5},
	})
	if err != nil {
		panic(err)
	}
	return unmarshalMessage(string(raw))
}

func TestGenerate_TextResponse(t *testing.T) {
	mockClient := &MockAnthropicClient{
		NewMessageFunc: func(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
			return textMessage("Hello there!"), nil
		},
	}

	p := New(mockClient, "claude-mock")

	resp, err := p.Generate(context.Background(), &provider.GenerateRequest{Prompt: "Hello"})

	require.NoError(t, err)
	assert.Equal(t, provider.ResponseTypeText, resp.Content.Type)
	assert.Equal(t, "Hello there!", resp.Content.Text)
	assert.Equal(t, 15, resp.Metadata.TotalTokens)
	assert.Equal(t, "claude-mock", resp.Metadata.ModelUsed)
}

func TestGenerate_ToolUse(t *testing.T) {
	mockClient := &MockAnthropicClient{
		NewMessageFunc: func(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
			return unmarshalMessage(`{
				"content": [{
					"type": "tool_use",
					"id": "toolu_01",
					"name": "read_file",
					"input": {"path": "foo.txt"}
				}],
				"stop_reason": "tool_use"
			}`), nil
		},
	}

	p := New(mockClient, "claude-mock")

	resp, err := p.Generate(context.Background(), &provider.GenerateRequest{Prompt: "read foo.txt"})

	require.NoError(t, err)
	require.Equal(t, provider.ResponseTypeToolCall, resp.Content.Type)
	require.Len(t, resp.Content.ToolCalls, 1)
	assert.Equal(t, "toolu_01", resp.Content.ToolCalls[0].ID)
	assert.Equal(t, "read_file", resp.Content.ToolCalls[0].Name)
	assert.Equal(t, "foo.txt", resp.Content.ToolCalls[0].Args["path"])
}

func TestGenerate_RetriesRateLimitThenSucceeds(t *testing.T) {
	attempts := 0
	mockClient := &MockAnthropicClient{
		NewMessageFunc: func(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
			attempts++
			if attempts < 3 {
				return nil, &anthropic.Error{StatusCode: 429}
			}
			return textMessage("recovered"), nil
		},
	}

	p := New(mockClient, "claude-mock", WithRetryDelay(time.Millisecond))

	resp, err := p.Generate(context.Background(), &provider.GenerateRequest{Prompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Content.Text)
	assert.Equal(t, 3, attempts)
}

func TestGenerate_AuthError_NoRetry(t *testing.T) {
	mockClient := &MockAnthropicClient{
		NewMessageFunc: func(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
			return nil, &anthropic.Error{StatusCode: 401}
		},
	}

	p := New(mockClient, "claude-mock", WithRetryDelay(time.Millisecond))

	_, err := p.Generate(context.Background(), &provider.GenerateRequest{Prompt: "hi"})

	require.Error(t, err)
	var providerErr *provider.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, provider.ErrorCodeAuth, providerErr.Code)
	assert.Equal(t, 1, mockClient.NewMessageCalls)
}

func TestGenerate_RetriesExhausted(t *testing.T) {
	mockClient := &MockAnthropicClient{
		NewMessageFunc: func(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
			return nil, &anthropic.Error{StatusCode: 503}
		},
	}

	p := New(mockClient, "claude-mock", WithMaxRetries(2), WithRetryDelay(time.Millisecond))

	_, err := p.Generate(context.Background(), &provider.GenerateRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.True(t, provider.IsRetryable(err))
	assert.Equal(t, 3, mockClient.NewMessageCalls)
}

func TestGenerate_MaxTokens_ReturnsPartialWithError(t *testing.T) {
	mockClient := &MockAnthropicClient{
		NewMessageFunc: func(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
			return unmarshalMessage(`{
				"content": [{"type": "text", "text": "partial ou"}],
				"stop_reason": "max_tokens"
			}`), nil
		},
	}

	p := New(mockClient, "claude-mock")

	resp, err := p.Generate(context.Background(), &provider.GenerateRequest{Prompt: "hi"})

	require.Error(t, err)
	var providerErr *provider.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, provider.ErrorCodeContextLength, providerErr.Code)
	require.NotNil(t, resp)
	assert.Equal(t, "partial ou", resp.Content.Text)
}

func TestGenerate_SystemPromptAndToolsInParams(t *testing.T) {
	var gotParams anthropic.MessageNewParams
	mockClient := &MockAnthropicClient{
		NewMessageFunc: func(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
			gotParams = params
			return textMessage("ok"), nil
		},
	}

	p := New(mockClient, "claude-mock")
	err := p.DefineTools(context.Background(), []provider.ToolDefinition{
		{
			Name:        "run_shell",
			Description: "Runs a shell command",
			Parameters: &provider.ParameterSchema{
				Type: "object",
				Properties: map[string]provider.PropertySchema{
					"command": {Type: "string", Description: "The command"},
				},
				Required: []string{"command"},
			},
		},
	})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), &provider.GenerateRequest{
		Prompt:       "hi",
		SystemPrompt: "You are a coding agent.",
	})
	require.NoError(t, err)

	require.Len(t, gotParams.System, 1)
	assert.Equal(t, "You are a coding agent.", gotParams.System[0].Text)
	require.Len(t, gotParams.Tools, 1)
	require.NotNil(t, gotParams.Tools[0].OfTool)
	assert.Equal(t, "run_shell", gotParams.Tools[0].OfTool.Name)
}

func TestCountTokens(t *testing.T) {
	mockClient := &MockAnthropicClient{
		CountTokensFunc: func(ctx context.Context, params anthropic.MessageCountTokensParams) (*anthropic.MessageTokensCount, error) {
			return &anthropic.MessageTokensCount{InputTokens: 42}, nil
		},
	}

	p := New(mockClient, "claude-mock")
	count, err := p.CountTokens(context.Background(), []models.Message{
		{Role: "user", Content: "hello"},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestCountTokens_EmptyHistory(t *testing.T) {
	p := New(&MockAnthropicClient{}, "claude-mock")

	count, err := p.CountTokens(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMessageConversion_ToolResultMapsToUserBlock(t *testing.T) {
	msgs := toAnthropicMessages("", []models.Message{
		{Role: "user", Content: "run ls"},
		{Role: "model", ToolCalls: []models.ToolCall{
			{ID: "toolu_01", Name: "run_shell", Args: map[string]any{"command": "ls"}},
		}},
		{Role: "function", ToolResults: []models.ToolResult{
			{ID: "toolu_01", Name: "run_shell", Content: "file.txt"},
		}},
	})

	require.Len(t, msgs, 3)
	assert.Equal(t, anthropic.MessageParamRoleUser, msgs[0].Role)
	assert.Equal(t, anthropic.MessageParamRoleAssistant, msgs[1].Role)
	// Tool results travel on user messages in the Anthropic API
	assert.Equal(t, anthropic.MessageParamRoleUser, msgs[2].Role)
	require.Len(t, msgs[2].Content, 1)
	require.NotNil(t, msgs[2].Content[0].OfToolResult)
	assert.Equal(t, "toolu_01", msgs[2].Content[0].OfToolResult.ToolUseID)
}

func TestMessageConversion_ErrorResultFlagged(t *testing.T) {
	param, ok := messageToAnthropicParam(models.Message{
		Role: "function",
		ToolResults: []models.ToolResult{
			{ID: "toolu_02", Name: "run_shell", Error: "command denied"},
		},
	})

	require.True(t, ok)
	require.Len(t, param.Content, 1)
	require.NotNil(t, param.Content[0].OfToolResult)
	assert.True(t, param.Content[0].OfToolResult.IsError.Value)
}

func TestMessageConversion_SystemAndEmptySkipped(t *testing.T) {
	msgs := toAnthropicMessages("", []models.Message{
		{Role: "system", Content: "instructions"},
		{Role: "user", Content: ""},
	})

	assert.Empty(t, msgs)
}

func TestListModels_ReturnsKnownModels(t *testing.T) {
	p := New(&MockAnthropicClient{}, "claude-mock")

	names, err := p.ListModels(context.Background())

	require.NoError(t, err)
	assert.Contains(t, names, "claude-sonnet-4-20250514")
}

func TestSetModel(t *testing.T) {
	p := New(&MockAnthropicClient{}, "claude-mock")

	require.NoError(t, p.SetModel("claude-opus-4-20250514"))
	assert.Equal(t, "claude-opus-4-20250514", p.GetModel())
	assert.ErrorIs(t, p.SetModel(""), provider.ErrInvalidModel)
}
