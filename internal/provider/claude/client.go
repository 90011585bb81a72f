package claude

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
)

// AnthropicClient defines the interface for interacting with the Anthropic
// API. The abstraction keeps the provider testable without network access.
type AnthropicClient interface {
	// NewMessage sends a message creation request and returns the response
	NewMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)

	// CountTokens counts the tokens a message creation request would consume
	CountTokens(ctx context.Context, params anthropic.MessageCountTokensParams) (*anthropic.MessageTokensCount, error)
}

// RealAnthropicClient wraps the official SDK client to satisfy AnthropicClient.
type RealAnthropicClient struct {
	client anthropic.Client
}

// NewRealAnthropicClient creates a new RealAnthropicClient from an SDK client.
func NewRealAnthropicClient(client anthropic.Client) *RealAnthropicClient {
	return &RealAnthropicClient{client: client}
}

// NewMessage calls the SDK's Messages.New method.
func (c *RealAnthropicClient) NewMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return c.client.Messages.New(ctx, params)
}

// CountTokens calls the SDK's Messages.CountTokens method.
func (c *RealAnthropicClient) CountTokens(ctx context.Context, params anthropic.MessageCountTokensParams) (*anthropic.MessageTokensCount, error) {
	return c.client.Messages.CountTokens(ctx, params)
}
