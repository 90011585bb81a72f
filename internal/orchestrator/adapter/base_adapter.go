package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	provider "github.com/autocode-agent/autocode/internal/provider/models"
	"github.com/mitchellh/mapstructure"
)

// Executor is the typed entry point of a tool: the adapter decodes the
// model's argument map into Req and marshals Resp back to JSON. Request
// validation lives inside the tools themselves.
type Executor[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

// BaseAdapter bridges a typed tool into the adapter.Tool interface using
// generics, centralizing argument decoding, execution, and response
// marshaling for every tool.
type BaseAdapter[Req, Resp any] struct {
	name        string
	description string
	definition  provider.ToolDefinition
	execute     Executor[Req, Resp]
}

// NewBaseAdapter creates an adapter for a typed tool executor.
func NewBaseAdapter[Req, Resp any](
	name string,
	description string,
	paramSchema *provider.ParameterSchema,
	execute Executor[Req, Resp],
) *BaseAdapter[Req, Resp] {
	return &BaseAdapter[Req, Resp]{
		name:        name,
		description: description,
		definition: provider.ToolDefinition{
			Name:        name,
			Description: description,
			Parameters:  paramSchema,
		},
		execute: execute,
	}
}

// Name implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Name() string {
	return b.name
}

// Description implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Description() string {
	return b.description
}

// Definition implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Definition() provider.ToolDefinition {
	return b.definition
}

// Execute implements adapter.Tool. It decodes the args map into the typed
// request (matching on json tags, since the request types share their tags
// with the wire schema), runs the executor, and marshals the response.
func (b *BaseAdapter[Req, Resp]) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req Req

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &req,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build argument decoder: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	resp, err := b.execute(ctx, &req)
	if err != nil {
		return "", err
	}

	bytes, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	return string(bytes), nil
}
