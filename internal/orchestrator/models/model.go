package models

// Message represents a single message in the conversation history
type Message struct {
	Role    string // "user", "assistant", "system", "model", "function"
	Content string

	// For model messages with tool calls
	ToolCalls []ToolCall

	// For function messages with tool results
	ToolResults []ToolResult
}

// ToolCall represents a structured tool invocation from the model.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]interface{}
}

// ToolResult represents the result of a tool execution.
type ToolResult struct {
	ID      string // Matches ToolCall.ID
	Name    string // Tool name
	Content string // Result content
	Error   string // Error message if tool failed
}

// ToolPolicy defines which tools the agent may invoke. An empty Allow
// list permits every tool not present in Deny.
type ToolPolicy struct {
	Allow []string
	Deny  []string
}
