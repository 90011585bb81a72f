package ui

import "context"

// UICommand is a command issued from the UI to the application (for
// example a slash command like /models).
type UICommand struct {
	Type string
	Args map[string]string
}

// UserInterface defines the contract for all user interactions.
// It follows a Read/Write pattern.
//
// All blocking methods accept context.Context; if the user quits the
// context is cancelled and implementations return immediately with
// context.Canceled.
type UserInterface interface {
	// ReadInput prompts the user for general text input
	ReadInput(ctx context.Context, prompt string) (string, error)

	// WriteStatus displays ephemeral status updates (e.g. "Thinking...")
	WriteStatus(phase string, message string)

	// WriteMessage displays the agent's actual text responses
	WriteMessage(content string)

	// WriteModelList shows the model selection popup
	WriteModelList(models []string)

	// SetModel updates the model name shown in the status bar
	SetModel(model string)

	// Commands returns the channel of UI-issued commands
	Commands() <-chan UICommand

	// Ready returns a channel closed once the UI accepts requests
	Ready() <-chan struct{}

	// Start runs the UI event loop; it blocks until the user quits
	Start() error
}
