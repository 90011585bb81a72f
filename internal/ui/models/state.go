package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Message is a single chat entry shown in the conversation view.
type Message struct {
	Role    string
	Content string
}

// State holds all mutable UI state for the Bubble Tea model.
type State struct {
	// Components
	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model

	// Conversation
	Messages []Message

	// Status bar
	StatusPhase   string
	StatusMessage string
	DotCount      int

	// Layout
	Width  int
	Height int

	// Input gating: the input line only submits while the agent is
	// waiting for a goal.
	CanSubmit bool

	// Model selection popup
	ModelList      []string
	ShowModelList  bool
	ModelListIndex int
	CurrentModel   string
}
