package views

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("42")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorMuted   = lipgloss.Color("241") // Dim gray
)

// Chat styles
var (
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	AssistantMessageStyle = lipgloss.NewStyle()
)

// Input bar
var InputStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorMuted).
	Padding(0, 1)

// Status bar styles
var (
	StatusThinkingStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	StatusExecutingStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	StatusBlockedStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	StatusDoneStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	StatusDefaultStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Popup box
var PopupBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Padding(1, 2)
