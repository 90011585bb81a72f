package views

import (
	"fmt"
	"strings"

	"github.com/autocode-agent/autocode/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case "executing":
		icon = s.Spinner.View()
		style = StatusExecutingStyle
	case "blocked":
		icon = "✖"
		style = StatusBlockedStyle
	case "done":
		icon = "✔"
		style = StatusDoneStyle
	case "thinking":
		icon = s.Spinner.View()
		style = StatusThinkingStyle
		// Animate the dots
		dots := strings.Repeat(".", s.DotCount)
		return style.Render(fmt.Sprintf("%s Generating%s", icon, dots))
	default:
		style = StatusDefaultStyle
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
	} else if s.StatusPhase != "ready" && s.StatusPhase != "" {
		status = icon
	}

	leftSide := style.Render(status)

	// Right side: current model name
	rightSide := ""
	if s.CurrentModel != "" {
		rightSide = StatusDefaultStyle.Foreground(ColorMuted).Render(s.CurrentModel)
	}

	if rightSide != "" {
		return fmt.Sprintf("%s  %s", leftSide, rightSide)
	}
	return leftSide
}
