package views

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// MockMarkdownRenderer passes markdown straight through.
type MockMarkdownRenderer struct{}

func (m *MockMarkdownRenderer) Render(markdown string, width int) (string, error) {
	return markdown, nil
}

func createTestSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot))
}

func createTestViewport() viewport.Model {
	return viewport.New(80, 20)
}

func createTestTextInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	return ti
}
