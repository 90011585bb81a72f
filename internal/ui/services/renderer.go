package services

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown into styled terminal output.
type MarkdownRenderer interface {
	Render(markdown string, width int) (string, error)
}

// GlamourRenderer implements MarkdownRenderer using glamour. Term
// renderers are cached per width because word wrap is fixed at
// construction time.
type GlamourRenderer struct {
	renderers map[int]*glamour.TermRenderer
}

// NewGlamourRenderer creates a new GlamourRenderer
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Render renders markdown at the given wrap width
func (g *GlamourRenderer) Render(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}

	term, ok := g.renderers[width]
	if !ok {
		var err error
		term, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return markdown, err
		}
		g.renderers[width] = term
	}

	out, err := term.Render(markdown)
	if err != nil {
		// Fall back to the raw text
		return markdown, err
	}
	return out, nil
}

// RenderMarkdown renders markdown with the given renderer, falling
// back to the raw text when rendering fails.
func RenderMarkdown(markdown string, width int, renderer MarkdownRenderer) (string, error) {
	if renderer == nil {
		return markdown, nil
	}
	out, err := renderer.Render(markdown, width)
	if err != nil {
		return markdown, err
	}
	return out, nil
}
