package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	out string
	err error
}

func (f *fakeRenderer) Render(markdown string, width int) (string, error) {
	if f.err != nil {
		return markdown, f.err
	}
	return f.out, nil
}

func TestRenderMarkdown_UsesRenderer(t *testing.T) {
	out, err := RenderMarkdown("# hi", 80, &fakeRenderer{out: "styled"})

	require.NoError(t, err)
	assert.Equal(t, "styled", out)
}

func TestRenderMarkdown_FallsBackOnError(t *testing.T) {
	out, err := RenderMarkdown("# hi", 80, &fakeRenderer{err: errors.New("boom")})

	assert.Error(t, err)
	assert.Equal(t, "# hi", out)
}

func TestRenderMarkdown_NilRenderer(t *testing.T) {
	out, err := RenderMarkdown("plain", 80, nil)

	require.NoError(t, err)
	assert.Equal(t, "plain", out)
}

func TestGlamourRenderer_RendersHeading(t *testing.T) {
	r := NewGlamourRenderer()

	out, err := r.Render("# Title", 60)

	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}

func TestGlamourRenderer_CachesPerWidth(t *testing.T) {
	r := NewGlamourRenderer()

	_, err := r.Render("text", 60)
	require.NoError(t, err)
	_, err = r.Render("more text", 60)
	require.NoError(t, err)

	assert.Len(t, r.renderers, 1)

	_, err = r.Render("wider", 100)
	require.NoError(t, err)
	assert.Len(t, r.renderers, 2)
}
