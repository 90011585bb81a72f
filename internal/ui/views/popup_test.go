package views

import (
	"testing"

	"github.com/autocode-agent/autocode/internal/ui/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderModelPopup_WithSelection(t *testing.T) {
	state := models.State{
		ShowModelList:  true,
		ModelList:      []string{"claude-sonnet-4-20250514", "claude-3-5-haiku-20241022"},
		ModelListIndex: 1,
	}

	result := RenderModelPopup(state)

	assert.Contains(t, result, "Select Model")
	assert.Contains(t, result, "claude-sonnet-4-20250514")
	assert.Contains(t, result, "▸ claude-3-5-haiku-20241022")
	assert.Contains(t, result, "Navigate")
}

func TestRenderModelPopup_EmptyList(t *testing.T) {
	state := models.State{
		ShowModelList: true,
		ModelList:     []string{},
	}

	result := RenderModelPopup(state)

	assert.Empty(t, result)
}

func TestRenderModelPopup_IndexOutOfBounds(t *testing.T) {
	state := models.State{
		ShowModelList:  true,
		ModelList:      []string{"a", "b"},
		ModelListIndex: 10,
	}

	result := RenderModelPopup(state)

	assert.Contains(t, result, "a")
	assert.Contains(t, result, "b")
	assert.NotContains(t, result, "▸")
}
