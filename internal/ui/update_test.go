package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func createTestModel() BubbleTeaModel {
	channels := NewUIChannels()
	return newBubbleTeaModel(
		channels.InputReq,
		channels.InputResp,
		channels.StatusChan,
		channels.MessageChan,
		channels.ModelListChan,
		channels.SetModelChan,
		channels.CommandChan,
		channels.ReadyChan,
		&MockMarkdownRenderer{},
		mockSpinnerFactory,
	)
}

func TestInit_ReturnsCommands(t *testing.T) {
	model := createTestModel()
	cmd := model.Init()
	assert.NotNil(t, cmd)
}

func TestUpdate_KeyEnter_SubmitsInput(t *testing.T) {
	model := createTestModel()
	model.state.Input.SetValue("hello")
	model.state.CanSubmit = true

	// Capture response
	respChan := make(chan string, 1)
	model.inputResp = respChan

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	newModel, _ := model.Update(msg)
	m := newModel.(BubbleTeaModel)

	assert.Equal(t, "", m.state.Input.Value())
	assert.False(t, m.state.CanSubmit)
	assert.Len(t, m.state.Messages, 1)
	assert.Equal(t, "user", m.state.Messages[0].Role)
	assert.Equal(t, "hello", m.state.Messages[0].Content)

	select {
	case resp := <-respChan:
		assert.Equal(t, "hello", resp)
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for response")
	}
}

func TestUpdate_SlashModels_SendsCommand(t *testing.T) {
	model := createTestModel()
	model.state.Input.SetValue("/models")
	model.state.CanSubmit = true

	cmdChan := make(chan UICommand, 1)
	model.commandChan = cmdChan

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	newModel, _ := model.Update(msg)
	m := newModel.(BubbleTeaModel)

	assert.Equal(t, "", m.state.Input.Value())

	select {
	case cmd := <-cmdChan:
		assert.Equal(t, "list_models", cmd.Type)
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for command")
	}
}

func TestUpdate_StatusUpdate(t *testing.T) {
	model := createTestModel()

	newModel, _ := model.Update(statusUpdateMsg{phase: "blocked", message: "Command denied"})
	m := newModel.(BubbleTeaModel)

	assert.Equal(t, "blocked", m.state.StatusPhase)
	assert.Equal(t, "Command denied", m.state.StatusMessage)
}

func TestUpdate_MessageReceived_AppendsAssistant(t *testing.T) {
	model := createTestModel()

	newModel, _ := model.Update(messageReceivedMsg("task complete"))
	m := newModel.(BubbleTeaModel)

	assert.Len(t, m.state.Messages, 1)
	assert.Equal(t, "assistant", m.state.Messages[0].Role)
	assert.Equal(t, "task complete", m.state.Messages[0].Content)
}

func TestUpdate_ModelListReceived_OpensPopup(t *testing.T) {
	model := createTestModel()

	newModel, _ := model.Update(modelListReceivedMsg([]string{"a", "b"}))
	m := newModel.(BubbleTeaModel)

	assert.True(t, m.state.ShowModelList)
	assert.Equal(t, []string{"a", "b"}, m.state.ModelList)
	assert.Equal(t, 0, m.state.ModelListIndex)
}

func TestUpdate_ModelChanged_UpdatesStatusBar(t *testing.T) {
	model := createTestModel()

	newModel, _ := model.Update(modelChangedMsg("claude-3-5-haiku-20241022"))
	m := newModel.(BubbleTeaModel)

	assert.Equal(t, "claude-3-5-haiku-20241022", m.state.CurrentModel)
}

func TestUpdate_PopupNavigation_Down(t *testing.T) {
	model := createTestModel()
	model.state.ShowModelList = true
	model.state.ModelList = []string{"a", "b", "c"}
	model.state.ModelListIndex = 0

	msg := tea.KeyMsg{Type: tea.KeyDown}
	newModel, _ := model.Update(msg)
	m := newModel.(BubbleTeaModel)

	assert.Equal(t, 1, m.state.ModelListIndex)
}

func TestUpdate_PopupNavigation_Up(t *testing.T) {
	model := createTestModel()
	model.state.ShowModelList = true
	model.state.ModelList = []string{"a", "b", "c"}
	model.state.ModelListIndex = 1

	msg := tea.KeyMsg{Type: tea.KeyUp}
	newModel, _ := model.Update(msg)
	m := newModel.(BubbleTeaModel)

	assert.Equal(t, 0, m.state.ModelListIndex)
}

func TestUpdate_PopupNavigation_Esc(t *testing.T) {
	model := createTestModel()
	model.state.ShowModelList = true

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	newModel, _ := model.Update(msg)
	m := newModel.(BubbleTeaModel)

	assert.False(t, m.state.ShowModelList)
}

func TestUpdate_PopupNavigation_Enter(t *testing.T) {
	model := createTestModel()
	model.state.ShowModelList = true
	model.state.ModelList = []string{"model-a"}
	model.state.ModelListIndex = 0

	cmdChan := make(chan UICommand, 1)
	model.commandChan = cmdChan

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	newModel, _ := model.Update(msg)
	m := newModel.(BubbleTeaModel)

	assert.False(t, m.state.ShowModelList)

	select {
	case cmd := <-cmdChan:
		assert.Equal(t, "switch_model", cmd.Type)
		assert.Equal(t, "model-a", cmd.Args["model"])
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for command")
	}
}

func TestTick_DotAnimation(t *testing.T) {
	model := createTestModel()
	model.state.DotCount = 0

	// Tick 4 times
	for i := 0; i < 4; i++ {
		msg := tickMsg(time.Now())
		newModel, _ := model.Update(msg)
		model = newModel.(BubbleTeaModel)
	}

	assert.Equal(t, 0, model.state.DotCount) // Cycles back to 0
}

func TestUpdate_TextInput(t *testing.T) {
	model := createTestModel()
	model.state.Input.SetValue("")
	model.state.CanSubmit = true

	// Simulate typing "abc"
	runes := []rune{'a', 'b', 'c'}
	for _, r := range runes {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		newModel, _ := model.Update(msg)
		model = newModel.(BubbleTeaModel)
	}

	assert.Equal(t, "abc", model.state.Input.Value())
}

func TestUpdate_CtrlC_Quits(t *testing.T) {
	model := createTestModel()

	msg := tea.KeyMsg{Type: tea.KeyCtrlC}
	_, cmd := model.Update(msg)

	assert.NotNil(t, cmd)
}
