package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSettings_ProducesAuditableArtifact(t *testing.T) {
	projectDir := t.TempDir()

	path, err := WriteSettings(projectDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(projectDir, SettingsFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed Settings
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Sandbox.Enabled)
	assert.True(t, parsed.Sandbox.AutoAllowBashIfSandboxed)
	assert.Equal(t, "acceptEdits", parsed.Permissions.DefaultMode)
	assert.Contains(t, parsed.Permissions.Allow, "Read(./**)")
	assert.Contains(t, parsed.Permissions.Allow, "Bash(*)")
}

func TestWriteSettings_MissingDirFails(t *testing.T) {
	_, err := WriteSettings(filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	var writeErr *SettingsWriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestSettings_HooksSerialized(t *testing.T) {
	projectDir := t.TempDir()
	settings := DefaultSettings()
	settings.Hooks = map[string][]HookGroup{
		"PreToolUse": {
			{
				Matcher: "Bash",
				Hooks:   []HookEntry{{Type: "command", Command: "autocode-hook"}},
			},
		},
	}

	path, err := settings.Write(projectDir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed Settings
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Contains(t, parsed.Hooks, "PreToolUse")
	require.Len(t, parsed.Hooks["PreToolUse"], 1)
	assert.Equal(t, "Bash", parsed.Hooks["PreToolUse"][0].Matcher)
}
