package main

import (
	"testing"

	"github.com/autocode-agent/autocode/internal/config"
	"github.com/autocode-agent/autocode/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTools_AllToolsRegistered(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	sess, err := session.New(t.TempDir(), cfg)
	require.NoError(t, err)

	toolList := createTools(cfg, sess)

	expectedTools := []string{
		"read_file",
		"write_file",
		"edit_file",
		"list_directory",
		"run_shell",
		"search_content",
		"find_file",
		"read_todos",
		"write_todos",
	}

	for _, expected := range expectedTools {
		found := false
		for _, tool := range toolList {
			if tool.Name() == expected {
				found = true
				break
			}
		}
		assert.True(t, found, "Tool %s should be in toolList", expected)
	}

	assert.Equal(t, len(expectedTools), len(toolList))

	for _, tool := range toolList {
		def := tool.Definition()
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Description)
	}
}

func TestCreateRealProviderFactory_MissingAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("CLAUDE_CODE_OAUTH_TOKEN", "")

	cfg := config.DefaultConfig()
	factory := createRealProviderFactory(cfg)

	_, err := factory(t.Context())

	require.Error(t, err)
	var missing *session.MissingAPIKeyError
	assert.ErrorAs(t, err, &missing)
}
