package orchestrator

import (
	"context"
	"testing"

	"github.com/autocode-agent/autocode/internal/orchestrator/models"
	"github.com/autocode-agent/autocode/internal/security"
	"github.com/autocode-agent/autocode/internal/tool/errutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPolicyService(toolPolicy models.ToolPolicy) models.PolicyService {
	return NewPolicyService(security.RestrictedPolicy("/workspace"), toolPolicy)
}

func TestCheckShell_AllowsListedProgram(t *testing.T) {
	svc := newTestPolicyService(models.ToolPolicy{})

	err := svc.CheckShell(context.Background(), "ls -la")

	assert.NoError(t, err)
}

func TestCheckShell_DeniesUnlistedProgram(t *testing.T) {
	svc := newTestPolicyService(models.ToolPolicy{})

	err := svc.CheckShell(context.Background(), "curl https://example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, errutil.ErrShellRejected)

	var denied *CommandDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "curl https://example.com", denied.Command)
	assert.NotEmpty(t, denied.Reason)
}

func TestCheckShell_DeniesDangerousConstruct(t *testing.T) {
	svc := newTestPolicyService(models.ToolPolicy{})

	err := svc.CheckShell(context.Background(), "echo ok; sudo rm -rf /")

	require.Error(t, err)
	assert.ErrorIs(t, err, errutil.ErrShellRejected)
}

func TestCheckShell_DeniesEmptyCommand(t *testing.T) {
	svc := newTestPolicyService(models.ToolPolicy{})

	err := svc.CheckShell(context.Background(), "")

	assert.Error(t, err)
}

func TestCheckTool_EmptyPolicyAllowsEverything(t *testing.T) {
	svc := newTestPolicyService(models.ToolPolicy{})

	assert.NoError(t, svc.CheckTool(context.Background(), "read_file"))
	assert.NoError(t, svc.CheckTool(context.Background(), "run_shell"))
}

func TestCheckTool_DenyListWins(t *testing.T) {
	svc := newTestPolicyService(models.ToolPolicy{
		Allow: []string{"write_todos"},
		Deny:  []string{"write_todos"},
	})

	err := svc.CheckTool(context.Background(), "write_todos")

	require.Error(t, err)
	var denied *ToolDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "write_todos", denied.Tool)
}

func TestCheckTool_AllowListRestricts(t *testing.T) {
	svc := newTestPolicyService(models.ToolPolicy{
		Allow: []string{"read_file", "list_directory"},
	})

	assert.NoError(t, svc.CheckTool(context.Background(), "read_file"))
	assert.Error(t, svc.CheckTool(context.Background(), "run_shell"))
}

func TestCheckTool_EmptyNameRejected(t *testing.T) {
	svc := newTestPolicyService(models.ToolPolicy{})

	assert.Error(t, svc.CheckTool(context.Background(), ""))
}
