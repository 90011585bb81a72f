package orchestrator

import (
	"context"
	"fmt"
	"slices"

	"github.com/autocode-agent/autocode/internal/orchestrator/models"
	"github.com/autocode-agent/autocode/internal/security"
)

// policyService implements models.PolicyService. Shell commands go through
// the classifier against the immutable session policy; other tools are
// gated by name. There is no interactive escalation path: a denial is
// final for this call and is surfaced to the model as a tool error.
type policyService struct {
	shellPolicy *security.Policy
	toolPolicy  models.ToolPolicy
}

// NewPolicyService creates a PolicyService backed by the given session
// shell policy and tool-name rules.
func NewPolicyService(shellPolicy *security.Policy, toolPolicy models.ToolPolicy) models.PolicyService {
	return &policyService{
		shellPolicy: shellPolicy,
		toolPolicy:  toolPolicy,
	}
}

// CheckShell classifies the raw command string. Execution must not begin
// unless this returns nil.
func (p *policyService) CheckShell(ctx context.Context, command string) error {
	verdict := security.Classify(command, p.shellPolicy)
	if verdict.Allowed() {
		return nil
	}

	return &CommandDeniedError{
		Command: command,
		Rule:    verdict.Rule,
		Reason:  verdict.Reason,
	}
}

// CheckTool validates if a tool is allowed to be used. An empty Allow list
// permits every tool not present in Deny.
func (p *policyService) CheckTool(ctx context.Context, toolName string) error {
	if toolName == "" {
		return fmt.Errorf("tool name cannot be empty")
	}

	if slices.Contains(p.toolPolicy.Deny, toolName) {
		return &ToolDeniedError{Tool: toolName}
	}

	if len(p.toolPolicy.Allow) > 0 && !slices.Contains(p.toolPolicy.Allow, toolName) {
		return &ToolDeniedError{Tool: toolName}
	}

	return nil
}
