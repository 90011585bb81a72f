// Package session prepares everything a run needs before the agent loop
// starts: credentials, the canonical project root, and the immutable
// security policy derived from configuration.
package session

import (
	"os"
	"path/filepath"

	"github.com/autocode-agent/autocode/internal/config"
	"github.com/autocode-agent/autocode/internal/security"
	"github.com/autocode-agent/autocode/internal/tool/pathutil"
)

// Session holds the immutable per-run state. Once New returns, none of
// these fields change for the lifetime of the run.
type Session struct {
	// Root is the canonical (symlink-resolved, absolute) project root.
	Root string

	// Policy is the command classification policy for this session.
	Policy *security.Policy

	// Config is the loaded application configuration.
	Config *config.Config
}

// ResolveAPIKey looks up the credential for the named provider.
// Claude accepts ANTHROPIC_API_KEY with a CLAUDE_CODE_OAUTH_TOKEN
// fallback; Gemini uses GEMINI_API_KEY.
func ResolveAPIKey(providerName string) (string, error) {
	var envVars []string
	switch providerName {
	case "claude":
		envVars = []string{"ANTHROPIC_API_KEY", "CLAUDE_CODE_OAUTH_TOKEN"}
	case "gemini":
		envVars = []string{"GEMINI_API_KEY"}
	default:
		return "", ErrUnknownProvider
	}

	for _, name := range envVars {
		if key := os.Getenv(name); key != "" {
			return key, nil
		}
	}

	return "", &MissingAPIKeyError{Provider: providerName, EnvVars: envVars}
}

// ResolveCLIPath locates an external claude CLI binary: CLAUDE_CLI_PATH
// first, then ~/.claude/local/claude if it exists. Empty means no local
// installation was found.
func ResolveCLIPath() string {
	if cliPath := os.Getenv("CLAUDE_CLI_PATH"); cliPath != "" {
		return cliPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	local := filepath.Join(home, ".claude", "local", "claude")
	if _, err := os.Stat(local); err == nil {
		return local
	}

	return ""
}

// New creates a session for the given project directory. The directory is
// created if missing, canonicalized, and bound into the policy preset
// selected by cfg.Security.Mode. An invalid policy is fatal.
func New(projectDir string, cfg *config.Config) (*Session, error) {
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return nil, &WorkspaceError{Path: projectDir, Cause: err}
	}

	root, err := pathutil.CanonicaliseRoot(projectDir)
	if err != nil {
		return nil, &WorkspaceError{Path: projectDir, Cause: err}
	}

	var policy *security.Policy
	switch cfg.Security.Mode {
	case config.ModePermissive:
		policy = security.PermissivePolicy(root)
	default:
		policy = security.RestrictedPolicy(root)
	}

	if len(cfg.Security.ExtraAllowedPrograms) > 0 {
		policy = policy.WithExtraPrograms(cfg.Security.ExtraAllowedPrograms)
	}

	if cfg.Security.MaxCommandLength > 0 {
		clone := *policy
		clone.MaxCommandLength = cfg.Security.MaxCommandLength
		policy = &clone
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		Root:   root,
		Policy: policy,
		Config: cfg,
	}, nil
}
