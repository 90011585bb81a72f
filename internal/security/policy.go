package security

import (
	"fmt"
	"path/filepath"
	"slices"
)

// DefaultMaxCommandLength bounds the raw command string. Anything longer is
// rejected as malformed before any scanning happens.
const DefaultMaxCommandLength = 8192

// Policy is the immutable per-session security configuration. No field is
// mutated after the session starts, which is what makes Classify safe for
// concurrent use without locking.
type Policy struct {
	// AllowedPrograms are the executable names permitted to run. Matching
	// is case-sensitive against the basename of the first token of each
	// command segment. Absence denies by default.
	AllowedPrograms []string

	// DeniedPatterns is the ordered set of dangerous-construct rules
	// scanned against the raw command string before tokenization.
	DeniedPatterns []Pattern

	// ProjectRoot is the absolute path the agent is confined to. Any
	// path-like argument that resolves outside it is denied.
	ProjectRoot string

	// MaxCommandLength caps the raw command string length. Zero means
	// DefaultMaxCommandLength.
	MaxCommandLength int
}

// restrictedPrograms is the allowlist for the sandboxed preset: read-only
// inspection, build tooling, and project-local file manipulation. Network
// fetch tools are deliberately absent.
var restrictedPrograms = []string{
	"ls", "cat", "head", "tail", "wc", "stat", "file", "pwd", "echo", "date",
	"grep", "find", "sort", "uniq", "cut", "tr", "diff", "which", "env",
	"sed", "awk", "xargs", "basename", "dirname", "true", "false", "test",
	"mkdir", "touch", "cp", "mv", "ln", "chmod",
	"git", "go", "gofmt", "make",
	"npm", "npx", "node", "yarn", "pnpm",
	"python", "python3", "pip", "pip3", "pytest",
	"cargo", "rustc", "rustfmt",
	"tar", "gzip", "gunzip", "unzip", "jq",
}

// permissiveExtras extends the restricted allowlist for the unsandboxed
// preset with network and service tooling.
var permissiveExtras = []string{
	"curl", "wget", "ssh", "scp", "rsync",
	"docker", "kubectl", "helm",
	"psql", "sqlite3", "redis-cli",
	"kill", "ps", "top", "du", "df",
}

// RestrictedPolicy returns the sandboxed preset: the conservative
// allowlist plus the full denied-pattern set including redirection,
// substitution and backgrounding.
func RestrictedPolicy(projectRoot string) *Policy {
	return &Policy{
		AllowedPrograms:  slices.Clone(restrictedPrograms),
		DeniedPatterns:   DefaultDeniedPatterns,
		ProjectRoot:      projectRoot,
		MaxCommandLength: DefaultMaxCommandLength,
	}
}

// PermissivePolicy returns the unsandboxed preset: a wider allowlist and
// only the core destructive-construct patterns. Shell plumbing is
// tolerated; privilege escalation and fetch-and-execute are not.
func PermissivePolicy(projectRoot string) *Policy {
	programs := slices.Clone(restrictedPrograms)
	programs = append(programs, permissiveExtras...)
	return &Policy{
		AllowedPrograms:  programs,
		DeniedPatterns:   CoreDeniedPatterns,
		ProjectRoot:      projectRoot,
		MaxCommandLength: DefaultMaxCommandLength,
	}
}

// WithExtraPrograms returns a copy of the policy with additional allowed
// programs appended. The receiver is not modified.
func (p *Policy) WithExtraPrograms(programs []string) *Policy {
	if len(programs) == 0 {
		return p
	}
	clone := *p
	clone.AllowedPrograms = slices.Clone(p.AllowedPrograms)
	for _, prog := range programs {
		if prog != "" && !slices.Contains(clone.AllowedPrograms, prog) {
			clone.AllowedPrograms = append(clone.AllowedPrograms, prog)
		}
	}
	return &clone
}

// Validate checks the policy for structural correctness. A failure here
// is fatal at session setup, never a per-command concern.
func (p *Policy) Validate() error {
	if p.ProjectRoot == "" {
		return fmt.Errorf("invalid policy: %w", ErrProjectRootRequired)
	}
	if !filepath.IsAbs(p.ProjectRoot) {
		return fmt.Errorf("invalid policy: %q: %w", p.ProjectRoot, ErrProjectRootNotAbsolute)
	}
	if len(p.AllowedPrograms) == 0 {
		return fmt.Errorf("invalid policy: %w", ErrEmptyAllowlist)
	}
	if len(p.DeniedPatterns) == 0 {
		return fmt.Errorf("invalid policy: %w", ErrNoDeniedPatterns)
	}
	if p.MaxCommandLength < 0 {
		return fmt.Errorf("invalid policy: %w", ErrInvalidMaxLength)
	}
	return nil
}

// maxLength returns the effective command length cap.
func (p *Policy) maxLength() int {
	if p.MaxCommandLength > 0 {
		return p.MaxCommandLength
	}
	return DefaultMaxCommandLength
}
