package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SettingsFileName is the auditable security settings artifact written
// into every project directory.
const SettingsFileName = ".claude_settings.json"

// SandboxSettings requests OS-level bash isolation from the external
// agent runtime. The classifier still runs regardless; the sandbox is a
// second, independent layer.
type SandboxSettings struct {
	Enabled                  bool `json:"enabled"`
	AutoAllowBashIfSandboxed bool `json:"autoAllowBashIfSandboxed"`
}

// PermissionSettings restricts file operations to the project directory.
// Relative patterns ("./**") confine access because the runtime's working
// directory is the project root.
type PermissionSettings struct {
	DefaultMode string   `json:"defaultMode"`
	Allow       []string `json:"allow"`
}

// HookEntry names a hook executable invoked by the runtime.
type HookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// HookGroup binds hooks to a tool matcher.
type HookGroup struct {
	Matcher string      `json:"matcher"`
	Hooks   []HookEntry `json:"hooks"`
}

// Settings is the JSON document written to SettingsFileName.
type Settings struct {
	Sandbox     SandboxSettings        `json:"sandbox"`
	Permissions PermissionSettings     `json:"permissions"`
	Hooks       map[string][]HookGroup `json:"hooks,omitempty"`
}

// DefaultSettings returns the security settings the agent runs under:
// sandbox on, edits auto-approved inside the project, every file tool
// scoped to "./**", and Bash nominally allowed because the classifier
// checkpoints each command before execution.
func DefaultSettings() *Settings {
	return &Settings{
		Sandbox: SandboxSettings{
			Enabled:                  true,
			AutoAllowBashIfSandboxed: true,
		},
		Permissions: PermissionSettings{
			DefaultMode: "acceptEdits",
			Allow: []string{
				"Read(./**)",
				"Write(./**)",
				"Edit(./**)",
				"Glob(./**)",
				"Grep(./**)",
				"Bash(*)",
			},
		},
	}
}

// WriteSettings writes the default settings document into projectDir and
// returns the absolute path of the written file.
func WriteSettings(projectDir string) (string, error) {
	return DefaultSettings().Write(projectDir)
}

// Write serializes the settings into projectDir.
func (s *Settings) Write(projectDir string) (string, error) {
	path := filepath.Join(projectDir, SettingsFileName)

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", &SettingsWriteError{Path: path, Cause: err}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", &SettingsWriteError{Path: path, Cause: err}
	}

	return path, nil
}
