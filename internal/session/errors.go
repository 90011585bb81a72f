package session

import (
	"errors"
	"fmt"
)

// ErrUnknownProvider indicates the configured provider name has no backend.
var ErrUnknownProvider = errors.New("unknown provider")

// MissingAPIKeyError indicates no credential was found for a provider.
// The session refuses to start without one.
type MissingAPIKeyError struct {
	Provider string
	EnvVars  []string
}

func (e *MissingAPIKeyError) Error() string {
	return fmt.Sprintf("no API key for provider %q: set one of %v", e.Provider, e.EnvVars)
}

// WorkspaceError indicates the project root could not be prepared.
type WorkspaceError struct {
	Path  string
	Cause error
}

func (e *WorkspaceError) Error() string {
	return fmt.Sprintf("failed to prepare workspace %q: %v", e.Path, e.Cause)
}

func (e *WorkspaceError) Unwrap() error {
	return e.Cause
}

// SettingsWriteError indicates the settings artifact could not be written.
type SettingsWriteError struct {
	Path  string
	Cause error
}

func (e *SettingsWriteError) Error() string {
	return fmt.Sprintf("failed to write settings file %q: %v", e.Path, e.Cause)
}

func (e *SettingsWriteError) Unwrap() error {
	return e.Cause
}
