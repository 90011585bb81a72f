package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Provider validation
	switch c.Provider.Name {
	case "claude", "gemini":
	default:
		errs = append(errs, fmt.Sprintf("provider.name must be \"claude\" or \"gemini\", got %q", c.Provider.Name))
	}
	if c.Provider.Model == "" {
		errs = append(errs, "provider.model must not be empty")
	}

	// Agent validation
	if c.Agent.MaxTurns < 1 {
		errs = append(errs, "agent.max_turns must be >= 1")
	}

	// Security validation
	switch c.Security.Mode {
	case ModeRestricted, ModePermissive:
	default:
		errs = append(errs, fmt.Sprintf("security.mode must be \"restricted\" or \"permissive\", got %q", c.Security.Mode))
	}
	if c.Security.MaxCommandLength < 0 {
		errs = append(errs, "security.max_command_length must be >= 0")
	}

	// Tools validation
	if c.Tools.MaxFileSize < 1 {
		errs = append(errs, "tools.max_file_size must be >= 1")
	}
	if c.Tools.DefaultListDirectoryLimit < 1 {
		errs = append(errs, "tools.default_list_directory_limit must be >= 1")
	}
	if c.Tools.MaxListDirectoryLimit < 1 {
		errs = append(errs, "tools.max_list_directory_limit must be >= 1")
	}
	if c.Tools.DefaultMaxCommandOutputSize < 1 {
		errs = append(errs, "tools.default_max_command_output_size must be >= 1")
	}
	if c.Tools.DefaultShellTimeout < 1 {
		errs = append(errs, "tools.default_shell_timeout must be >= 1")
	}
	if c.Tools.GracefulShutdownMs < 1 {
		errs = append(errs, "tools.graceful_shutdown_ms must be >= 1")
	}
	if c.Tools.MaxLineLength < 1 {
		errs = append(errs, "tools.max_line_length must be >= 1")
	}
	if c.Tools.DefaultSearchContentLimit < 1 {
		errs = append(errs, "tools.default_search_content_limit must be >= 1")
	}
	if c.Tools.MaxSearchContentLimit < 1 {
		errs = append(errs, "tools.max_search_content_limit must be >= 1")
	}
	if c.Tools.DefaultFindFileLimit < 1 {
		errs = append(errs, "tools.default_find_file_limit must be >= 1")
	}
	if c.Tools.MaxFindFileLimit < 1 {
		errs = append(errs, "tools.max_find_file_limit must be >= 1")
	}
	if c.Tools.BinaryDetectionSampleSize < 1 {
		errs = append(errs, "tools.binary_detection_sample_size must be >= 1")
	}

	// Semantic validation: Default <= Max constraints
	if c.Tools.DefaultListDirectoryLimit > c.Tools.MaxListDirectoryLimit {
		errs = append(errs, "tools.default_list_directory_limit must be <= tools.max_list_directory_limit")
	}
	if c.Tools.DefaultSearchContentLimit > c.Tools.MaxSearchContentLimit {
		errs = append(errs, "tools.default_search_content_limit must be <= tools.max_search_content_limit")
	}
	if c.Tools.DefaultFindFileLimit > c.Tools.MaxFindFileLimit {
		errs = append(errs, "tools.default_find_file_limit must be <= tools.max_find_file_limit")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
