package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Provider ProviderConfig `json:"provider"`
	Agent    AgentConfig    `json:"agent"`
	Security SecurityConfig `json:"security"`
	Tools    ToolsConfig    `json:"tools"`
}

type ProviderConfig struct {
	// Name selects the LLM backend: "claude" or "gemini".
	Name string `json:"name"` // Default: "claude"

	// Model is the model identifier passed to the provider.
	Model string `json:"model"` // Default: "claude-sonnet-4-20250514"
}

type AgentConfig struct {
	// MaxTurns bounds the autonomous loop.
	MaxTurns int `json:"max_turns"` // Default: 1000

	// SystemPrompt is prepended to every session.
	SystemPrompt string `json:"system_prompt"`
}

// SecurityMode selects which Policy preset a session starts with.
type SecurityMode string

const (
	ModeRestricted SecurityMode = "restricted"
	ModePermissive SecurityMode = "permissive"
)

type SecurityConfig struct {
	// Mode selects the policy preset. Default: restricted.
	Mode SecurityMode `json:"mode"`

	// ExtraAllowedPrograms extends the preset allowlist. Programs listed
	// here are appended at session setup; the preset itself is never
	// modified.
	ExtraAllowedPrograms []string `json:"extra_allowed_programs"`

	// MaxCommandLength caps the raw command string the classifier will
	// look at. Zero uses the classifier default.
	MaxCommandLength int `json:"max_command_length"`
}

type ToolsConfig struct {
	// File Operations
	MaxFileSize int64 `json:"max_file_size"` // Default: 20 * 1024 * 1024 (20MB)

	// Directory Listing
	DefaultListDirectoryLimit int `json:"default_list_directory_limit"` // Default: 1000
	MaxListDirectoryLimit     int `json:"max_list_directory_limit"`     // Default: 10000

	// Command Execution
	DefaultMaxCommandOutputSize int64 `json:"default_max_command_output_size"` // Default: 10 * 1024 * 1024 (10MB)
	DefaultShellTimeout         int   `json:"default_shell_timeout"`           // Default: 600 (10 minutes, in seconds)
	GracefulShutdownMs          int   `json:"graceful_shutdown_ms"`            // Default: 2000

	// Search
	MaxLineLength             int `json:"max_line_length"`              // Default: 10000
	DefaultSearchContentLimit int `json:"default_search_content_limit"` // Default: 100
	MaxSearchContentLimit     int `json:"max_search_content_limit"`     // Default: 1000
	DefaultFindFileLimit      int `json:"default_find_file_limit"`      // Default: 100
	MaxFindFileLimit          int `json:"max_find_file_limit"`          // Default: 1000

	// Binary detection
	BinaryDetectionSampleSize int `json:"binary_detection_sample_size"` // Default: 8000
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Name:  "claude",
			Model: "claude-sonnet-4-20250514",
		},
		Agent: AgentConfig{
			MaxTurns:     1000,
			SystemPrompt: "You are an expert full-stack developer building a production-quality web application.",
		},
		Security: SecurityConfig{
			Mode: ModeRestricted,
		},
		Tools: ToolsConfig{
			MaxFileSize:                 20 * 1024 * 1024,
			DefaultListDirectoryLimit:   1000,
			MaxListDirectoryLimit:       10000,
			DefaultMaxCommandOutputSize: 10 * 1024 * 1024,
			DefaultShellTimeout:         600,
			GracefulShutdownMs:          2000,
			MaxLineLength:               10000,
			DefaultSearchContentLimit:   100,
			MaxSearchContentLimit:       1000,
			DefaultFindFileLimit:        100,
			MaxFindFileLimit:            1000,
			BinaryDetectionSampleSize:   8000,
		},
	}
}
