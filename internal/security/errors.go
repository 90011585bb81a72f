package security

import (
	"errors"
)

// -- Sentinels --

// Policy configuration errors. These are fatal at session setup: a session
// must refuse to start with an invalid policy rather than degrade to
// permissive behaviour.
var (
	ErrProjectRootRequired    = errors.New("project root is required")
	ErrProjectRootNotAbsolute = errors.New("project root must be an absolute path")
	ErrEmptyAllowlist         = errors.New("allowed programs list is empty")
	ErrNoDeniedPatterns       = errors.New("denied pattern list is empty")
	ErrInvalidMaxLength       = errors.New("max command length must be positive")
)
