package shell

import "errors"

// -- Sentinels --

var (
	ErrCommandRequired = errors.New("command is required")
	ErrNegativeTimeout = errors.New("timeout must be >= 0")
)
