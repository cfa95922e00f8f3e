package errors

import (
	"errors"
	"strings"
)

var (
	ErrConfiguration = errors.New("REGION and FUNCTIONS_BUCKET environment variables must be set")
	ErrRunnerFailed  = errors.New("failed to run deployment tool")
)

// ConfigurationError reports required environment variables that were unset or empty.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) == 0 {
		return ErrConfiguration.Error()
	}
	return ErrConfiguration.Error() + " (missing: " + strings.Join(e.Missing, ", ") + ")"
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
