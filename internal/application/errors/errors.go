// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// ConfigurationError indicates a definition or system config issue that is
// not a column validation failure.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// ParameterError indicates a sweep parameter name or value that cannot be
// applied to a column.
type ParameterError struct {
	Parameter string
	Message   string
	Supported []string
}

func (e *ParameterError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("parameter %s: %s", e.Parameter, e.Message)
	}
	return fmt.Sprintf("parameter %s: %s (supported: %v)", e.Parameter, e.Message, e.Supported)
}

// NewParameterError creates a new parameter error.
func NewParameterError(parameter, message string, supported ...string) *ParameterError {
	return &ParameterError{
		Parameter: parameter,
		Message:   message,
		Supported: supported,
	}
}
