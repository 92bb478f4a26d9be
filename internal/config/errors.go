package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration matches every [*ConfigurationError] via
// [errors.Is].
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigurationError reports a configuration value that prevents the
// server from starting, for example a missing encryption secret outside of
// the test environment.
type ConfigurationError struct {
	// Field is the dotted config path, e.g. "App.CryptoSecret".
	Field string
	// Reason describes what is wrong with the field.
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

// Is makes every ConfigurationError match [ErrInvalidConfiguration].
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
