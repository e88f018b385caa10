package core

import (
	"errors"
	"fmt"
)

// ConfigurationError reports invalid setup data: weight tables that do not
// sum to 100, ranges outside the ring, uneven segment/part division.
// It is fatal at setup and must stop gameplay from starting.
type ConfigurationError struct {
	Component string // Package or component that rejected the value
	Field     string // Offending field, e.g. "gap_configs"
	Reason    string
	Expected  string // Optional
	Actual    string // Optional
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("%s: invalid configuration: %s: %s", e.Component, e.Field, e.Reason)
	if e.Expected != "" || e.Actual != "" {
		msg += fmt.Sprintf(" (expected %s, got %s)", e.Expected, e.Actual)
	}
	return msg
}

// SequencingError reports a wiring bug: start called twice, an API used
// before its dependencies were supplied, or an event for an untracked obstacle.
type SequencingError struct {
	Component string
	Op        string
	Reason    string
}

func (e *SequencingError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Component, e.Op, e.Reason)
}

// IsConfiguration reports whether err wraps a ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsSequencing reports whether err wraps a SequencingError.
func IsSequencing(err error) bool {
	var target *SequencingError
	return errors.As(err, &target)
}
