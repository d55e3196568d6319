// Package errors provides sentinel errors and error types for cpuchess.
// The board, generator and search are total and never return errors; these
// types serve the surfaces around them: FEN input, configuration and the CLI.
// Wrapped errors stay inspectable with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidColour indicates a colour name that is neither white nor black.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidPieces indicates an unrecognised piece letter in a piece filter.
	ErrInvalidPieces = errors.New("invalid piece filter")
)

// PositionError describes a FEN string that could not be read.
type PositionError struct {
	Err    error  // The underlying error
	FEN    string // The full FEN string (if known)
	Field  string // The FEN field being read, e.g. "placement"
	Offset int    // Byte offset within the field (0 if not applicable)
	Reason string // What was wrong
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Field != "" {
		if e.Offset > 0 {
			parts = append(parts, fmt.Sprintf("%s at offset %d", e.Field, e.Offset))
		} else {
			parts = append(parts, e.Field)
		}
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %s", e.Err, context)
	}
	if context == "" {
		return "invalid position"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// ConfigError describes a bad configuration value and where it came from.
type ConfigError struct {
	Err    error  // The underlying error
	Source string // "file", "env", "flag" or a file name
	Key    string // The offending key
	Value  string // The offending value (if any)
}

// Error returns a formatted error message with source and key.
func (e *ConfigError) Error() string {
	var parts []string
	if e.Source != "" {
		parts = append(parts, e.Source)
	}
	if e.Key != "" {
		if e.Value != "" {
			parts = append(parts, fmt.Sprintf("%s=%q", e.Key, e.Value))
		} else {
			parts = append(parts, e.Key)
		}
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "configuration error"
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
