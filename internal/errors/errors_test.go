package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to read position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
	if errors.Is(wrapped, ErrInvalidConfig) {
		t.Errorf("errors.Is(wrapped, ErrInvalidConfig) = true, want false")
	}
}

func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:    ErrInvalidFEN,
				FEN:    "rnbqkbnr/ppppxppp w",
				Field:  "placement",
				Offset: 13,
				Reason: `invalid piece character 'x'`,
			},
			contains: []string{"invalid FEN", "placement at offset 13", "invalid piece character", "ppppxppp"},
		},
		{
			name:     "sentinel only",
			err:      &PositionError{Err: ErrInvalidFEN},
			contains: []string{"invalid FEN string"},
		},
		{
			name:     "no underlying error",
			err:      &PositionError{Field: "side to move"},
			contains: []string{"side to move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestPositionError_As(t *testing.T) {
	posErr := &PositionError{Err: ErrInvalidFEN, Field: "placement", Offset: 4}
	wrapped := fmt.Errorf("loading board: %w", posErr)

	var extracted *PositionError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As(wrapped, &PositionError) = false, want true")
	}
	if extracted.Offset != 4 {
		t.Errorf("extracted.Offset = %d, want 4", extracted.Offset)
	}
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Err: ErrInvalidConfig, Source: "env", Key: "CPUCHESS_LEVEL", Value: "abc"}

	msg := err.Error()
	for _, s := range []string{"env", "CPUCHESS_LEVEL", `"abc"`, "invalid configuration"} {
		if !strings.Contains(msg, s) {
			t.Errorf("ConfigError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is(err, ErrInvalidConfig) = false, want true")
	}
	if got := (&ConfigError{}).Error(); got != "configuration error" {
		t.Errorf("empty ConfigError.Error() = %q", got)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrInvalidColour, "flag %s", "--colour")
	if !errors.Is(err, ErrInvalidColour) {
		t.Error("Wrapf lost the underlying error")
	}
	if got := err.Error(); got != "flag --colour: invalid colour" {
		t.Errorf("Wrapf() = %q", got)
	}
}
