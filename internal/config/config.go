// Package config provides configuration for the cpuchess engine and CLI.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Values PieceValues  `yaml:"values"`

	// Verbosity: 0=nothing, 1=per-move summary, 2=search trace
	Verbosity int `yaml:"verbosity"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Engine:     NewEngineConfig(),
		Values:     NewPieceValues(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every setting and returns the first problem found.
// Out-of-range levels are not an error: the player clamps them.
func (c *Config) Validate() error {
	if _, err := c.Engine.SideColour(); err != nil {
		return &errors.ConfigError{Err: err, Key: "engine.colour", Value: c.Engine.Colour}
	}
	if _, err := c.Engine.PieceFilter(); err != nil {
		return &errors.ConfigError{Err: err, Key: "engine.pieces", Value: c.Engine.Pieces}
	}
	if c.Engine.Workers < 1 {
		return invalid("engine.workers", c.Engine.Workers)
	}
	if c.Engine.MaxDepth < 0 {
		return invalid("engine.max_depth", c.Engine.MaxDepth)
	}
	if c.Verbosity < 0 {
		return invalid("verbosity", c.Verbosity)
	}
	return c.Values.Validate()
}

// Logf writes a log line when the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// invalid builds a ConfigError for a bad value.
func invalid(key string, value interface{}) error {
	return &errors.ConfigError{Err: errors.ErrInvalidConfig, Key: key, Value: fmt.Sprint(value)}
}
