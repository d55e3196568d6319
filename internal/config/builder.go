package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLevel sets the skill level.
func (b *ConfigBuilder) WithLevel(level int) *ConfigBuilder {
	b.cfg.Engine.Level = level
	return b
}

// WithColour sets the side the engine plays.
func (b *ConfigBuilder) WithColour(colour string) *ConfigBuilder {
	b.cfg.Engine.Colour = colour
	return b
}

// WithWorkers sets the number of search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Engine.Workers = n
	return b
}

// WithMaxDepth caps the search depth.
func (b *ConfigBuilder) WithMaxDepth(depth int) *ConfigBuilder {
	b.cfg.Engine.MaxDepth = depth
	return b
}

// WithSeed fixes the random seed used for skewed move choice.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Engine.Seed = seed
	return b
}

// WithWhiteOnly disables move generation for Black.
func (b *ConfigBuilder) WithWhiteOnly(enabled bool) *ConfigBuilder {
	b.cfg.Engine.WhiteOnly = enabled
	return b
}

// WithPieces restricts move generation to the given piece letters.
func (b *ConfigBuilder) WithPieces(letters string) *ConfigBuilder {
	b.cfg.Engine.Pieces = letters
	return b
}

// WithPieceValues sets the material values used by the evaluator.
func (b *ConfigBuilder) WithPieceValues(values PieceValues) *ConfigBuilder {
	b.cfg.Values = values
	return b
}

// WithVerbosity sets the log verbosity.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
