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

// WithFEN sets the start position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Perft.FEN = fen
	return b
}

// WithMoves sets the UCI moves played before counting.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Perft.Moves = moves
	return b
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithDivide enables per move counts.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithEachDepth enables one report per depth up to the configured depth.
func (b *ConfigBuilder) WithEachDepth(enabled bool) *ConfigBuilder {
	b.cfg.Perft.EachDepth = enabled
	return b
}

// WithRepetitionThreshold sets the repetition count that draws a game.
func (b *ConfigBuilder) WithRepetitionThreshold(n int) *ConfigBuilder {
	b.cfg.Game.RepetitionThreshold = n
	return b
}

// WithLogLevel sets the log level by name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithJSONLogs switches the logger from console to JSON output.
func (b *ConfigBuilder) WithJSONLogs(enabled bool) *ConfigBuilder {
	b.cfg.Log.Console = !enabled
	return b
}

// WithLogWriter sets the log destination.
func (b *ConfigBuilder) WithLogWriter(w io.Writer) *ConfigBuilder {
	b.cfg.Log.Writer = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSONOutput = enabled
	return b
}
