// Package config holds the settings of the perft command.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Config holds all program configuration.
type Config struct {
	Perft *PerftConfig
	Game  *GameConfig
	Log   *LogConfig

	// Output is where results are written.
	Output     io.Writer
	JSONOutput bool
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Perft:  NewPerftConfig(),
		Game:   NewGameConfig(),
		Log:    NewLogConfig(),
		Output: os.Stdout,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.Output = w
}

// Validate checks every sub-config and returns the first error found.
func (c *Config) Validate() error {
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// GameOptions returns the engine options matching the configuration.
func (c *Config) GameOptions() []engine.Option {
	return []engine.Option{
		engine.WithLogger(c.Log.Logger()),
		engine.WithRepetitionThreshold(c.Game.RepetitionThreshold),
	}
}
