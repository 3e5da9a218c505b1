package config

import (
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PerftConfig holds settings for a node count run.
type PerftConfig struct {
	// Start position
	FEN   string
	Moves []string // UCI moves played before counting

	// Search
	Depth   int
	Workers int
	Divide  bool // Print the count below each root move

	// EachDepth writes one report per depth from 1 to Depth.
	EachDepth bool
}

// NewPerftConfig creates a PerftConfig counting one ply from the initial
// position on a single worker.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		FEN:     engine.InitialFEN,
		Depth:   1,
		Workers: 1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "depth %d < 1", p.Depth)
	}
	if p.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d < 1", p.Workers)
	}
	if p.FEN == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "empty FEN")
	}
	return nil
}

// GameConfig holds settings passed to every game.
type GameConfig struct {
	RepetitionThreshold int
}

// NewGameConfig creates a GameConfig using the threefold repetition rule.
func NewGameConfig() *GameConfig {
	return &GameConfig{RepetitionThreshold: engine.RepetitionThreefold}
}

// Validate checks that the repetition threshold is one the engine supports.
func (g *GameConfig) Validate() error {
	switch g.RepetitionThreshold {
	case engine.RepetitionThreefold, engine.RepetitionFivefold:
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidConfig, "repetition threshold %d not %d or %d",
		g.RepetitionThreshold, engine.RepetitionThreefold, engine.RepetitionFivefold)
}
