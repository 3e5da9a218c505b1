// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position
	fenFlag   = flag.String("fen", "", "Start position in FEN (default: initial position)")
	movesFlag = flag.String("moves", "", "Space separated UCI moves played before counting")

	// Search
	depthFlag   = flag.Int("depth", 1, "Plies to search")
	workersFlag = flag.Int("workers", 1, "Worker goroutines for the root moves")
	divideFlag  = flag.Bool("divide", false, "Print the node count below each root move")
	eachDepth   = flag.Bool("each-depth", false, "Write one report per depth from 1 to -depth")

	// Rules
	repetitionFlag = flag.Int("repetition", 3, "Repetitions that draw the game (3 or 5)")

	// Output
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	logLevel   = flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	jsonLogs   = flag.Bool("json-logs", false, "Write logs as JSON instead of console text")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags maps parsed flag values onto cfg.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applySearchFlags(cfg)
	applyOutputFlags(cfg)
	cfg.Game.RepetitionThreshold = *repetitionFlag
}

// applyPositionFlags configures the start position and the moves played from it.
func applyPositionFlags(cfg *config.Config) {
	if *fenFlag != "" {
		cfg.Perft.FEN = *fenFlag
	}
	cfg.Perft.Moves = strings.Fields(*movesFlag)
}

// applySearchFlags configures depth, workers, divide and per-depth reports.
func applySearchFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depthFlag
	cfg.Perft.Workers = *workersFlag
	cfg.Perft.Divide = *divideFlag
	cfg.Perft.EachDepth = *eachDepth
}

// applyOutputFlags configures report and log output.
func applyOutputFlags(cfg *config.Config) {
	cfg.JSONOutput = *jsonOutput
	cfg.Log.Level = *logLevel
	cfg.Log.Console = !*jsonLogs
}
