// perft counts the legal move tree below a chess position.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\nOptions:\n")
	flag.PrintDefaults()
}

// run validates cfg, sets up the position and writes a report per
// requested depth.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := cfg.Log.Logger()

	g, err := engine.NewGameFromFEN(cfg.Perft.FEN, cfg.GameOptions()...)
	if err != nil {
		return err
	}
	if err := g.PlayUCI(cfg.Perft.Moves...); err != nil {
		return err
	}

	log.Debug().
		Str("fen", engine.ToFEN(g)).
		Int("depth", cfg.Perft.Depth).
		Int("workers", cfg.Perft.Workers).
		Msg("counting")

	depths := []int{cfg.Perft.Depth}
	if cfg.Perft.EachDepth {
		depths = depths[:0]
		for d := 1; d <= cfg.Perft.Depth; d++ {
			depths = append(depths, d)
		}
	}

	w := newReportWriter(cfg, len(depths))
	for _, depth := range depths {
		start := time.Now()
		report := output.NewReport(g, depth, cfg.Perft.Workers, cfg.Perft.Divide)
		elapsed := time.Since(start)

		log.Info().
			Int("depth", depth).
			Uint64("nodes", report.Nodes).
			Dur("elapsed", elapsed).
			Float64("nps", float64(report.Nodes)/elapsed.Seconds()).
			Msg("perft done")

		if err := w.WriteReport(report); err != nil {
			return err
		}
	}
	return w.Close()
}

// newReportWriter picks the writer for cfg. JSON output of several reports
// is batched into one array.
func newReportWriter(cfg *config.Config, reports int) output.ReportWriter {
	switch {
	case !cfg.JSONOutput:
		return output.NewTextWriter(cfg.Output)
	case reports > 1:
		return output.NewJSONWriter(cfg.Output)
	default:
		return output.NewJSONWriterSingle(cfg.Output)
	}
}
