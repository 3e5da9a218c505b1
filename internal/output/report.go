package output

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// Report is the result of one perft run.
type Report struct {
	FEN     string            `json:"fen"`
	State   string            `json:"state"`
	Depth   int               `json:"depth"`
	Nodes   uint64            `json:"nodes"`
	Workers int               `json:"workers,omitempty"`
	Divide  map[string]uint64 `json:"divide,omitempty"`
}

// NewReport counts the nodes below g. With divide set the per move counts
// are kept, computed on workers goroutines when workers > 1.
func NewReport(g *engine.Game, depth, workers int, divide bool) *Report {
	r := &Report{
		FEN:     engine.ToFEN(g),
		State:   g.State().String(),
		Depth:   depth,
		Workers: workers,
	}
	if !divide && workers <= 1 {
		r.Nodes = perft.Perft(g, depth)
		return r
	}

	var d map[string]uint64
	if workers > 1 {
		d = perft.ParallelDivide(g, depth, workers)
	} else {
		d = perft.Divide(g, depth)
	}
	r.Nodes = perft.Total(d)
	if divide {
		r.Divide = d
	}
	return r
}

// SortedMoves returns the keys of Divide in ascending order.
func (r *Report) SortedMoves() []string {
	moves := maps.Keys(r.Divide)
	sort.Strings(moves)
	return moves
}
