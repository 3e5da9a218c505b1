// Package perft counts the leaf nodes of the legal move tree. The counts
// are compared against published values to validate move generation.
package perft

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// promotionPieces are the choices expanded after a pawn reaches its last
// rank.
var promotionPieces = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Perft returns the number of leaf nodes depth plies below g. Each
// promotion choice is a separate node. Terminal positions have no
// children. g is not modified.
func Perft(g *engine.Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	if !g.State().AcceptsMove() {
		return 0
	}

	side := g.SideToMove()
	if depth == 1 {
		var nodes uint64
		for m := range g.MovesPerf(side) {
			if g.IsPromotion(m) {
				nodes += uint64(len(promotionPieces))
			} else {
				nodes++
			}
		}
		return nodes
	}

	var nodes uint64
	for m := range g.MovesPerf(side) {
		nodes += perftMove(g, m, depth)
	}
	return nodes
}

// perftMove plays m on a clone of g and counts the leaves below it.
func perftMove(g *engine.Game, m chess.Move, depth int) uint64 {
	child := g.Clone()
	if !child.Move(m.From, m.To) {
		return 0
	}
	if !child.State().AwaitsPromotion() {
		return Perft(child, depth-1)
	}

	var nodes uint64
	for _, t := range promotionPieces {
		promoted := child.Clone()
		if err := promoted.Promote(t); err != nil {
			continue
		}
		nodes += Perft(promoted, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by the
// move in long algebraic form without a promotion suffix. Promotion
// choices of one move are summed under the same key.
func Divide(g *engine.Game, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth < 1 || !g.State().AcceptsMove() {
		return out
	}
	for m := range g.MovesPerf(g.SideToMove()) {
		out[m.String()] += perftMove(g, m, depth)
	}
	return out
}

// ParallelDivide is Divide with the root moves spread over a worker pool.
// Each worker expands its own clone of g.
func ParallelDivide(g *engine.Game, depth, workers int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth < 1 || !g.State().AcceptsMove() {
		return out
	}

	moves := g.Moves(g.SideToMove())
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Game: g.Clone(), Move: m, Depth: depth, Index: i}
	}

	pool := worker.NewPool(expand,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(items)+1))
	for _, r := range pool.Run(items) {
		out[r.Move.String()] += r.Nodes
	}
	return out
}

func expand(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: perftMove(item.Game, item.Move, item.Depth),
	}
}

// Total sums a Divide result.
func Total(divide map[string]uint64) uint64 {
	var n uint64
	for _, v := range divide {
		n += v
	}
	return n
}
