package engine

import (
	"iter"
	"slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MovesPerf returns the legal moves of colour as a lazy sequence. Pieces
// are visited a1 to h8. A pawn move onto the last rank appears once;
// the promotion choice is made later through Promote.
func (g *Game) MovesPerf(colour chess.Colour) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		v := g.validator()
		for _, from := range g.board.Pieces(colour) {
			for m := range v.PotentialMoves(from) {
				if v.leavesKingInCheck(m) {
					continue
				}
				if !yield(m) {
					return
				}
			}
		}
	}
}

// Moves returns the legal moves of colour. The game is not modified.
func (g *Game) Moves(colour chess.Colour) []chess.Move {
	return slices.Collect(g.MovesPerf(colour))
}

func (g *Game) hasLegalMoves(colour chess.Colour) bool {
	for range g.MovesPerf(colour) {
		return true
	}
	return false
}

// IsPromotion reports whether m, played in this game, moves a pawn onto
// its last rank.
func (g *Game) IsPromotion(m chess.Move) bool {
	piece := g.board.Get(m.From)
	return piece.Type == chess.Pawn && m.To.Rank == chess.PromotionRank(piece.Colour)
}
