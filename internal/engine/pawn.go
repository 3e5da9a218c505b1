package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves yields the forward steps and captures of a pawn. A pawn
// reaching its last rank is an ordinary move here; promotion is resolved
// by the game state machine afterwards.
func (v *Validator) pawnMoves(origin chess.Position, colour chess.Colour, yield func(chess.Move) bool) bool {
	dir := chess.ColourOffset(colour)

	if one, ok := origin.Offset(0, dir); ok && v.board.Get(one).IsEmpty() {
		if !yield(chess.Move{Kind: chess.Quiet, From: origin, To: one}) {
			return false
		}
		if origin.Rank == chess.PawnStartRank(colour) {
			if two, ok := origin.Offset(0, 2*dir); ok && v.board.Get(two).IsEmpty() {
				if !yield(chess.Move{Kind: chess.PawnPush, From: origin, To: two}) {
					return false
				}
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		to, ok := origin.Offset(dc, dir)
		if !ok {
			continue
		}
		target := v.board.Get(to)
		var kind chess.MoveKind
		switch {
		case !target.IsEmpty() && target.Colour != colour:
			kind = chess.Capture
		case target.IsEmpty() && v.canCaptureEnPassant(to, origin.Rank, colour):
			kind = chess.CaptureEnPassant
		default:
			continue
		}
		if !yield(chess.Move{Kind: kind, From: origin, To: to}) {
			return false
		}
	}
	return true
}

// canCaptureEnPassant reports whether a pawn of colour standing on rank
// may capture onto the empty square to by en passant.
func (v *Validator) canCaptureEnPassant(to chess.Position, rank chess.Rank, colour chess.Colour) bool {
	if to != v.enPassant || to.Rank != chess.EnPassantRank(colour) {
		return false
	}
	victim := v.board.Get(chess.Position{Col: to.Col, Rank: rank})
	return victim.Type == chess.Pawn && victim.Colour != colour
}

// enPassantVictim returns the square of the pawn removed by an en-passant
// capture m.
func enPassantVictim(m chess.Move) chess.Position {
	return chess.Position{Col: m.To.Col, Rank: m.From.Rank}
}
