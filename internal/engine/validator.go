// Package engine implements the rules of chess: move generation, legality,
// the game state machine and FEN serialization.
package engine

import (
	"iter"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Validator generates pseudo-legal moves for one position. It holds the
// placement together with the en-passant target and castling rights that
// move generation depends on.
type Validator struct {
	board     *chess.Board
	enPassant chess.Position
	castling  chess.CastlingRights
}

// NewValidator returns a validator over board. The board is read, never
// mutated.
func NewValidator(board *chess.Board, enPassant chess.Position, castling chess.CastlingRights) *Validator {
	return &Validator{board: board, enPassant: enPassant, castling: castling}
}

// attackValidator returns a validator for the same placement that never
// yields castling or en passant. Attack detection runs on it so that
// castling generation cannot recurse into itself.
func (v *Validator) attackValidator() *Validator {
	return &Validator{board: v.board, enPassant: chess.NoPosition, castling: chess.NoCastling}
}

// PotentialMoves returns the pseudo-legal moves of the piece on origin.
// The sequence is empty for an empty square.
func (v *Validator) PotentialMoves(origin chess.Position) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		piece := v.board.Get(origin)
		switch piece.Type {
		case chess.Pawn:
			v.pawnMoves(origin, piece.Colour, yield)
		case chess.Knight:
			v.stepMoves(origin, piece.Colour, knightSteps, yield)
		case chess.Bishop:
			v.slidingMoves(origin, piece.Colour, diagonalDirections, yield)
		case chess.Rook:
			v.slidingMoves(origin, piece.Colour, straightDirections, yield)
		case chess.Queen:
			if v.slidingMoves(origin, piece.Colour, straightDirections, yield) {
				v.slidingMoves(origin, piece.Colour, diagonalDirections, yield)
			}
		case chess.King:
			if v.stepMoves(origin, piece.Colour, kingSteps, yield) {
				v.castlingMoves(origin, piece.Colour, yield)
			}
		}
	}
}

// CanMove returns the move of the piece on from that ends on to, or
// chess.InvalidMove when there is none or when playing it would leave the
// mover's king in check.
func (v *Validator) CanMove(from, to chess.Position) chess.Move {
	for m := range v.PotentialMoves(from) {
		if m.To != to {
			continue
		}
		if v.leavesKingInCheck(m) {
			return chess.InvalidMove
		}
		return m
	}
	return chess.InvalidMove
}

// leavesKingInCheck plays m on a cloned board and reports whether the
// mover's king is attacked afterwards.
func (v *Validator) leavesKingInCheck(m chess.Move) bool {
	mover := v.board.Get(m.From).Colour
	clone := v.board.Clone()
	applyToBoard(clone, m)
	return NewValidator(clone, chess.NoPosition, chess.NoCastling).IsKingInCheck(mover)
}

// IsKingInCheck reports whether the king of colour is attacked. It panics
// when colour has no king on the board.
func (v *Validator) IsKingInCheck(colour chess.Colour) bool {
	return v.isAttacked(v.board.King(colour), colour.Opposite())
}

// isAttacked reports whether any pseudo-legal move of by ends on sq.
// sq must hold a piece of the other colour: pawns only reach diagonals
// through captures, and pushes never land on an occupied square.
func (v *Validator) isAttacked(sq chess.Position, by chess.Colour) bool {
	av := v.attackValidator()
	for _, from := range v.board.Pieces(by) {
		for m := range av.PotentialMoves(from) {
			if m.To == sq {
				return true
			}
		}
	}
	return false
}
