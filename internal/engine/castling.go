package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var castleSides = []chess.CastleSide{chess.KingSide, chess.QueenSide}

// castlingMoves yields the castles available to the king on origin.
func (v *Validator) castlingMoves(origin chess.Position, colour chess.Colour, yield func(chess.Move) bool) bool {
	home, _ := chess.KingSquares(colour, chess.KingSide)
	if origin != home {
		return true
	}
	for _, side := range castleSides {
		if !v.canCastle(colour, side) {
			continue
		}
		_, to := chess.KingSquares(colour, side)
		if !yield(chess.Move{Kind: chess.Castle, From: origin, To: to, Side: side}) {
			return false
		}
	}
	return true
}

// canCastle reports whether colour may castle on side. The caller has
// already checked that the king stands on its home square. No square on
// the king's path, its starting square included, may be attacked.
func (v *Validator) canCastle(colour chess.Colour, side chess.CastleSide) bool {
	if !v.castling.Has(chess.CastlingRight(colour, side)) {
		return false
	}
	kingFrom, kingTo := chess.KingSquares(colour, side)
	rookFrom, _ := chess.RookSquares(colour, side)
	if v.board.Get(rookFrom) != (chess.Piece{Type: chess.Rook, Colour: colour}) {
		return false
	}
	if !v.emptyBetween(kingFrom, rookFrom) {
		return false
	}

	step := 1
	if kingTo.Col < kingFrom.Col {
		step = -1
	}
	for sq := kingFrom; ; sq, _ = sq.Offset(step, 0) {
		if v.kingAttackedOn(kingFrom, sq, colour) {
			return false
		}
		if sq == kingTo {
			return true
		}
	}
}

// emptyBetween reports whether every square strictly between a and b on
// the same rank is empty.
func (v *Validator) emptyBetween(a, b chess.Position) bool {
	lo, hi := a.Col, b.Col
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if !v.board.Get(chess.Position{Col: col, Rank: a.Rank}).IsEmpty() {
			return false
		}
	}
	return true
}

// kingAttackedOn relocates the king from home to sq on a cloned board and
// reports whether it is attacked there.
func (v *Validator) kingAttackedOn(home, sq chess.Position, colour chess.Colour) bool {
	board := v.board
	if sq != home {
		board = v.board.Clone()
		board.Move(home, sq)
	}
	return NewValidator(board, chess.NoPosition, chess.NoCastling).IsKingInCheck(colour)
}

// castlingMask holds, per square, the rights lost when a piece moves from
// or onto it.
var castlingMask = map[chess.Position]chess.CastlingRights{
	{Col: 'e', Rank: '1'}: chess.WhiteKingSide | chess.WhiteQueenSide,
	{Col: 'h', Rank: '1'}: chess.WhiteKingSide,
	{Col: 'a', Rank: '1'}: chess.WhiteQueenSide,
	{Col: 'e', Rank: '8'}: chess.BlackKingSide | chess.BlackQueenSide,
	{Col: 'h', Rank: '8'}: chess.BlackKingSide,
	{Col: 'a', Rank: '8'}: chess.BlackQueenSide,
}

// updateCastlingRights removes the rights invalidated by a move between
// from and to: a king or rook leaving its home square, or a rook captured
// on its corner.
func updateCastlingRights(rights chess.CastlingRights, from, to chess.Position) chess.CastlingRights {
	return rights &^ (castlingMask[from] | castlingMask[to])
}
