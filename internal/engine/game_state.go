package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move plays the piece on from to to. It returns false, leaving the game
// untouched, when the move is not legal in the current state.
func (g *Game) Move(from, to chess.Position) bool {
	return g.TryMove(from, to) == nil
}

// TryMove is Move with the reason for a rejection. The returned error is a
// *errors.MoveError wrapping one of the package sentinels.
func (g *Game) TryMove(from, to chess.Position) error {
	if err := g.checkMoveRequest(from, to); err != nil {
		return g.reject(from, to, err)
	}

	mover := g.toMove
	m := g.validator().CanMove(from, to)
	if !m.IsValid() {
		return g.reject(from, to, errors.ErrIllegalMove)
	}

	saved := g.saveState()
	g.applyMove(m)
	if g.IsKingInCheck(mover) {
		g.restoreState(saved)
		return g.reject(from, to, errors.ErrIllegalMove)
	}

	if g.hasPawnOnPromotionRank(mover) {
		g.state = chess.PromoteState(mover)
		g.log.Debug().Str("square", to.String()).Str("side", mover.String()).Msg("promotion pending")
		return nil
	}
	g.finishTurn(mover)
	return nil
}

func (g *Game) checkMoveRequest(from, to chess.Position) error {
	switch {
	case g.state.AwaitsPromotion():
		return errors.ErrPromotionPending
	case !g.state.AcceptsMove():
		return errors.ErrGameOver
	case !from.IsValid() || !to.IsValid():
		return errors.ErrInvalidPosition
	}
	piece := g.board.Get(from)
	if piece.IsEmpty() {
		return errors.ErrEmptySquare
	}
	if piece.Colour != g.toMove {
		return errors.ErrWrongTurn
	}
	return nil
}

func (g *Game) reject(from, to chess.Position, err error) error {
	g.log.Debug().
		Str("from", from.String()).
		Str("to", to.String()).
		Str("state", g.state.String()).
		AnErr("reason", err).
		Msg("move rejected")
	return &errors.MoveError{Err: err, From: from.String(), To: to.String(), State: g.state.String()}
}

// Promote replaces the pawn awaiting promotion with a piece of kind t and
// resumes the game. The game is unchanged when an error is returned.
func (g *Game) Promote(t chess.PieceType) error {
	if !g.state.AwaitsPromotion() {
		return &errors.MoveError{Err: errors.ErrNotPromoting, State: g.state.String()}
	}
	switch t {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		return &errors.MoveError{Err: errors.ErrInvalidPromotion, State: g.state.String()}
	}

	side := g.toMove
	sq := g.promotionSquare(side)
	g.board.Place(sq, chess.Piece{Type: t, Colour: side})
	g.log.Debug().Str("square", sq.String()).Str("piece", t.String()).Msg("pawn promoted")
	g.finishTurn(side)
	return nil
}

// finishTurn records the placement reached by mover's completed move and
// decides the next state.
func (g *Game) finishTurn(mover chess.Colour) {
	opponent := mover.Opposite()
	g.toMove = opponent

	if g.seen.AddBoard(g.board) >= g.repetitionLimit {
		g.setState(g.drawState())
		return
	}
	g.setState(g.evaluateTurn(opponent))
}

// evaluateTurn returns the state for side about to move: a win for the
// other side when side is checkmated, StaleMate when side has no legal
// move while not in check, and side's Move state otherwise.
func (g *Game) evaluateTurn(side chess.Colour) chess.GameState {
	if g.hasLegalMoves(side) {
		return chess.MoveState(side)
	}
	if g.IsKingInCheck(side) {
		return chess.WinState(side.Opposite())
	}
	return chess.StaleMate
}

func (g *Game) setState(s chess.GameState) {
	g.state = s
	if s.IsTerminal() {
		g.log.Info().
			Str("state", s.String()).
			Int("full_moves", g.fullMoves).
			Int("repetitions", g.seen.MaxCount()).
			Msg("game over")
	}
}

func (g *Game) hasPawnOnPromotionRank(colour chess.Colour) bool {
	return g.promotionSquare(colour).IsValid()
}

// promotionSquare returns the square of colour's pawn on its last rank,
// or chess.NoPosition.
func (g *Game) promotionSquare(colour chess.Colour) chess.Position {
	pawn := chess.Piece{Type: chess.Pawn, Colour: colour}
	rank := chess.PromotionRank(colour)
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		sq := chess.Position{Col: col, Rank: rank}
		if g.board.Get(sq) == pawn {
			return sq
		}
	}
	return chess.NoPosition
}
