package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// applyToBoard performs the piece relocation of m and nothing else.
// Legality and derived state are the caller's concern.
func applyToBoard(board *chess.Board, m chess.Move) {
	switch m.Kind {
	case chess.CaptureEnPassant:
		board.Remove(enPassantVictim(m))
		board.Move(m.From, m.To)
	case chess.Castle:
		colour := board.Get(m.From).Colour
		rookFrom, rookTo := chess.RookSquares(colour, m.Side)
		board.Move(m.From, m.To)
		board.Move(rookFrom, rookTo)
	default:
		board.Move(m.From, m.To)
	}
}

// applyMove plays m on the game: it relocates the pieces and updates
// castling rights, the en-passant target and both move counters.
func (g *Game) applyMove(m chess.Move) {
	mover := g.board.Get(m.From)

	applyToBoard(g.board, m)

	g.castling = updateCastlingRights(g.castling, m.From, m.To)

	g.enPassant = chess.NoPosition
	if m.Kind == chess.PawnPush {
		g.enPassant = chess.Position{Col: m.From.Col, Rank: (m.From.Rank + m.To.Rank) / 2}
	}

	if mover.Type == chess.Pawn || m.IsCapture() {
		g.halfMoves = 0
	} else {
		g.halfMoves++
	}
	if mover.Colour == chess.Black {
		g.fullMoves++
	}
}

// snapshot is the mutable game state saved before a move so the move can
// be rolled back.
type snapshot struct {
	placement chess.Placement
	castling  chess.CastlingRights
	enPassant chess.Position
	halfMoves int
	fullMoves int
}

func (g *Game) saveState() snapshot {
	return snapshot{
		placement: g.board.Placement(),
		castling:  g.castling,
		enPassant: g.enPassant,
		halfMoves: g.halfMoves,
		fullMoves: g.fullMoves,
	}
}

func (g *Game) restoreState(s snapshot) {
	g.board.SetPlacement(s.placement)
	g.castling = s.castling
	g.enPassant = s.enPassant
	g.halfMoves = s.halfMoves
	g.fullMoves = s.fullMoves
}
