package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ToFEN renders the game as a FEN string. While a promotion is pending the
// side field names the promoting side and the pawn still stands on its last
// rank, so NewGameFromFEN rejects that string. Every other state round-trips.
func ToFEN(g *Game) string {
	var sb strings.Builder

	writePiecePositions(&sb, g.board)

	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(g.castling.String())

	sb.WriteByte(' ')
	sb.WriteString(g.enPassant.String())

	fmt.Fprintf(&sb, " %d %d", g.halfMoves, g.fullMoves)

	return sb.String()
}

// writePiecePositions writes the piece placement field, rank 8 first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		empty := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(chess.Position{Col: col, Rank: rank})
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// NewGameFromFEN creates a game from a FEN string. The half-move and
// full-move fields may be omitted and default to 0 and 1. The game state
// is evaluated immediately, so a position without legal moves starts out
// finished.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fmt.Errorf("want 4 to 6 fields, got %d: %w", len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := validatePlacement(board); err != nil {
		return nil, err
	}

	g := newGame(board, opts...)

	if err := g.parseSideToMove(parts[1]); err != nil {
		return nil, err
	}
	if err := g.parseCastlingRights(parts[2]); err != nil {
		return nil, err
	}
	if err := g.parseEnPassant(parts[3]); err != nil {
		return nil, err
	}
	if err := g.parseClocks(parts[4:]); err != nil {
		return nil, err
	}

	if g.IsKingInCheck(g.toMove.Opposite()) {
		return nil, fmt.Errorf("%s king in check with %s to move: %w",
			g.toMove.Opposite(), g.toMove, errors.ErrInvalidFEN)
	}

	g.seen.AddBoard(g.board)
	g.setState(g.evaluateTurn(g.toMove))
	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := 0
		for _, c := range []byte(row) {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			t := chess.PieceTypeFromLetter(c)
			if t == chess.Empty {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Place(chess.Position{Col: chess.Col(chess.ColBase + col), Rank: rank},
				chess.Piece{Type: t, Colour: colour})
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %c has %d files: %w", rank, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// validatePlacement enforces one king per colour and no pawns on the
// first or last rank.
func validatePlacement(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.Piece{Type: chess.King, Colour: colour}); n != 1 {
			return fmt.Errorf("%d %s kings: %w", n, colour, errors.ErrInvalidFEN)
		}
	}
	for _, rank := range []chess.Rank{chess.FirstRank, chess.LastRank} {
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			sq := chess.Position{Col: col, Rank: rank}
			if board.Get(sq).Type == chess.Pawn {
				return fmt.Errorf("pawn on %s: %w", sq, errors.ErrInvalidFEN)
			}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func (g *Game) parseSideToMove(field string) error {
	switch field {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q: %w", field, errors.ErrInvalidFEN)
	}
	g.state = chess.MoveState(g.toMove)
	return nil
}

// parseCastlingRights parses the castling availability field. Rights whose
// king or rook is not on its home square are dropped.
func (g *Game) parseCastlingRights(field string) error {
	g.castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for _, c := range []byte(field) {
		var right chess.CastlingRights
		switch c {
		case 'K':
			right = chess.WhiteKingSide
		case 'Q':
			right = chess.WhiteQueenSide
		case 'k':
			right = chess.BlackKingSide
		case 'q':
			right = chess.BlackQueenSide
		default:
			return fmt.Errorf("invalid castling character %q: %w", c, errors.ErrInvalidFEN)
		}
		if g.castling.Has(right) {
			return fmt.Errorf("repeated castling character %q: %w", c, errors.ErrInvalidFEN)
		}
		g.castling |= right
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range castleSides {
			kingFrom, _ := chess.KingSquares(colour, side)
			rookFrom, _ := chess.RookSquares(colour, side)
			if g.board.Get(kingFrom) != (chess.Piece{Type: chess.King, Colour: colour}) ||
				g.board.Get(rookFrom) != (chess.Piece{Type: chess.Rook, Colour: colour}) {
				g.castling &^= chess.CastlingRight(colour, side)
			}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// must lie on the rank the side to move captures onto.
func (g *Game) parseEnPassant(field string) error {
	g.enPassant = chess.NoPosition
	if field == "-" {
		return nil
	}
	sq, err := chess.ParsePosition(field)
	if err != nil {
		return fmt.Errorf("en passant %v: %w", err, errors.ErrInvalidFEN)
	}
	if sq.Rank != chess.EnPassantRank(g.toMove) {
		return fmt.Errorf("en passant square %s with %s to move: %w", sq, g.toMove, errors.ErrInvalidFEN)
	}
	g.enPassant = sq
	return nil
}

// parseClocks parses the optional half-move clock and full-move number.
func (g *Game) parseClocks(fields []string) error {
	g.halfMoves, g.fullMoves = 0, 1
	if len(fields) > 0 {
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid half-move clock %q: %w", fields[0], errors.ErrInvalidFEN)
		}
		g.halfMoves = n
	}
	if len(fields) > 1 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid full-move number %q: %w", fields[1], errors.ErrInvalidFEN)
		}
		g.fullMoves = n
	}
	return nil
}
