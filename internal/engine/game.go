package engine

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Default and alternative repetition thresholds.
const (
	RepetitionThreefold = 3
	RepetitionFivefold  = 5
)

// Game is a single game of chess driven through Move and Promote. A Game
// has one owner; it does no locking of its own.
type Game struct {
	board     *chess.Board
	state     chess.GameState
	toMove    chess.Colour
	castling  chess.CastlingRights
	enPassant chess.Position
	halfMoves int
	fullMoves int

	seen            *hashing.RepetitionTable
	repetitionLimit int

	log zerolog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for rejected moves and game results.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

// WithRepetitionThreshold sets how many occurrences of one placement end
// the game. Only 3 and 5 are recognised; other values are ignored.
func WithRepetitionThreshold(n int) Option {
	return func(g *Game) {
		if n == RepetitionThreefold || n == RepetitionFivefold {
			g.repetitionLimit = n
		}
	}
}

// NewGame starts a game from the standard initial position with White to
// move.
func NewGame(opts ...Option) *Game {
	g := newGame(chess.NewInitialBoard(), opts...)
	g.castling = chess.AllCastling
	g.seen.AddBoard(g.board)
	return g
}

func newGame(board *chess.Board, opts ...Option) *Game {
	g := &Game{
		board:           board,
		state:           chess.WhiteMove,
		toMove:          chess.White,
		enPassant:       chess.NoPosition,
		fullMoves:       1,
		seen:            hashing.NewRepetitionTable(),
		repetitionLimit: RepetitionThreefold,
		log:             zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Clone returns an independent copy of the game. The logger is shared.
func (g *Game) Clone() *Game {
	c := *g
	c.board = g.board.Clone()
	c.seen = g.seen.Clone()
	return &c
}

// State returns the current game state.
func (g *Game) State() chess.GameState { return g.state }

// Board returns the board. Callers must treat it as read-only.
func (g *Game) Board() *chess.Board { return g.board }

// SideToMove returns the side whose turn it is, or the promoting side
// while a promotion is pending.
func (g *Game) SideToMove() chess.Colour { return g.toMove }

// CastlingRights returns the remaining castling rights.
func (g *Game) CastlingRights() chess.CastlingRights { return g.castling }

// EnPassantTarget returns the square skipped by the last two-square pawn
// advance, or chess.NoPosition.
func (g *Game) EnPassantTarget() chess.Position { return g.enPassant }

// HalfMoves returns the number of half-moves since the last pawn move or
// capture.
func (g *Game) HalfMoves() int { return g.halfMoves }

// FullMoves returns the full-move number, starting at 1 and incremented
// after each Black move.
func (g *Game) FullMoves() int { return g.fullMoves }

// RepetitionCount returns the highest number of times any placement has
// occurred in this game.
func (g *Game) RepetitionCount() int { return g.seen.MaxCount() }

// IsKingInCheck reports whether colour's king is attacked.
func (g *Game) IsKingInCheck(colour chess.Colour) bool {
	return g.validator().IsKingInCheck(colour)
}

func (g *Game) validator() *Validator {
	return NewValidator(g.board, g.enPassant, g.castling)
}

// drawState returns the repetition draw matching the configured threshold.
func (g *Game) drawState() chess.GameState {
	if g.repetitionLimit == RepetitionFivefold {
		return chess.DrawRepetition5
	}
	return chess.DrawRepetition3
}
