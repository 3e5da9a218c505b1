// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece kind.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) && p >= 0 {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) && p >= 0 {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter of either case to a piece type.
// Unknown letters map to Empty.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// IsEmpty reports whether p denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank the colour's king and rooks start on.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return FirstRank
	}
	return LastRank
}

// PawnStartRank returns the rank the colour's pawns start on.
func PawnStartRank(colour Colour) Rank {
	if colour == White {
		return FirstRank + 1
	}
	return LastRank - 1
}

// PromotionRank returns the rank on which the colour's pawns promote.
func PromotionRank(colour Colour) Rank {
	if colour == White {
		return LastRank
	}
	return FirstRank
}

// EnPassantRank returns the rank an en-passant target must lie on for
// pawns of the given colour to capture onto it.
func EnPassantRank(colour Colour) Rank {
	if colour == White {
		return LastRank - 2
	}
	return FirstRank + 2
}

// CastlingRights is a 4-bit flag set of the remaining castling options.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has reports whether every bit of r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r && r != 0
}

// String returns the FEN castling field, "-" when empty.
func (c CastlingRights) String() string {
	var s []byte
	if c&WhiteKingSide != 0 {
		s = append(s, 'K')
	}
	if c&WhiteQueenSide != 0 {
		s = append(s, 'Q')
	}
	if c&BlackKingSide != 0 {
		s = append(s, 'k')
	}
	if c&BlackQueenSide != 0 {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// CastleSide distinguishes short and long castling.
type CastleSide int

const (
	KingSide CastleSide = iota
	QueenSide
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	if s == KingSide {
		return "KingSide"
	}
	return "QueenSide"
}

// CastlingRight returns the rights bit guarding this side for colour.
func CastlingRight(colour Colour, side CastleSide) CastlingRights {
	switch {
	case colour == White && side == KingSide:
		return WhiteKingSide
	case colour == White:
		return WhiteQueenSide
	case side == KingSide:
		return BlackKingSide
	default:
		return BlackQueenSide
	}
}

// GameState is the state of the game state machine.
type GameState int

const (
	WhiteMove GameState = iota
	BlackMove
	WhitePromote
	BlackPromote
	WhiteWin
	BlackWin
	StaleMate
	DrawRepetition3
	DrawRepetition5
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	names := []string{
		"WhiteMove", "BlackMove", "WhitePromote", "BlackPromote",
		"WhiteWin", "BlackWin", "StaleMate", "DrawRepetition3", "DrawRepetition5",
	}
	if int(s) < len(names) && s >= 0 {
		return names[s]
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// AcceptsMove reports whether Move may be called in this state.
func (s GameState) AcceptsMove() bool {
	return s == WhiteMove || s == BlackMove
}

// AwaitsPromotion reports whether Promote may be called in this state.
func (s GameState) AwaitsPromotion() bool {
	return s == WhitePromote || s == BlackPromote
}

// IsTerminal reports whether the game is over.
func (s GameState) IsTerminal() bool {
	return !s.AcceptsMove() && !s.AwaitsPromotion()
}

// MoveState returns the Move state for colour.
func MoveState(colour Colour) GameState {
	if colour == White {
		return WhiteMove
	}
	return BlackMove
}

// PromoteState returns the Promote state for colour.
func PromoteState(colour Colour) GameState {
	if colour == White {
		return WhitePromote
	}
	return BlackPromote
}

// WinState returns the state in which colour has won.
func WinState(colour Colour) GameState {
	if colour == White {
		return WhiteWin
	}
	return BlackWin
}
