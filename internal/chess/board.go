package chess

import "fmt"

// Placement is a fixed-size snapshot of the 64 squares, a1 first.
type Placement [BoardSize * BoardSize]Piece

// Board holds the physical placement of the pieces. It performs no
// legality checking; every method is purely mechanical.
type Board struct {
	squares Placement
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = Placement{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i, t := range backRank {
		col := Col(ColBase + i)
		b.Place(Position{col, '1'}, W(t))
		b.Place(Position{col, '2'}, W(Pawn))
		b.Place(Position{col, '7'}, B(Pawn))
		b.Place(Position{col, '8'}, B(t))
	}
}

// Get returns the piece on pos, or NoPiece when the square is empty.
func (b *Board) Get(pos Position) Piece {
	return b.squares[pos.Index()]
}

// Place puts piece on pos, replacing whatever was there.
func (b *Board) Place(pos Position, piece Piece) {
	b.squares[pos.Index()] = piece
}

// Remove empties pos.
func (b *Board) Remove(pos Position) {
	b.squares[pos.Index()] = NoPiece
}

// Move relocates the piece on from to to unconditionally. Anything on to is
// overwritten.
func (b *Board) Move(from, to Position) {
	piece := b.Get(from)
	b.Remove(from)
	b.Place(to, piece)
}

// Clone creates an independent copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Placement returns a copy of the squares.
func (b *Board) Placement() Placement {
	return b.squares
}

// SetPlacement replaces every square with p.
func (b *Board) SetPlacement(p Placement) {
	b.squares = p
}

// Pieces returns the squares occupied by colour, a1 to h8.
func (b *Board) Pieces(colour Colour) []Position {
	squares := make([]Position, 0, 16)
	for i, p := range b.squares {
		if !p.IsEmpty() && p.Colour == colour {
			squares = append(squares, squareAt(i))
		}
	}
	return squares
}

// King returns the square of colour's king. A missing king means the board
// is corrupted, so King panics.
func (b *Board) King(colour Colour) Position {
	king := Piece{Type: King, Colour: colour}
	for i, p := range b.squares {
		if p == king {
			return squareAt(i)
		}
	}
	panic(fmt.Sprintf("chess: no %s king on the board", colour))
}

// Count returns how many copies of piece stand on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	for _, p := range b.squares {
		if p == piece {
			n++
		}
	}
	return n
}

func squareAt(i int) Position {
	return Position{Col: Col(ColBase + i%BoardSize), Rank: Rank(RankBase + i/BoardSize)}
}
