package chess

import "fmt"

// Position is a square on the board. Values built through NewPosition or
// ParsePosition are always on the board; the zero value is NoPosition.
type Position struct {
	Col  Col
	Rank Rank
}

// NoPosition denotes the absence of a square.
var NoPosition = Position{}

// NewPosition returns the square at col, rank. It panics when the
// coordinates are off the board.
func NewPosition(col Col, rank Rank) Position {
	if !onBoard(int(col), int(rank)) {
		panic(fmt.Sprintf("chess: position %c%c off the board", col, rank))
	}
	return Position{Col: col, Rank: rank}
}

// Sq is shorthand for ParsePosition that panics on bad input.
// It is intended for literals such as Sq("e4").
func Sq(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePosition parses algebraic square notation such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return NoPosition, fmt.Errorf("square %q: want two characters", s)
	}
	col, rank := Col(s[0]), Rank(s[1])
	if !onBoard(int(col), int(rank)) {
		return NoPosition, fmt.Errorf("square %q: off the board", s)
	}
	return Position{Col: col, Rank: rank}, nil
}

// IsValid reports whether p is a square on the board.
func (p Position) IsValid() bool {
	return onBoard(int(p.Col), int(p.Rank))
}

// Offset returns the square dc files and dr ranks away, and false when that
// square is off the board.
func (p Position) Offset(dc, dr int) (Position, bool) {
	c, r := int(p.Col)+dc, int(p.Rank)+dr
	if !onBoard(c, r) {
		return NoPosition, false
	}
	return Position{Col: Col(c), Rank: Rank(r)}, true
}

// String returns algebraic notation, or "-" for NoPosition.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return string([]byte{byte(p.Col), byte(p.Rank)})
}

// index returns the 0-63 square index, a1 = 0, h8 = 63.
func (p Position) index() int {
	return int(p.Rank-RankBase)*BoardSize + int(p.Col-ColBase)
}

func onBoard(col, rank int) bool {
	return col >= FirstCol && col <= LastCol && rank >= FirstRank && rank <= LastRank
}

// Index returns the 0-63 square index (a1 = 0, h8 = 63). It panics for
// NoPosition.
func (p Position) Index() int {
	if !p.IsValid() {
		panic(fmt.Sprintf("chess: index of invalid position %q", []byte{byte(p.Col), byte(p.Rank)}))
	}
	return p.index()
}
