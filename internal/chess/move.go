package chess

// MoveKind categorizes the moves produced by move generation.
type MoveKind int

const (
	Invalid MoveKind = iota
	Quiet            // A plain relocation ("Move")
	Capture
	CaptureEnPassant
	PawnPush // Two-square pawn advance; arms en passant
	Castle
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{"Invalid", "Move", "Capture", "CaptureEnPassant", "PawnPush", "Castle"}
	if int(k) < len(names) && k >= 0 {
		return names[k]
	}
	return "Unknown"
}

// Move is a single pseudo-legal or legal move.
type Move struct {
	Kind MoveKind
	From Position
	To   Position

	// Side is only meaningful when Kind is Castle.
	Side CastleSide
}

// InvalidMove is returned when no move matches a request.
var InvalidMove = Move{Kind: Invalid}

// IsValid reports whether m is anything other than Invalid.
func (m Move) IsValid() bool {
	return m.Kind != Invalid
}

// IsCapture reports whether m removes an opposing piece.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == CaptureEnPassant
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// RookSquares returns the rook origin and destination for a castle by colour.
func RookSquares(colour Colour, side CastleSide) (from, to Position) {
	rank := HomeRank(colour)
	if side == KingSide {
		return Position{Col: 'h', Rank: rank}, Position{Col: 'f', Rank: rank}
	}
	return Position{Col: 'a', Rank: rank}, Position{Col: 'd', Rank: rank}
}

// KingSquares returns the king origin and destination for a castle by colour.
func KingSquares(colour Colour, side CastleSide) (from, to Position) {
	rank := HomeRank(colour)
	from = Position{Col: 'e', Rank: rank}
	if side == KingSide {
		return from, Position{Col: 'g', Rank: rank}
	}
	return from, Position{Col: 'c', Rank: rank}
}
