package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// direction is a (file, rank) delta.
type direction struct {
	dc, dr int
}

var (
	knightSteps = []direction{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingSteps = []direction{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	straightDirections = []direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirections = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// stepMoves yields single-step moves to each delta that stays on the board
// and is not occupied by colour. It returns false once yield has asked to
// stop.
func (v *Validator) stepMoves(origin chess.Position, colour chess.Colour, steps []direction, yield func(chess.Move) bool) bool {
	for _, d := range steps {
		to, ok := origin.Offset(d.dc, d.dr)
		if !ok {
			continue
		}
		target := v.board.Get(to)
		kind := chess.Quiet
		if !target.IsEmpty() {
			if target.Colour == colour {
				continue
			}
			kind = chess.Capture
		}
		if !yield(chess.Move{Kind: kind, From: origin, To: to}) {
			return false
		}
	}
	return true
}

// slidingMoves walks each direction until the edge or the first occupied
// square, which is included only when it holds an opposing piece.
func (v *Validator) slidingMoves(origin chess.Position, colour chess.Colour, dirs []direction, yield func(chess.Move) bool) bool {
	for _, d := range dirs {
		to := origin
		for {
			var ok bool
			if to, ok = to.Offset(d.dc, d.dr); !ok {
				break
			}
			target := v.board.Get(to)
			if target.IsEmpty() {
				if !yield(chess.Move{Kind: chess.Quiet, From: origin, To: to}) {
					return false
				}
				continue
			}
			if target.Colour != colour {
				if !yield(chess.Move{Kind: chess.Capture, From: origin, To: to}) {
					return false
				}
			}
			break
		}
	}
	return true
}
