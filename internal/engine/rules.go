package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DrawStatus reports the draw conditions that hold for a game. It is
// informational; only repetition ends a game through the state machine.
type DrawStatus struct {
	// FiftyMoveClaimable is true once 50 moves (100 half-moves) have been
	// made without a pawn move or capture.
	FiftyMoveClaimable bool

	// SeventyFiveMoveRule is true once 75 moves (150 half-moves) have been
	// made without a pawn move or capture.
	SeventyFiveMoveRule bool

	// InsufficientMaterial is true if neither side can deliver mate.
	InsufficientMaterial bool

	// Repetitions is the highest number of times any placement occurred.
	Repetitions int

	// CurrentRepetitions is the number of times the current placement
	// occurred, this occurrence included.
	CurrentRepetitions int
}

// DrawStatus analyzes the current position for draw conditions.
func (g *Game) DrawStatus() DrawStatus {
	return DrawStatus{
		FiftyMoveClaimable:   g.halfMoves >= 100,
		SeventyFiveMoveRule:  g.halfMoves >= 150,
		InsufficientMaterial: HasInsufficientMaterial(g.board),
		Repetitions:          g.seen.MaxCount(),
		CurrentRepetitions:   g.seen.CountBoard(g.board),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, sq := range board.Pieces(colour) {
			pieceType := board.Get(sq).Type

			// Kings don't count for material
			if pieceType == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
				return false
			}

			if colour == chess.White {
				whitePieces = append(whitePieces, pieceType)
				if pieceType == chess.Bishop {
					whiteBishopOnLight = isLightSquare(sq)
				}
			} else {
				blackPieces = append(blackPieces, pieceType)
				if pieceType == chess.Bishop {
					blackBishopOnLight = isLightSquare(sq)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Position) bool {
	colNum := int(sq.Col - chess.FirstCol)
	rankNum := int(sq.Rank - chess.FirstRank)
	return (colNum+rankNum)%2 == 1
}
