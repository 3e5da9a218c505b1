package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PlayUCI plays moves given in long algebraic form ("e2e4", "e7e8q").
// A fifth character resolves the promotion the move triggers. Moves before
// the first rejected one stay played.
func (g *Game) PlayUCI(moves ...string) error {
	for _, mv := range moves {
		if len(mv) != 4 && len(mv) != 5 {
			return fmt.Errorf("move %q: want 4 or 5 characters: %w", mv, errors.ErrInvalidPosition)
		}
		from, err := chess.ParsePosition(mv[0:2])
		if err != nil {
			return fmt.Errorf("move %q: %w", mv, err)
		}
		to, err := chess.ParsePosition(mv[2:4])
		if err != nil {
			return fmt.Errorf("move %q: %w", mv, err)
		}
		if err := g.TryMove(from, to); err != nil {
			return err
		}
		if len(mv) == 5 {
			if err := g.Promote(chess.PieceTypeFromLetter(mv[4])); err != nil {
				return fmt.Errorf("move %q: %w", mv, err)
			}
		}
	}
	return nil
}
