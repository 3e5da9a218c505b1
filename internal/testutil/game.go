// Package testutil provides shared test utilities for the chessrules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Well-known perft positions.
const (
	// KiwipeteFEN exercises castling, en passant, promotion and pins.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// EndgameFEN is the rook-and-pawn endgame known as perft position 3.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// PromotionFEN has promotions available to both sides.
	PromotionFEN = "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"
)

// MustGameFromFEN creates a game from fen.
// It calls t.Fatal if the FEN is rejected.
func MustGameFromFEN(t testing.TB, fen string, opts ...engine.Option) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) failed: %v", fen, err)
	}
	return g
}

// PlayUCI plays moves given in long algebraic form on g.
func PlayUCI(g *engine.Game, moves ...string) error {
	return g.PlayUCI(moves...)
}

// MustPlay plays moves with PlayUCI.
// It calls t.Fatal on the first rejected move.
func MustPlay(t testing.TB, g *engine.Game, moves ...string) {
	t.Helper()
	if err := PlayUCI(g, moves...); err != nil {
		t.Fatalf("playing %v: %v", moves, err)
	}
}
