package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N vs K+N", "4kn2/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, tt.fen)

			got := HasInsufficientMaterial(g.Board())
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLightSquare(t *testing.T) {
	tests := []struct {
		sq   string
		want bool
	}{
		{"a1", false},
		{"h1", true},
		{"a8", true},
		{"h8", false},
		{"f8", false},
		{"c1", false},
		{"d1", true},
	}
	for _, tt := range tests {
		if got := isLightSquare(chess.Sq(tt.sq)); got != tt.want {
			t.Errorf("isLightSquare(%s) = %v, want %v", tt.sq, got, tt.want)
		}
	}
}
