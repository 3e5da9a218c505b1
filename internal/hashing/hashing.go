// Package hashing provides placement fingerprints and repetition counting.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed keeps fingerprints stable across runs.
const zobristSeed = 0x1234567890ABCDEF

// pieceKeys holds one key per colour, piece type and square.
var pieceKeys [2][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for colour := range pieceKeys {
		for piece := chess.Pawn; piece <= chess.King; piece++ {
			for sq := range pieceKeys[colour][piece] {
				pieceKeys[colour][piece][sq] = rng.Uint64()
			}
		}
	}
}

// PlacementHash returns the Zobrist fingerprint of the piece placement only.
// Side to move, castling rights and en passant do not contribute.
func PlacementHash(board *chess.Board) uint64 {
	var h uint64
	placement := board.Placement()
	for sq, p := range placement {
		if p.IsEmpty() {
			continue
		}
		h ^= pieceKeys[p.Colour][p.Type][sq]
	}
	return h
}

// RepetitionTable is a multiset of placement fingerprints seen in a game.
type RepetitionTable struct {
	// counts maps a fingerprint to the number of times it was recorded
	counts map[uint64]int
	// maxCount is the highest value in counts
	maxCount int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[uint64]int),
	}
}

// Add records one occurrence of hash and returns its new count.
func (t *RepetitionTable) Add(hash uint64) int {
	t.counts[hash]++
	n := t.counts[hash]
	if n > t.maxCount {
		t.maxCount = n
	}
	return n
}

// AddBoard records the placement of board and returns its new count.
func (t *RepetitionTable) AddBoard(board *chess.Board) int {
	return t.Add(PlacementHash(board))
}

// CountBoard returns how often the placement of board has been recorded.
func (t *RepetitionTable) CountBoard(board *chess.Board) int {
	return t.Count(PlacementHash(board))
}

// Count returns how often hash has been recorded.
func (t *RepetitionTable) Count(hash uint64) int {
	return t.counts[hash]
}

// MaxCount returns the highest count of any fingerprint.
func (t *RepetitionTable) MaxCount() int {
	return t.maxCount
}

// Clone returns an independent copy.
func (t *RepetitionTable) Clone() *RepetitionTable {
	c := &RepetitionTable{
		counts:   make(map[uint64]int, len(t.counts)),
		maxCount: t.maxCount,
	}
	for h, n := range t.counts {
		c.counts[h] = n
	}
	return c
}
