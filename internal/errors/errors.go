// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptySquare indicates a move requested from an empty square.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrWrongTurn indicates a move of a piece that does not belong to the side to move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrGameOver indicates a request made after the game reached a terminal state.
	ErrGameOver = errors.New("game is over")

	// ErrPromotionPending indicates a move requested while a promotion awaits resolution.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNotPromoting indicates a promotion requested when no pawn awaits one.
	ErrNotPromoting = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion to a pawn, king or empty piece.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInvalidPosition indicates a malformed square name.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with the context of a rejected move request:
// the squares involved and the game state at the time.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	From  string // Origin square (if known)
	To    string // Destination square (if known)
	State string // Game state when the move was requested (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s%s", e.From, e.To))
	}
	if e.State != "" {
		parts = append(parts, fmt.Sprintf("state %s", e.State))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
