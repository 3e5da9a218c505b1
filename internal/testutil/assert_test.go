package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	cerrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// recorder captures failures instead of failing the running test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertHelpers(t *testing.T) {
	moveErr := &cerrors.MoveError{Err: cerrors.ErrWrongTurn, From: "e7", To: "e5"}

	tests := []struct {
		name   string
		assert func(tb testing.TB)
		fails  bool
	}{
		{"equal pieces", func(tb testing.TB) { AssertEqual(tb, chess.W(chess.Rook), chess.W(chess.Rook)) }, false},
		{"different pieces", func(tb testing.TB) { AssertEqual(tb, chess.W(chess.Rook), chess.B(chess.Rook)) }, true},
		{"equal moves", func(tb testing.TB) {
			AssertEqual(tb, []chess.Move{{Kind: chess.PawnPush, From: chess.Sq("e2"), To: chess.Sq("e4")}},
				[]chess.Move{{Kind: chess.PawnPush, From: chess.Sq("e2"), To: chess.Sq("e4")}})
		}, false},
		{"no error", func(tb testing.TB) { AssertNoError(tb, nil) }, false},
		{"unexpected error", func(tb testing.TB) { AssertNoError(tb, moveErr) }, true},
		{"expected error", func(tb testing.TB) { AssertError(tb, moveErr) }, false},
		{"missing error", func(tb testing.TB) { AssertError(tb, nil) }, true},
		{"wrapped sentinel", func(tb testing.TB) { AssertErrorIs(tb, moveErr, cerrors.ErrWrongTurn) }, false},
		{"other sentinel", func(tb testing.TB) { AssertErrorIs(tb, moveErr, cerrors.ErrIllegalMove) }, true},
		{"contains", func(tb testing.TB) { AssertContains(tb, moveErr.Error(), "e7e5") }, false},
		{"does not contain", func(tb testing.TB) { AssertContains(tb, moveErr.Error(), "e2e4") }, true},
		{"not contains", func(tb testing.TB) { AssertNotContains(tb, "w KQkq - 0 1", "e3") }, false},
		{"unwanted substring", func(tb testing.TB) { AssertNotContains(tb, "b KQkq e3 0 1", "e3") }, true},
		{"true", func(tb testing.TB) { AssertTrue(tb, chess.WhiteMove.AcceptsMove()) }, false},
		{"not true", func(tb testing.TB) { AssertTrue(tb, chess.StaleMate.AcceptsMove()) }, true},
		{"false", func(tb testing.TB) { AssertFalse(tb, chess.WhiteMove.IsTerminal()) }, false},
		{"not false", func(tb testing.TB) { AssertFalse(tb, chess.BlackWin.IsTerminal()) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.assert(r)
			if got := len(r.failures) > 0; got != tt.fails {
				t.Errorf("failed = %v, want %v (failures: %q)", got, tt.fails, r.failures)
			}
		})
	}
}

func TestAssertHelpers_MessagePrefix(t *testing.T) {
	r := &recorder{TB: t}
	AssertEqual(r, 19, 20, "perft(%d) of %s", 1, "start")
	if len(r.failures) != 1 {
		t.Fatalf("failures = %q, want one", r.failures)
	}
	AssertContains(t, r.failures[0], "perft(1) of start: mismatch (-want +got)")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"kiwipete"}, "kiwipete"},
		{"format string", []interface{}{"depth %d", 3}, "depth 3"},
		{"non-string", []interface{}{chess.White}, "White"},
		{"non-string with args", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertEqual(t, formatMessage(tt.args...), tt.want)
		})
	}
}
