package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	cerrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func testConfig(out *bytes.Buffer) *config.ConfigBuilder {
	return config.NewConfigBuilder().
		WithOutput(out).
		WithLogWriter(&bytes.Buffer{})
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreString(fenFlag, "8/8/8/8/8/8/8/K6k w - - 0 1")()
	defer saveRestoreString(movesFlag, " a1a2  h1h2 ")()
	defer saveRestoreInt(depthFlag, 5)()
	defer saveRestoreInt(workersFlag, 4)()
	defer saveRestoreBool(divideFlag, true)()
	defer saveRestoreBool(eachDepth, true)()
	defer saveRestoreInt(repetitionFlag, 5)()
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreBool(jsonLogs, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Perft.FEN != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("FEN = %q", cfg.Perft.FEN)
	}
	if strings.Join(cfg.Perft.Moves, ",") != "a1a2,h1h2" {
		t.Errorf("Moves = %q", cfg.Perft.Moves)
	}
	if cfg.Perft.Depth != 5 || cfg.Perft.Workers != 4 || !cfg.Perft.Divide || !cfg.Perft.EachDepth {
		t.Errorf("Perft = %+v", cfg.Perft)
	}
	if cfg.Game.RepetitionThreshold != 5 {
		t.Errorf("RepetitionThreshold = %d; want 5", cfg.Game.RepetitionThreshold)
	}
	if !cfg.JSONOutput || cfg.Log.Level != "debug" || cfg.Log.Console {
		t.Errorf("output flags not applied: json=%v level=%q console=%v",
			cfg.JSONOutput, cfg.Log.Level, cfg.Log.Console)
	}
}

func TestApplyPositionFlags_DefaultFEN(t *testing.T) {
	defer saveRestoreString(fenFlag, "")()
	defer saveRestoreString(movesFlag, "")()

	cfg := config.NewConfig()
	want := cfg.Perft.FEN
	applyPositionFlags(cfg)

	if cfg.Perft.FEN != want {
		t.Errorf("FEN = %q; want default %q", cfg.Perft.FEN, want)
	}
	if len(cfg.Perft.Moves) != 0 {
		t.Errorf("Moves = %q; want none", cfg.Perft.Moves)
	}
}

func TestRun_Text(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithDepth(2).WithDivide(true).Build()

	if err := run(cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "e2e4: 20\n") {
		t.Errorf("missing e2e4 line:\n%s", got)
	}
	if !strings.HasSuffix(got, "Nodes searched (depth 2): 400\n") {
		t.Errorf("missing total:\n%s", got)
	}
}

func TestRun_JSONAfterMoves(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).
		WithMoves("e2e4", "e7e5").
		WithDepth(1).
		WithWorkers(3).
		WithJSONOutput(true).
		Build()

	if err := run(cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var r output.Report
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if r.Nodes != 29 {
		t.Errorf("Nodes = %d; want 29", r.Nodes)
	}
	if r.FEN != "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2" {
		t.Errorf("FEN = %q", r.FEN)
	}
}

func TestRun_EachDepthJSON(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).
		WithDepth(3).
		WithEachDepth(true).
		WithJSONOutput(true).
		Build()

	if err := run(cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var batch output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &batch); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	want := []uint64{20, 400, 8902}
	if len(batch.Reports) != len(want) {
		t.Fatalf("got %d reports; want %d", len(batch.Reports), len(want))
	}
	for i, r := range batch.Reports {
		if r.Depth != i+1 || r.Nodes != want[i] {
			t.Errorf("reports[%d] = depth %d nodes %d; want depth %d nodes %d",
				i, r.Depth, r.Nodes, i+1, want[i])
		}
	}
}

func TestRun_EachDepthText(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithDepth(2).WithEachDepth(true).Build()

	if err := run(cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	testutil.AssertContains(t, got, "Nodes searched (depth 1): 20\n")
	testutil.AssertContains(t, got, "Nodes searched (depth 2): 400\n")
	testutil.AssertNotContains(t, got, "\"reports\"")
}

func TestNewReportWriter(t *testing.T) {
	tests := []struct {
		name        string
		json        bool
		reports     int
		wantPrefix  string
		wantPending bool // nothing written before Close
	}{
		{"text", false, 1, "rnbqkbnr/", false},
		{"text for several depths", false, 3, "rnbqkbnr/", false},
		{"single JSON", true, 1, "{\n  \"fen\"", false},
		{"batched JSON", true, 3, "{\n  \"reports\"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg := config.NewConfigBuilder().WithJSONOutput(tt.json).WithOutput(&out).Build()
			w := newReportWriter(cfg, tt.reports)

			r := &output.Report{FEN: cfg.Perft.FEN, State: "WhiteMove", Depth: 1, Nodes: 20}
			testutil.AssertNoError(t, w.WriteReport(r))
			testutil.AssertEqual(t, out.Len() == 0, tt.wantPending)

			testutil.AssertNoError(t, w.Close())
			if !strings.HasPrefix(out.String(), tt.wantPrefix) {
				t.Errorf("output = %q; want prefix %q", out.String(), tt.wantPrefix)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.ConfigBuilder
		wantErr error
	}{
		{"bad depth", config.NewConfigBuilder().WithDepth(0), cerrors.ErrInvalidConfig},
		{"bad FEN", config.NewConfigBuilder().WithFEN("8/8/8 w - - 0 1"), cerrors.ErrInvalidFEN},
		{"illegal move", config.NewConfigBuilder().WithMoves("e2e5"), cerrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg := tt.cfg.WithOutput(&out).WithLogWriter(&bytes.Buffer{}).Build()
			err := run(cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("run() error = %v; want %v", err, tt.wantErr)
			}
			if out.Len() != 0 {
				t.Errorf("output written on error: %q", out.String())
			}
		})
	}
}
