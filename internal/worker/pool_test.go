package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Move: item.Move, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Move: item.Move, Index: item.Index, Nodes: 1}
	}
}

// replyCountFunc plays the item's move on its game and counts the replies.
func replyCountFunc(item WorkItem) ProcessResult {
	g := item.Game
	if !g.Move(item.Move.From, item.Move.To) {
		return ProcessResult{Move: item.Move, Index: item.Index}
	}
	n := len(g.Moves(g.SideToMove()))
	return ProcessResult{Move: item.Move, Index: item.Index, Nodes: uint64(n)}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	// Should have processed fewer than total due to early stop
	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestNewPool tests the functional options constructor.
func TestNewPool(t *testing.T) {
	tests := []struct {
		name       string
		opts       []PoolOption
		wantWorker int
		wantBuffer int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative workers ignored", []PoolOption{WithWorkers(-1)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorker {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorker)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestPoolRunOrdersResults tests that Run returns results by index.
func TestPoolRunOrdersResults(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	const numItems = 10
	items := make([]WorkItem, numItems)
	for i := range items {
		items[i] = WorkItem{Index: i}
	}

	results := NewPool(variableDelayFunc, WithWorkers(4)).Run(items)
	if len(results) != numItems {
		t.Fatalf("received %d results; want %d", len(results), numItems)
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d", i, r.Index)
		}
	}
}

// TestPoolRunGameClones expands the 20 opening moves, each on its own clone.
func TestPoolRunGameClones(t *testing.T) {
	root := engine.NewGame()
	moves := root.Moves(chess.White)

	items := make([]WorkItem, len(moves))
	for i, m := range moves {
		items[i] = WorkItem{Game: root.Clone(), Move: m, Depth: 1, Index: i}
	}

	results := NewPool(replyCountFunc, WithWorkers(4)).Run(items)

	var total uint64
	for i, r := range results {
		if r.Move != moves[i] {
			t.Errorf("results[%d].Move = %v; want %v", i, r.Move, moves[i])
		}
		total += r.Nodes
	}
	if total != 400 {
		t.Errorf("total replies = %d; want 400", total)
	}
	if engine.ToFEN(root) != engine.InitialFEN {
		t.Errorf("root game changed: %s", engine.ToFEN(root))
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}
