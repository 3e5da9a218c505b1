// Package worker provides a worker pool that expands root moves of a game
// in parallel.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is one root move to expand. Game is owned by the item: it is a
// clone nobody else touches while the item is processed.
type WorkItem struct {
	Game  *engine.Game
	Move  chess.Move
	Depth int
	Index int // Original index for ordering results
}

// ProcessResult is the outcome of expanding a WorkItem.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of goroutines over a shared work channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; other settings
// default to 1 worker and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once the last worker returns.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, feeds it items and returns every result ordered by
// Index. The pool cannot be reused afterwards.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
