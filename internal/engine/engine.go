// Package engine implements the computer player: root-parallelized
// alpha-beta minimax search over a Board, ordered by the analyzer's move
// priority classes and scored by the eval package.
package engine

import (
	"log"
	"runtime"
	"sync/atomic"

	"github.com/samuelhe52/Gomoku/internal/board"
)

// DefaultMaxDepth is the fixed search depth used when a caller doesn't pick
// one (spec §6: "Engine::new(engine_color, max_depth=7)"). Search depth is
// always fixed — there is no iterative deepening or time budget (spec §1
// Non-goals).
const DefaultMaxDepth = 7

// Engine is the computer player: it owns its color, search depth,
// cancellation flag and worker pool. Construct one per game rather than
// relying on process-wide state (spec §9's "Global mutable engine state"
// redesign note).
//
// An Engine's exported methods are safe to call from any single goroutine
// at a time; GetBestMove itself fans out internally but does not expose its
// Board argument to concurrent mutation (spec §3 Lifecycle) — the caller's
// Board is never mutated, only cloned.
type Engine struct {
	color     board.Cell
	maxDepth  int
	cancelled atomic.Bool

	pool      *pool
	chunkSize int
}

// NewEngine constructs an Engine playing color, searching to maxDepth (pass
// 0 for DefaultMaxDepth), with a worker pool sized at
// min(runtime.GOMAXPROCS(0), MaxRootChunk) — capped, per spec §4.4, "to
// ensure pruning efficiency" of chunked root parallelism.
func NewEngine(color board.Cell, maxDepth int) *Engine {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > MaxRootChunk {
		workers = MaxRootChunk
	}
	log.Printf("engine: starting with %d root workers (GOMAXPROCS=%d)", workers, runtime.GOMAXPROCS(0))

	return &Engine{
		color:     color,
		maxDepth:  maxDepth,
		pool:      newPool(workers),
		chunkSize: workers,
	}
}

// Color returns the color the engine plays.
func (e *Engine) Color() board.Cell { return e.color }

// SetColor changes the color the engine plays. Do not call while a search
// on this Engine is in flight.
func (e *Engine) SetColor(c board.Cell) { e.color = c }

// MaxDepth returns the fixed search depth.
func (e *Engine) MaxDepth() int { return e.maxDepth }

// SetMaxDepth changes the fixed search depth. Do not call while a search on
// this Engine is in flight.
func (e *Engine) SetMaxDepth(d int) {
	if d <= 0 {
		d = DefaultMaxDepth
	}
	e.maxDepth = d
}

// RequestCancel asks any in-flight or about-to-start search on this Engine
// to abandon its work and return board.Invalid promptly. Cooperative only:
// it is polled at minimax's recursion entry and before every root chunk
// (spec §5), never preemptive.
func (e *Engine) RequestCancel() { e.cancelled.Store(true) }

// ClearCancel resets the cancellation flag so the next GetBestMove call
// runs normally. GetBestMove does not clear it automatically — calling
// RequestCancel before GetBestMove starts must make that call return the
// sentinel without exploring any candidate (spec's P7), so the flag can
// only be cleared explicitly.
func (e *Engine) ClearCancel() { e.cancelled.Store(false) }

// GetBestMove blocks until it has chosen a move for the engine's color on
// b, or until cancelled. It never mutates b: all search happens on cloned
// boards. Returns board.Invalid if cancelled before starting, or if b is
// non-empty but has no candidate moves (full board).
func (e *Engine) GetBestMove(b *board.Board) board.Position {
	if e.cancelled.Load() {
		return board.Invalid
	}

	if b.IsBoardEmpty() {
		return board.Position{Row: board.Size / 2, Col: board.Size / 2}
	}

	moves := orderedCandidates(b, e.color)
	if len(moves) == 0 {
		return board.Invalid
	}

	best, _ := e.rootSearch(b, moves)
	return best
}
