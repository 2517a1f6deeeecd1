package engine

import (
	"sync"

	"github.com/samuelhe52/Gomoku/internal/board"
)

// MaxRootChunk caps a root chunk's size regardless of how many CPUs are
// available — matching the original's std::min(idealThreadCount, 12)
// (spec §4.4), chosen to keep intra-chunk (unprunable) parallelism from
// growing unbounded on very wide machines.
const MaxRootChunk = 12

// rootResult is one root move's searched score, paired with the move it
// came from so a chunk's winner can be recovered after the goroutines that
// produced it have returned.
type rootResult struct {
	pos   board.Position
	score int
}

// rootSearch runs spec §4.4's chunked root parallelism: moves is split into
// fixed-size chunks of chunkSize entries; each chunk's moves are searched
// concurrently on the engine's pool, each against its own cloned board and
// the alpha snapshot from the end of the previous chunk (global alpha is
// written only by this function, between chunks, never inside one). Once a
// chunk completes, its best score updates the running best if and only if
// it strictly exceeds the current alpha — ties keep the earlier
// (ordered-traversal) winner.
func (e *Engine) rootSearch(b *board.Board, moves []board.Position) (board.Position, int) {
	depth := e.MaxDepth()
	color := e.Color()

	alpha := -Infinity
	bestMove := board.Invalid
	bestScore := -Infinity

	for start := 0; start < len(moves); start += e.chunkSize {
		if e.cancelled.Load() {
			return board.Invalid, 0
		}

		end := start + e.chunkSize
		if end > len(moves) {
			end = len(moves)
		}
		chunk := moves[start:end]

		results := make([]rootResult, len(chunk))
		var wg sync.WaitGroup
		snapshotAlpha := alpha

		for i, pos := range chunk {
			wg.Add(1)
			i, pos := i, pos
			e.pool.submit(func() {
				defer wg.Done()
				clone := b.Copy()
				clone.MakeMove(pos)
				score, _ := minimax(clone, depth-1, false, snapshotAlpha, Infinity, color, &e.cancelled)
				results[i] = rootResult{pos: pos, score: score}
			})
		}
		wg.Wait()

		if e.cancelled.Load() {
			return board.Invalid, 0
		}

		chunkBest := -Infinity
		chunkBestMove := board.Invalid
		for _, r := range results {
			if r.score > chunkBest {
				chunkBest = r.score
				chunkBestMove = r.pos
			}
		}

		if chunkBest > alpha {
			alpha = chunkBest
			bestScore = chunkBest
			bestMove = chunkBestMove
		}
	}

	return bestMove, bestScore
}
