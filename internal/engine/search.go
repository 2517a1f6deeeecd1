package engine

import (
	"sync/atomic"

	"github.com/samuelhe52/Gomoku/internal/board"
	"github.com/samuelhe52/Gomoku/internal/eval"
)

// Infinity bounds alpha-beta windows and leaves room for the mate-adjacent
// bonus below it without overflowing a 64-bit int.
const Infinity = 1 << 30

// MateBonus is added to (subtracted from) Infinity/2 for a terminal winning
// (losing) position, matching the original's "prefer immediate wins"
// adjustment (spec §4.4).
const MateBonus = 10000

// minimax implements spec §4.4's recursive alpha-beta search. It mutates b
// via make/undo around each recursive call and restores it fully before
// returning. It is sequential; root-level parallelism lives in root.go,
// which calls this once per root move on an independently cloned board.
func minimax(b *board.Board, depth int, maximizing bool, alpha, beta int, engineColor board.Cell, cancelled *atomic.Bool) (score int, best board.Position) {
	if cancelled.Load() {
		return 0, board.Invalid
	}

	if winner := b.Winner(); depth == 0 || winner != board.Empty {
		switch winner {
		case engineColor:
			return Infinity/2 + MateBonus, board.Invalid
		case engineColor.Opponent():
			return -Infinity/2 - MateBonus, board.Invalid
		default:
			return eval.Evaluate(b, engineColor), board.Invalid
		}
	}

	moves := orderedCandidates(b, engineColor)
	if len(moves) == 0 {
		return eval.Evaluate(b, engineColor), board.Invalid
	}

	best = board.Invalid

	if maximizing {
		bestScore := -Infinity
		for _, pos := range moves {
			b.MakeMove(pos)
			s, _ := minimax(b, depth-1, false, alpha, beta, engineColor, cancelled)
			b.UndoMove()

			if cancelled.Load() {
				return 0, board.Invalid
			}

			if s > bestScore {
				bestScore = s
				best = pos
			}
			if s > alpha {
				alpha = s
			}
			if beta <= alpha {
				break
			}
		}
		return bestScore, best
	}

	bestScore := Infinity
	for _, pos := range moves {
		b.MakeMove(pos)
		s, _ := minimax(b, depth-1, true, alpha, beta, engineColor, cancelled)
		b.UndoMove()

		if cancelled.Load() {
			return 0, board.Invalid
		}

		if s < bestScore {
			bestScore = s
			best = pos
		}
		if s < beta {
			beta = s
		}
		if beta <= alpha {
			break
		}
	}
	return bestScore, best
}
