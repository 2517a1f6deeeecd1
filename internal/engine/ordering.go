package engine

import (
	"sort"

	"github.com/samuelhe52/Gomoku/internal/analyzer"
	"github.com/samuelhe52/Gomoku/internal/board"
)

// orderedCandidates partitions the board's candidate set into the three
// priority buckets of spec §4.4 and returns the list the search should try,
// in order. If any immediate (winning or blocking) move exists, it is
// returned alone — deepening anything else is wasted, since the position
// cannot be beaten before it's played. Otherwise the result is
// threatMoves ++ otherMoves, with otherMoves sorted ascending by distance
// from center.
//
// Iteration walks b.CandidateMoves() in its own (deterministic for a given
// move sequence) order, so ties within a bucket
// preserve that order — required for P6 (search determinism independent of
// thread count) once the root splits this list into chunks.
func orderedCandidates(b *board.Board, engineColor board.Cell) []board.Position {
	opponent := engineColor.Opponent()

	var immediate, threat, other []board.Position
	for _, pos := range b.CandidateMoves() {
		switch {
		case analyzer.WouldWin(b, pos, engineColor) || analyzer.WouldWin(b, pos, opponent):
			immediate = append(immediate, pos)
		case analyzer.PosesThreat(b, pos, engineColor) || analyzer.PosesThreat(b, pos, opponent):
			threat = append(threat, pos)
		default:
			other = append(other, pos)
		}
	}

	if len(immediate) > 0 {
		return immediate
	}

	sort.SliceStable(other, func(i, j int) bool {
		return b.CenterDistance(other[i]) < b.CenterDistance(other[j])
	})

	return append(threat, other...)
}
