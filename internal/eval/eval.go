// Package eval implements the heuristic position evaluator: a signed score
// from one player's perspective, built from directional sequence scans.
package eval

import (
	"github.com/samuelhe52/Gomoku/internal/analyzer"
	"github.com/samuelhe52/Gomoku/internal/board"
)

// Bonus weights used by Evaluate's composition step. Named per spec §4.3
// rather than grouped into a single magic-number table, matching the
// teacher's style of one named constant per heuristic term
// (internal/engine/eval.go: PawnValue, passedPawnBonus, bishopPairMgBonus...).
const (
	immediateFourBase  = 400000
	immediateFourPerOp = 2000

	openThreeBonus     = 15000
	doubleThreeBonus   = 60000
	semiOpenThreeBonus = 4000
	semiOpenFourBonus  = 20000
	centerWeight       = 2
)

// SequenceSummary aggregates every start-of-run segment for one color:
// the summed sequenceScore and counts of the shapes the composition step
// cares about.
type SequenceSummary struct {
	Score          int
	OpenThrees     int
	SemiOpenThrees int
	OpenFours      int
	SemiOpenFours  int
}

func (s *SequenceSummary) add(seg analyzer.Segment) {
	open := seg.OpenSides()
	s.Score += sequenceScore(seg.Length, open)

	switch {
	case seg.Length >= 5:
		if open > 0 {
			s.OpenFours++
		}
	case seg.Length == 4:
		if open == 2 {
			s.OpenFours++
		} else if open == 1 {
			s.SemiOpenFours++
		}
	case seg.Length == 3:
		if open == 2 {
			s.OpenThrees++
		} else if open == 1 {
			s.SemiOpenThrees++
		}
	}
}

// sequenceScore is the exact table from spec §4.3.
func sequenceScore(length, openSides int) int {
	if length >= 5 {
		return 1000000
	}
	switch length {
	case 4:
		switch openSides {
		case 2:
			return 50000
		case 1:
			return 10000
		default:
			return 300
		}
	case 3:
		switch openSides {
		case 2:
			return 2000
		case 1:
			return 400
		default:
			return 50
		}
	case 2:
		switch openSides {
		case 2:
			return 200
		case 1:
			return 60
		default:
			return 10
		}
	case 1:
		switch openSides {
		case 2:
			return 20
		case 1:
			return 5
		default:
			return 1
		}
	default:
		return 0
	}
}

// Summarize scans every start-of-run segment for color into a SequenceSummary.
func Summarize(b *board.Board, color board.Cell) SequenceSummary {
	var s SequenceSummary
	for _, seg := range analyzer.Sequences(b, color) {
		s.add(seg)
	}
	return s
}

// CenterBias sums, over every stone of color, max(1, Size - manhattan distance
// to center) — a small positional bonus favoring central stones.
func CenterBias(b *board.Board, color board.Cell) int {
	score := 0
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			pos := board.Position{Row: r, Col: c}
			if b.Cell(pos) != color {
				continue
			}
			contribution := board.Size - b.CenterDistance(pos)
			if contribution < 1 {
				contribution = 1
			}
			score += contribution
		}
	}
	return score
}

// Evaluate returns a signed heuristic score of b from player's perspective:
// positive favors player, negative favors the opponent. See spec §4.3 for
// the composition rules implemented here verbatim.
func Evaluate(b *board.Board, player board.Cell) int {
	opponent := player.Opponent()

	p := Summarize(b, player)
	o := Summarize(b, opponent)

	if p.OpenFours > 0 {
		return immediateFourBase + immediateFourPerOp*p.OpenFours
	}
	if o.OpenFours > 0 {
		return -immediateFourBase - immediateFourPerOp*o.OpenFours
	}

	score := p.Score - o.Score
	score += openThreeBonus * (p.OpenThrees - o.OpenThrees)

	if p.OpenThrees >= 2 {
		score += doubleThreeBonus
	}
	if o.OpenThrees >= 2 {
		score -= doubleThreeBonus
	}

	score += semiOpenThreeBonus * (p.SemiOpenThrees - o.SemiOpenThrees)
	score += semiOpenFourBonus * (p.SemiOpenFours - o.SemiOpenFours)

	score += centerWeight * (CenterBias(b, player) - CenterBias(b, opponent))

	return score
}
