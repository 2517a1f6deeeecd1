// Package analyzer implements stateless predicates over a board: win
// detection for a hypothetical placement, directional sequence scanning,
// and the would-win/poses-threat predicates the search uses for move
// ordering.
package analyzer

import "github.com/samuelhe52/Gomoku/internal/board"

// WouldWin reports whether placing color at the empty pos would create a
// run of 5 or more contiguous color stones along at least one axis.
func WouldWin(b *board.Board, pos board.Position, color board.Cell) bool {
	if !b.IsValidMove(pos) {
		return false
	}
	return b.WouldCompleteFive(pos, color)
}

// PosesThreat reports whether placing color at the empty pos produces at
// least one axis-segment of length 3 or 4 with at least one open end.
// Length is capped at 4 here; length >= 5 is would-win's concern.
func PosesThreat(b *board.Board, pos board.Position, color board.Cell) bool {
	if !b.IsValidMove(pos) {
		return false
	}

	for _, dir := range board.Directions {
		count := 1

		fr, fc := pos.Row+dir.Row, pos.Col+dir.Col
		for inBoundsColor(b, fr, fc, color) && count < 5 {
			count++
			fr += dir.Row
			fc += dir.Col
		}

		br, bc := pos.Row-dir.Row, pos.Col-dir.Col
		for inBoundsColor(b, br, bc, color) && count < 5 {
			count++
			br -= dir.Row
			bc -= dir.Col
		}

		forwardOpen := isEmpty(b, fr, fc)
		backwardOpen := isEmpty(b, br, bc)

		if (count == 3 || count == 4) && (forwardOpen || backwardOpen) {
			return true
		}
	}
	return false
}

func inBoundsColor(b *board.Board, row, col int, color board.Cell) bool {
	cell, ok := b.CellAt(board.Position{Row: row, Col: col})
	return ok && cell == color
}

func isEmpty(b *board.Board, row, col int) bool {
	cell, ok := b.CellAt(board.Position{Row: row, Col: col})
	return ok && cell == board.Empty
}

// Segment is one maximal same-color run along one axis, as found by
// Sequences: its length and whether each end is open (the adjacent in-bounds
// cell is Empty).
type Segment struct {
	Length    int
	OpenStart bool
	OpenEnd   bool
}

// OpenSides is the number of open ends of the segment (0, 1 or 2), the
// quantity the evaluator's sequenceScore table is indexed by.
func (s Segment) OpenSides() int {
	n := 0
	if s.OpenStart {
		n++
	}
	if s.OpenEnd {
		n++
	}
	return n
}

// Sequences scans the whole board and returns, for the given color, every
// maximal same-color run along every axis exactly once: a cell is only
// counted as the start of a run when the preceding cell along that axis is
// not the same color, avoiding double counting.
func Sequences(b *board.Board, color board.Cell) []Segment {
	var segments []Segment

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			pos := board.Position{Row: r, Col: c}
			if b.Cell(pos) != color {
				continue
			}
			for _, dir := range board.Directions {
				prev := board.Position{Row: r - dir.Row, Col: c - dir.Col}
				if prevCell, ok := b.CellAt(prev); ok && prevCell == color {
					continue // not the start of this run
				}

				length := 1
				next := board.Position{Row: r + dir.Row, Col: c + dir.Col}
				for {
					cell, ok := b.CellAt(next)
					if !ok || cell != color {
						break
					}
					length++
					next = board.Position{Row: next.Row + dir.Row, Col: next.Col + dir.Col}
				}

				prevCell, prevOK := b.CellAt(prev)
				nextCell, nextOK := b.CellAt(next)
				segments = append(segments, Segment{
					Length:    length,
					OpenStart: prevOK && prevCell == board.Empty,
					OpenEnd:   nextOK && nextCell == board.Empty,
				})
			}
		}
	}

	return segments
}
