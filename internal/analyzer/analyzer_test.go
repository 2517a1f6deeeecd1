package analyzer

import (
	"testing"

	"github.com/samuelhe52/Gomoku/internal/board"
)

func TestWouldWinDetectsFive(t *testing.T) {
	b := board.New()
	for _, p := range []board.Position{{7, 3}, {0, 0}, {7, 4}, {0, 1}, {7, 5}, {0, 2}, {7, 6}} {
		b.MakeMove(p)
	}
	if !WouldWin(b, board.Position{Row: 7, Col: 7}, board.Black) {
		t.Fatalf("expected (7,7) to complete five for Black")
	}
	if !WouldWin(b, board.Position{Row: 7, Col: 2}, board.Black) {
		t.Fatalf("expected (7,2) to complete five for Black from the other end")
	}
	if WouldWin(b, board.Position{Row: 7, Col: 7}, board.White) {
		t.Fatalf("White placing at (7,7) should not complete five")
	}
}

func TestWouldWinRejectsOccupiedOrOutOfBounds(t *testing.T) {
	b := board.New()
	b.MakeMove(board.Position{7, 7})
	if WouldWin(b, board.Position{7, 7}, board.White) {
		t.Fatalf("occupied cell can never would-win")
	}
	if WouldWin(b, board.Position{-1, 0}, board.Black) {
		t.Fatalf("out-of-bounds cell can never would-win")
	}
}

func TestPosesThreatOpenThree(t *testing.T) {
	b := board.New()
	b.MakeMove(board.Position{7, 7})
	b.MakeMove(board.Position{0, 0})
	b.MakeMove(board.Position{7, 8})
	b.MakeMove(board.Position{0, 1})
	// Black has stones at (7,7),(7,8). Placing (7,9) makes an open three.
	if !PosesThreat(b, board.Position{Row: 7, Col: 9}, board.Black) {
		t.Fatalf("expected (7,9) to pose a threat for Black")
	}
}

func TestPosesThreatFalseForIsolatedStone(t *testing.T) {
	b := board.New()
	b.MakeMove(board.Position{0, 0})
	if PosesThreat(b, board.Position{Row: 5, Col: 5}, board.Black) {
		t.Fatalf("an isolated placement should not pose a threat")
	}
}

func TestSequencesCountsEachRunOnce(t *testing.T) {
	b := board.New()
	b.MakeMove(board.Position{7, 5})
	b.MakeMove(board.Position{0, 0})
	b.MakeMove(board.Position{7, 6})
	b.MakeMove(board.Position{0, 1})
	b.MakeMove(board.Position{7, 7})

	segs := Sequences(b, board.Black)
	// Exactly one horizontal run of length 3 should be found, plus three
	// length-1 "runs" along the vertical/diagonal axes for each stone
	// (each stone is its own start-of-run on the three axes it doesn't
	// share with a neighbor).
	found3 := 0
	for _, s := range segs {
		if s.Length == 3 {
			found3++
		}
	}
	if found3 != 1 {
		t.Fatalf("expected exactly one length-3 segment, got %d (segments=%v)", found3, segs)
	}
}

func TestSegmentOpenSides(t *testing.T) {
	s := Segment{Length: 3, OpenStart: true, OpenEnd: false}
	if s.OpenSides() != 1 {
		t.Fatalf("expected 1 open side, got %d", s.OpenSides())
	}
	s2 := Segment{Length: 3, OpenStart: true, OpenEnd: true}
	if s2.OpenSides() != 2 {
		t.Fatalf("expected 2 open sides, got %d", s2.OpenSides())
	}
}
