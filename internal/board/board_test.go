package board

import "testing"

func countStones(b *Board) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// chebyshev returns the Chebyshev distance between two positions.
func chebyshev(a, c Position) int {
	dr := a.Row - c.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - c.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// assertCandidateInvariant checks P1 by brute force against every cell.
func assertCandidateInvariant(t *testing.T, b *Board) {
	t.Helper()
	inSet := map[Position]bool{}
	for _, p := range b.CandidateMoves() {
		inSet[p] = true
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := Position{Row: r, Col: c}
			near := false
			for pr := 0; pr < Size && !near; pr++ {
				for pc := 0; pc < Size; pc++ {
					if b.cells[pr][pc] == Empty {
						continue
					}
					if chebyshev(p, Position{Row: pr, Col: pc}) <= CandidateRadius {
						near = true
						break
					}
				}
			}
			want := b.cells[r][c] == Empty && near
			if inSet[p] != want {
				t.Fatalf("P1 violated at (%d,%d): inSet=%v want=%v", r, c, inSet[p], want)
			}
		}
	}
}

func TestNewBoardIsEmptyWithBlackToMove(t *testing.T) {
	b := New()
	if b.SideToMove() != Black {
		t.Fatalf("expected Black to move first")
	}
	if !b.IsBoardEmpty() {
		t.Fatalf("expected fresh board to be empty")
	}
	if len(b.CandidateMoves()) != 0 {
		t.Fatalf("expected no candidates on an empty board")
	}
}

func TestMakeMoveCandidateInvariant(t *testing.T) {
	b := New()
	moves := []Position{{7, 7}, {7, 8}, {8, 7}, {6, 6}, {5, 9}}
	for _, m := range moves {
		b.MakeMove(m)
		assertCandidateInvariant(t, b)
	}
}

func TestIllegalMoveIsObservableNoOp(t *testing.T) {
	b := New()
	b.MakeMove(Position{7, 7})
	before := countStones(b)
	winner := b.MakeMove(Position{7, 7}) // occupied
	if winner != Empty {
		t.Fatalf("occupied-cell move should report no winner")
	}
	if countStones(b) != before {
		t.Fatalf("illegal move must not mutate the board")
	}
	winner = b.MakeMove(Position{-1, 0}) // out of bounds
	if winner != Empty || countStones(b) != before {
		t.Fatalf("out-of-bounds move must be a no-op")
	}
}

// TestUndoRoundTrip is property P2: make then undo restores an identical board.
func TestUndoRoundTrip(t *testing.T) {
	b := New()
	b.MakeMove(Position{7, 7})
	b.MakeMove(Position{7, 8})

	before := b.Copy()

	b.MakeMove(Position{8, 8})
	b.UndoMove()

	if b.SideToMove() != before.SideToMove() {
		t.Fatalf("side to move not restored")
	}
	if len(b.history) != len(before.history) {
		t.Fatalf("history length not restored")
	}
	if len(b.candidateSet) != len(before.candidateSet) {
		t.Fatalf("candidate set size not restored: got %d want %d", len(b.candidateSet), len(before.candidateSet))
	}
	gotSet := map[Position]bool{}
	for _, p := range b.CandidateMoves() {
		gotSet[p] = true
	}
	for _, p := range before.CandidateMoves() {
		if !gotSet[p] {
			t.Fatalf("candidate set contents not restored, missing %v", p)
		}
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] != before.cells[r][c] {
				t.Fatalf("cell (%d,%d) not restored", r, c)
			}
		}
	}
}

// TestMoveSequenceReversibility is property P3.
func TestMoveSequenceReversibility(t *testing.T) {
	b := New()
	moves := []Position{{7, 7}, {7, 8}, {6, 7}, {8, 8}, {8, 7}, {6, 8}}
	for _, m := range moves {
		b.MakeMove(m)
	}
	for range moves {
		b.UndoMove()
	}
	if !b.IsBoardEmpty() {
		t.Fatalf("expected empty board after undoing every move")
	}
	if len(b.CandidateMoves()) != 0 {
		t.Fatalf("expected empty candidate set after undoing every move")
	}
	if b.SideToMove() != Black {
		t.Fatalf("expected Black to move after full undo")
	}
}

// TestWinnerDetection is property P4.
func TestWinnerDetection(t *testing.T) {
	b := New()
	moves := []struct {
		pos        Position
		wantWinner Cell
	}{
		{Position{7, 3}, Empty},
		{Position{8, 3}, Empty},
		{Position{7, 4}, Empty},
		{Position{8, 4}, Empty},
		{Position{7, 5}, Empty},
		{Position{8, 5}, Empty},
		{Position{7, 6}, Empty},
		{Position{8, 6}, Empty},
		{Position{7, 7}, Black}, // completes 7,3..7,7 for Black
	}
	for _, m := range moves {
		got := b.MakeMove(m.pos)
		if got != m.wantWinner {
			t.Fatalf("MakeMove(%v) = %v, want %v", m.pos, got, m.wantWinner)
		}
	}
}

func TestSideToMoveAlternates(t *testing.T) {
	b := New()
	for i, m := range []Position{{0, 0}, {0, 1}, {0, 2}} {
		b.MakeMove(m)
		wantBlack := (i+1)%2 == 0
		if (b.SideToMove() == Black) != wantBlack {
			t.Fatalf("after %d moves, side to move = %v", i+1, b.SideToMove())
		}
	}
}

func TestIsBoardFull(t *testing.T) {
	b := New()
	if b.IsBoardFull() {
		t.Fatalf("fresh board should not be full")
	}
}

func TestCriticalPointsAreFixed(t *testing.T) {
	if len(CriticalPoints) != 5 {
		t.Fatalf("expected 5 critical points, got %d", len(CriticalPoints))
	}
	center := Position{Row: Size / 2, Col: Size / 2}
	found := false
	for _, p := range CriticalPoints {
		if p == center {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected center point among critical points")
	}
}
