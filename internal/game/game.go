// Package game implements the thin game-flow API that sits between the
// engine core and a UI collaborator: turn bookkeeping, human/AI move
// application, and an async AI-move request channel. None of the hard
// algorithms live here — spec.md §6 calls this out as "not part of the
// core but specified for contract completeness," and SPEC_FULL.md §6
// promotes it to a concrete (still thin) package so the repository has
// something that actually drives a game to completion.
package game

import (
	"log"

	"github.com/samuelhe52/Gomoku/internal/board"
	"github.com/samuelhe52/Gomoku/internal/engine"
)

// MoveResult summarizes one applied move for a caller that doesn't want to
// re-query the whole game state, field-for-field matching the original's
// MoveResult (original_source/Models/GameManager.h).
type MoveResult struct {
	Applied     bool
	Winner      board.Cell
	BoardFull   bool
	Position    board.Position
	PlacedColor board.Cell
}

// Game owns a Board and an Engine and coordinates turns between a human and
// the engine. It is not safe for concurrent use except through the
// MoveApplied channel, which is exactly how an async AI move is meant to be
// consumed (see RequestAIMove).
type Game struct {
	board *board.Board

	humanColor  board.Cell
	aiColor     board.Cell
	currentTurn board.Cell
	winner      board.Cell

	engine *engine.Engine

	moveApplied chan MoveResult
}

// NewGame constructs a game with humanColor assigned to the human and the
// opposite color to the engine, searching to maxDepth (0 = DefaultMaxDepth).
// Black always moves first regardless of which side is human: if the
// engine plays Black, call RequestAIMove to get its opening move — see
// AIPlaysFirst.
func NewGame(humanColor board.Cell, maxDepth int) *Game {
	aiColor := humanColor.Opponent()
	return &Game{
		board:       board.New(),
		humanColor:  humanColor,
		aiColor:     aiColor,
		currentTurn: board.Black,
		winner:      board.Empty,
		engine:      engine.NewEngine(aiColor, maxDepth),
		moveApplied: make(chan MoveResult, 1),
	}
}

// StartNewGame resets the board and reassigns colors in place, reusing the
// engine's worker pool rather than constructing a new Engine (the pool is
// meant to be "shared by repeated searches on a single engine instance,"
// spec §5).
func (g *Game) StartNewGame(humanColor board.Cell) {
	g.board.Reset()
	g.humanColor = humanColor
	g.aiColor = humanColor.Opponent()
	g.currentTurn = board.Black
	g.winner = board.Empty
	g.engine.SetColor(g.aiColor)
	g.engine.ClearCancel()
}

// AIPlaysFirst reports whether the engine holds Black and so should make
// the opening move (typically via RequestAIMove right after StartNewGame).
func (g *Game) AIPlaysFirst() bool { return g.aiColor == board.Black }

// IsHumansTurn, IsAITurn, CurrentTurn, HumanColor, AIColor, Winner are turn
// bookkeeping accessors for a UI collaborator.
func (g *Game) IsHumansTurn() bool      { return g.winner == board.Empty && g.currentTurn == g.humanColor }
func (g *Game) IsAITurn() bool          { return g.winner == board.Empty && g.currentTurn == g.aiColor }
func (g *Game) CurrentTurn() board.Cell { return g.currentTurn }
func (g *Game) HumanColor() board.Cell  { return g.humanColor }
func (g *Game) AIColor() board.Cell     { return g.aiColor }
func (g *Game) Winner() board.Cell      { return g.winner }

// CanPlayAt reports whether a move is currently legal at pos: the game has
// no winner yet and the cell is empty and in bounds.
func (g *Game) CanPlayAt(pos board.Position) bool {
	return g.winner == board.Empty && g.board.IsValidMove(pos)
}

// Cell returns the board contents at pos, for rendering.
func (g *Game) Cell(pos board.Position) board.Cell { return g.board.Cell(pos) }

// IsBoardFull reports whether the board has no empty cells left.
func (g *Game) IsBoardFull() bool { return g.board.IsBoardFull() }

// Board exposes the underlying board read-only for the UI's rendering pass
// (candidate markers, star points); nothing outside this package should
// call its mutating methods.
func (g *Game) Board() *board.Board { return g.board }

// PlayHumanMove attempts to place the human's stone at pos. If illegal or
// out of turn, it is an observable no-op: MoveResult.Applied is false and
// nothing changes (spec §7).
func (g *Game) PlayHumanMove(pos board.Position) MoveResult {
	if g.winner != board.Empty || !g.IsHumansTurn() {
		log.Printf("game: human move rejected at (%d,%d), not human's turn", pos.Row, pos.Col)
		return MoveResult{}
	}
	return g.applyMove(pos)
}

// PlayAIMove asks the engine for its best move and applies it. It is
// blocking — callers driving a UI should invoke it from a worker goroutine
// and consume the result via RequestAIMove/MoveApplied instead of calling
// this directly from the UI's event loop (spec §5: "The UI calls
// get_best_move from a worker thread, never the UI thread").
func (g *Game) PlayAIMove() MoveResult {
	if g.winner != board.Empty || !g.IsAITurn() {
		log.Printf("game: AI move requested out of turn")
		return MoveResult{}
	}

	pos := g.engine.GetBestMove(g.board)
	if pos == board.Invalid {
		log.Printf("game: engine returned no move (cancelled or no candidates)")
		return MoveResult{}
	}
	return g.applyMove(pos)
}

// RequestAIMove runs PlayAIMove on a new goroutine and delivers its result
// on the channel returned by MoveApplied, mirroring the teacher's
// aiMove-channel pattern (internal/ui/game.go: "go func() { ...; g.aiMove
// <- move }()") translated from a per-frame poll into a plain channel
// receive.
func (g *Game) RequestAIMove() {
	go func() {
		g.moveApplied <- g.PlayAIMove()
	}()
}

// MoveApplied returns the channel RequestAIMove delivers its result on.
func (g *Game) MoveApplied() <-chan MoveResult { return g.moveApplied }

// CancelSearch asks any in-flight engine search to abandon promptly (e.g.
// the UI resetting or starting a new game while the AI is thinking).
func (g *Game) CancelSearch() { g.engine.RequestCancel() }

func (g *Game) applyMove(pos board.Position) MoveResult {
	if !g.board.IsValidMove(pos) {
		return MoveResult{}
	}

	placedColor := g.board.SideToMove()
	winner := g.board.MakeMove(pos)

	g.winner = winner
	g.currentTurn = g.board.SideToMove()

	return MoveResult{
		Applied:     true,
		Winner:      winner,
		BoardFull:   g.board.IsBoardFull(),
		Position:    pos,
		PlacedColor: placedColor,
	}
}
