package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/samuelhe52/Gomoku/internal/board"
	"github.com/samuelhe52/Gomoku/internal/game"
	"github.com/samuelhe52/Gomoku/internal/storage"
)

// Game implements ebiten.Game, driving the board/analyzer/eval/engine core
// through internal/game.Game. Mirrors the shape of the teacher's ui.Game
// (internal/ui/game.go) with the chess-specific panel, modals and sprite
// animation machinery stripped to what a Gomoku board needs.
type Game struct {
	core     *game.Game
	renderer *Renderer
	toolbar  *Toolbar

	store *storage.Storage
	prefs *storage.UserPreferences

	lastMove     board.Position
	resultLogged bool
}

// NewGame constructs a Gomoku game window, loading preferences from
// storage if available and falling back to defaults otherwise (matching
// the teacher's "Warning: Failed to initialize storage" tolerance — a
// missing/unwritable data dir must never prevent play).
func NewGame() *Game {
	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("ui: failed to initialize storage: %v", err)
		store = nil
	}

	var prefs *storage.UserPreferences
	if store != nil {
		prefs, err = store.LoadPreferences()
		if err != nil {
			log.Printf("ui: failed to load preferences: %v", err)
			prefs = storage.DefaultPreferences()
		}
	} else {
		prefs = storage.DefaultPreferences()
	}

	g := &Game{
		core:     game.NewGame(prefs.PlayerColor, prefs.Difficulty.SearchDepth()),
		renderer: NewRenderer(),
		store:    store,
		prefs:    prefs,
		lastMove: board.Invalid,
	}
	g.toolbar = NewToolbar()
	g.toolbar.pendingColor = prefs.PlayerColor
	g.wireToolbar()

	if g.core.AIPlaysFirst() {
		g.core.RequestAIMove()
	}

	return g
}

func (g *Game) wireToolbar() {
	g.toolbar.newGame.OnClick = func() {
		g.core.CancelSearch()
		g.core.StartNewGame(g.toolbar.pendingColor)
		g.lastMove = board.Invalid
		g.resultLogged = false
		g.savePreferences()
		if g.core.AIPlaysFirst() {
			g.core.RequestAIMove()
		}
	}
	g.toolbar.blackSwatch.OnClick = func() { g.toolbar.pendingColor = board.Black }
	g.toolbar.whiteSwatch.OnClick = func() { g.toolbar.pendingColor = board.White }
}

func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}
	g.prefs.PlayerColor = g.toolbar.pendingColor
	if err := g.store.SavePreferences(g.prefs); err != nil {
		log.Printf("ui: failed to save preferences: %v", err)
	}
}

// Update advances one tick: toolbar clicks, board clicks, and draining any
// AI move delivered on the core game's MoveApplied channel.
func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if g.toolbar.HandleClick(mx, my, clicked) {
		return nil
	}

	if clicked && g.core.IsHumansTurn() {
		pos := PositionAt(mx, my)
		if pos != board.Invalid {
			result := g.core.PlayHumanMove(pos)
			if result.Applied {
				g.lastMove = result.Position
				if g.core.IsAITurn() {
					g.core.RequestAIMove()
				}
			}
		}
	}

	select {
	case result := <-g.core.MoveApplied():
		if result.Applied {
			g.lastMove = result.Position
		}
	default:
	}

	if g.core.Winner() != board.Empty || g.core.IsBoardFull() {
		g.recordResultOnce()
	}

	if g.toolbar.AnyHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	return nil
}

// recordResultOnce reports the finished game to storage exactly once.
func (g *Game) recordResultOnce() {
	if g.store == nil || g.resultLogged {
		return
	}
	g.resultLogged = true

	won := g.core.Winner() == g.core.HumanColor()
	draw := g.core.Winner() == board.Empty
	if err := g.store.RecordGame(storage.GameResult{
		Won:        won,
		Draw:       draw,
		Difficulty: g.prefs.Difficulty,
	}); err != nil {
		log.Printf("ui: failed to record game result: %v", err)
	}
}

// Draw renders the board, stones, last-move marker, toolbar and status
// line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawBoard(screen, g.core)
	g.renderer.DrawLastMove(screen, g.lastMove)
	g.toolbar.Draw(screen, g.renderer)
	g.renderer.DrawStatus(screen, StatusLine(g.core), BoardPixels+BoardMargin*2+20, ScreenHeight-30)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
