package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/samuelhe52/Gomoku/internal/board"
	"github.com/samuelhe52/Gomoku/internal/game"
)

// Layout constants, sized for a 15x15 intersection grid (spec §2: board.Size).
const (
	CellSize     = 36
	BoardMargin  = 28
	BoardPixels  = (board.Size - 1) * CellSize
	PanelWidth   = 260
	ScreenWidth  = BoardPixels + BoardMargin*2 + PanelWidth
	ScreenHeight = BoardPixels + BoardMargin*2

	StoneRadius     = CellSize/2 - 3
	StarPointRadius = 4
)

// statusFace is the fixed-width bitmap font used for status text, wrapped
// for ebiten's text/v2 API rather than pulled in as a TrueType asset —
// matching SPEC_FULL.md §B's basicfont wiring.
var statusFace = text.NewGoXFace(basicfont.Face7x13)

// Renderer draws a Game's board, stones and status text onto an
// *ebiten.Image. It holds no game state of its own.
type Renderer struct {
	theme *Theme
}

// NewRenderer constructs a Renderer using the default theme.
func NewRenderer() *Renderer {
	return &Renderer{theme: DefaultTheme()}
}

// Theme returns the renderer's color theme.
func (r *Renderer) Theme() *Theme { return r.theme }

// intersection returns the pixel center of board position pos.
func intersection(pos board.Position) (float32, float32) {
	x := float32(BoardMargin + pos.Col*CellSize)
	y := float32(BoardMargin + pos.Row*CellSize)
	return x, y
}

// PositionAt maps a screen pixel to the nearest board position, or
// board.Invalid if outside the clickable radius of every intersection.
func PositionAt(px, py int) board.Position {
	col := (px - BoardMargin + CellSize/2) / CellSize
	row := (py - BoardMargin + CellSize/2) / CellSize
	pos := board.Position{Row: row, Col: col}
	if !pos.InBounds() {
		return board.Invalid
	}
	cx, cy := intersection(pos)
	dx, dy := float32(px)-cx, float32(py)-cy
	if dx*dx+dy*dy > float32(CellSize*CellSize)/4 {
		return board.Invalid
	}
	return pos
}

// DrawBoard draws the grid, star points and stones; the last-move marker is
// drawn separately by DrawLastMove.
func (r *Renderer) DrawBoard(screen *ebiten.Image, g *game.Game) {
	vector.DrawFilledRect(screen, 0, 0, float32(BoardPixels+BoardMargin*2), float32(ScreenHeight), r.theme.BoardColor, false)

	for i := 0; i < board.Size; i++ {
		x0, y0 := intersection(board.Position{Row: i, Col: 0})
		x1, _ := intersection(board.Position{Row: i, Col: board.Size - 1})
		vector.StrokeLine(screen, x0, y0, x1, y0, 1, r.theme.GridColor, false)

		x0, y0 = intersection(board.Position{Row: 0, Col: i})
		_, y1 := intersection(board.Position{Row: board.Size - 1, Col: i})
		vector.StrokeLine(screen, x0, y0, x0, y1, 1, r.theme.GridColor, false)
	}

	for _, p := range board.CriticalPoints {
		x, y := intersection(p)
		vector.DrawFilledCircle(screen, x, y, StarPointRadius, r.theme.StarPointColor, true)
	}

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			pos := board.Position{Row: row, Col: col}
			cell := g.Cell(pos)
			if cell == board.Empty {
				continue
			}
			r.drawStone(screen, pos, cell)
		}
	}
}

func (r *Renderer) drawStone(screen *ebiten.Image, pos board.Position, color board.Cell) {
	x, y := intersection(pos)
	fill := r.theme.BlackStone
	if color == board.White {
		fill = r.theme.WhiteStone
	}
	vector.DrawFilledCircle(screen, x, y, StoneRadius, fill, true)
	vector.StrokeCircle(screen, x, y, StoneRadius, 1, r.theme.StoneOutline, true)
}

// DrawLastMove highlights pos with a small marker, or draws nothing if pos
// is board.Invalid (no move has been played yet).
func (r *Renderer) DrawLastMove(screen *ebiten.Image, pos board.Position) {
	if pos == board.Invalid {
		return
	}
	x, y := intersection(pos)
	vector.StrokeCircle(screen, x, y, StoneRadius+3, 2, r.theme.LastMoveColor, true)
}

// DrawStatus draws a single line of status text at (x, y) in the panel.
func (r *Renderer) DrawStatus(screen *ebiten.Image, label string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(r.theme.TextColor)
	text.Draw(screen, label, statusFace, op)
}

// StatusLine formats the current turn/result line for a Game.
func StatusLine(g *game.Game) string {
	if g.Winner() != board.Empty {
		return fmt.Sprintf("%s wins!", g.Winner())
	}
	if g.IsBoardFull() {
		return "Board full — draw"
	}
	if g.IsAITurn() {
		return "AI thinking..."
	}
	return fmt.Sprintf("%s to move", g.CurrentTurn())
}
