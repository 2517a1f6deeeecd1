package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/samuelhe52/Gomoku/internal/board"
)

// Button is a clickable rectangular region, matching the teacher's Button
// struct (internal/ui/panel.go) minus the chess-specific label formatting.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	active     bool
}

func (b *Button) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Toolbar is the side panel: a "New Game" button and a two-swatch picker
// for which color the human plays next game (out-of-scope collaborator per
// spec.md, but specified in SPEC_FULL.md §B so the repo has a driving UI).
type Toolbar struct {
	newGame      *Button
	blackSwatch  *Button
	whiteSwatch  *Button
	pendingColor board.Cell
}

// NewToolbar builds a toolbar whose callbacks are wired by the caller after
// construction (see Game.wireToolbar), since they need to close over the
// owning Game.
func NewToolbar() *Toolbar {
	x := BoardPixels + BoardMargin*2 + 20
	return &Toolbar{
		newGame:      &Button{X: x, Y: 20, W: PanelWidth - 40, H: 40, Label: "New Game"},
		blackSwatch:  &Button{X: x, Y: 80, W: 90, H: 40, Label: "Black"},
		whiteSwatch:  &Button{X: x + 100, Y: 80, W: 90, H: 40, Label: "White"},
		pendingColor: board.Black,
	}
}

// HandleClick updates hover/active state for (mx, my) and fires whichever
// button's OnClick the point landed on. Returns true if the click was
// consumed by the toolbar.
func (t *Toolbar) HandleClick(mx, my int, clicked bool) bool {
	buttons := []*Button{t.newGame, t.blackSwatch, t.whiteSwatch}
	for _, b := range buttons {
		b.hovered = b.contains(mx, my)
	}
	t.blackSwatch.active = t.pendingColor == board.Black
	t.whiteSwatch.active = t.pendingColor == board.White

	if !clicked {
		return false
	}
	for _, b := range buttons {
		if b.hovered && b.OnClick != nil {
			b.OnClick()
			return true
		}
	}
	return false
}

// AnyHovered reports whether the pointer is over any toolbar button, for
// cursor-shape updates.
func (t *Toolbar) AnyHovered() bool {
	return t.newGame.hovered || t.blackSwatch.hovered || t.whiteSwatch.hovered
}

// Draw renders the toolbar's buttons and swatches.
func (t *Toolbar) Draw(screen *ebiten.Image, r *Renderer) {
	theme := r.Theme()
	vector.DrawFilledRect(screen, float32(BoardPixels+BoardMargin*2), 0, float32(PanelWidth), float32(ScreenHeight), theme.Background, false)

	t.drawButton(screen, r, t.newGame)
	t.drawButton(screen, r, t.blackSwatch)
	t.drawButton(screen, r, t.whiteSwatch)

	r.DrawStatus(screen, "Play as:", t.blackSwatch.X, t.blackSwatch.Y-10)
}

func (t *Toolbar) drawButton(screen *ebiten.Image, r *Renderer, b *Button) {
	theme := r.Theme()
	bg := theme.ButtonColor
	switch {
	case b.active:
		bg = theme.ButtonActive
	case b.hovered:
		bg = theme.ButtonHover
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, theme.TextColor, false)
	r.DrawStatus(screen, b.Label, b.X+8, b.Y+b.H/2+4)
}
