package ui

import "image/color"

// Theme defines the color scheme for the board and toolbar, mirroring the
// teacher's Theme struct (internal/ui/renderer.go) with chess squares
// swapped for a single wood-colored board and two stone colors.
type Theme struct {
	BoardColor     color.RGBA
	GridColor      color.RGBA
	StarPointColor color.RGBA
	BlackStone     color.RGBA
	WhiteStone     color.RGBA
	StoneOutline   color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	ButtonColor    color.RGBA
	ButtonHover    color.RGBA
	ButtonActive   color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		BoardColor:     color.RGBA{222, 184, 135, 255},
		GridColor:      color.RGBA{90, 60, 30, 255},
		StarPointColor: color.RGBA{90, 60, 30, 255},
		BlackStone:     color.RGBA{20, 20, 20, 255},
		WhiteStone:     color.RGBA{245, 245, 245, 255},
		StoneOutline:   color.RGBA{0, 0, 0, 160},
		LastMoveColor:  color.RGBA{220, 60, 60, 220},
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
		ButtonColor:    color.RGBA{60, 64, 72, 255},
		ButtonHover:    color.RGBA{80, 84, 92, 255},
		ButtonActive:   color.RGBA{100, 150, 100, 255},
	}
}
