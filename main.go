// Gomoku is a 15x15 five-in-a-row game with a root-parallelized alpha-beta
// computer player, built with Ebitengine.
package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/samuelhe52/Gomoku/internal/ui"
)

func main() {
	g := ui.NewGame()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Gomoku")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if icon := ui.RasterizeIcon(64); icon != nil {
		ebiten.SetWindowIcon([]image.Image{icon})
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
