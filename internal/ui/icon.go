package ui

import (
	"bytes"
	"image"
	"log"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// windowIconSVG is a minimal scalable icon (a black stone on a wood-colored
// board corner) rasterized once at startup for ebiten.SetWindowIcon. The
// teacher has no equivalent (its icon ships as a prebuilt PNG); SPEC_FULL.md
// §B wires oksvg/rasterx here instead of dropping them.
const windowIconSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64">
  <rect width="64" height="64" rx="8" fill="#deb887"/>
  <circle cx="32" cy="32" r="22" fill="#141414"/>
</svg>`

// RasterizeIcon renders windowIconSVG at size x size into an image.Image
// using oksvg for parsing and rasterx for scanline rasterization.
func RasterizeIcon(size int) image.Image {
	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(windowIconSVG)))
	if err != nil {
		log.Printf("ui: failed to parse window icon svg: %v", err)
		return nil
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img
}
