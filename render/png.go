// Package render draws rectangular grid windows for operator
// inspection: PNG images with the fixed tile palette, and textual
// terminal windows with an ANSI-highlighted center cell.
package render

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/tile"
)

// paletteColor maps a tile to its fixed render color. NOT_ACTIVE has
// no entry of its own and renders blue, as does any value outside the
// known alphabet.
func paletteColor(v tile.Tile) color.RGBA {
	switch v {
	case tile.Background:
		return color.RGBA{0x00, 0x00, 0x00, 0xFF}
	case tile.Clue1:
		return color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	case tile.Clue2:
		return color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	case tile.Clue3:
		return color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	case tile.Unprocessed:
		return color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	case tile.Active:
		return color.RGBA{0x80, 0x80, 0x80, 0xFF}
	case tile.Orange:
		return color.RGBA{0xE7, 0x8D, 0x0E, 0xFF}
	case tile.Pink:
		return color.RGBA{0xFF, 0x00, 0xFF, 0xFF}
	default:
		return color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	}
}

// PNG renders the window with top-left corner (x0,y0) and dimensions
// width x height to a PNG file, one scale x scale pixel block per
// tile. The window must lie entirely within the grid.
func PNG(g grid.Store, x0, y0, width, height, scale int, path string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: window %dx%d: %w", width, height, grid.ErrInvalidDimensions)
	}
	if scale < 1 {
		scale = 1
	}
	if !g.InBounds(x0, y0) || !g.InBounds(x0+width-1, y0+height-1) {
		return fmt.Errorf("render: window (%d,%d)+%dx%d: %w", x0, y0, width, height, grid.ErrOutOfBounds)
	}

	dc := gg.NewContext(width*scale, height*scale)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v, err := g.At(x0+x, y0+y)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			dc.SetColor(paletteColor(v))
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return nil
}
