// File: render/ansi.go
// Textual window rendering for the CLI "show" command: a square
// window around a cell, one glyph per tile, center cell highlighted.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/tile"
)

// glyph maps a tile to its single-character terminal representation.
func glyph(v tile.Tile) byte {
	switch v {
	case tile.Background:
		return ' '
	case tile.Clue1:
		return '1'
	case tile.Clue2:
		return '2'
	case tile.Clue3:
		return '3'
	case tile.Unprocessed:
		return '.'
	case tile.NotActive:
		return '-'
	case tile.Active:
		return '#'
	case tile.Orange:
		return 'o'
	case tile.Pink:
		return '*'
	default:
		return '?'
	}
}

var centerHighlight = color.New(color.FgBlack, color.BgHiWhite)

// ANSI writes a (2*radius+1)-square window centered on (cx,cy) to w,
// with the center cell rendered in reverse video. Cells outside the
// grid render as '~' so the operator can see where the edge falls.
func ANSI(w io.Writer, g grid.Store, cx, cy, radius int) error {
	if radius < 0 {
		return fmt.Errorf("render: negative radius %d", radius)
	}
	if !g.InBounds(cx, cy) {
		return fmt.Errorf("render: center (%d,%d): %w", cx, cy, grid.ErrOutOfBounds)
	}

	fmt.Fprintf(w, "window around (%d,%d), radius %d\n", cx, cy, radius)
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !g.InBounds(x, y) {
				fmt.Fprint(w, "~ ")
				continue
			}
			v, err := g.At(x, y)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			ch := string(glyph(v))
			if x == cx && y == cy {
				centerHighlight.Fprint(w, ch)
				fmt.Fprint(w, " ")
			} else {
				fmt.Fprintf(w, "%s ", ch)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}
