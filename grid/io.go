// File: grid/io.go
// Raw-file load/store for the grid store (C1), plus a read-only
// consistency pass used by the "validate" CLI command.
package grid

import (
	"fmt"
	"os"

	"github.com/vlaran/nurikabe/tile"
)

// Load reads a raw grid file: exactly width*height bytes, row-major,
// one tile per byte. Every byte must belong to the legal tile alphabet.
func Load(path string, width, height int) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid: read %s: %w", path, err)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("grid: %s has %d bytes, want %d: %w", path, len(data), width*height, ErrWrongLength)
	}
	for i, v := range data {
		if !tile.Valid(v) {
			return nil, fmt.Errorf("grid: %s byte %d = %d: %w", path, i, v, ErrInvalidTile)
		}
	}
	return &Grid{Width: width, Height: height, cells: data}, nil
}

// Save writes the grid as a raw row-major byte dump.
func (g *Grid) Save(path string) error {
	if err := os.WriteFile(path, g.cells, 0o644); err != nil {
		return fmt.Errorf("grid: write %s: %w", path, err)
	}
	return nil
}

// validateOffsets is 4-connectivity: N, E, S, W.
var validateOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Validate performs a read-only consistency scan: every byte must
// belong to the legal tile alphabet, and every clue must remain
// satisfiable — its current value is the count of ACTIVE neighbors
// still needed, which can only come from 4-neighbors still
// UNPROCESSED. The full clue-vs-original accounting is not checkable
// here, since the grid does not retain a clue's original value once
// decremented; that half is exercised in propagate's tests, which
// track each delta as the driver applies it.
func (g *Grid) Validate() error {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := g.cells[g.index(x, y)]
			if !tile.Valid(v) {
				return fmt.Errorf("grid: (%d,%d)=%d: %w", x, y, v, ErrInvalidTile)
			}
			if !tile.IsClue(v) {
				continue
			}
			avail := 0
			for _, off := range validateOffsets {
				nx, ny := x+off[0], y+off[1]
				if !g.InBounds(nx, ny) {
					continue
				}
				if g.cells[g.index(nx, ny)] == tile.Unprocessed {
					avail++
				}
			}
			if avail < int(v) {
				return fmt.Errorf("grid: clue (%d,%d)=%d with %d UNPROCESSED neighbors: %w", x, y, v, avail, ErrUnsatisfiableClue)
			}
		}
	}
	return nil
}
