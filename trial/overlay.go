// Package trial implements the trial/split search (C8): a
// copy-on-write overlay over a shared grid, forked per candidate
// solution at a stalled group, with propagation re-run against each
// branch.
package trial

import (
	"fmt"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/tile"
)

type coord struct{ x, y int }

// Overlay is a copy-on-write view over a shared, read-only base grid:
// reads consult the branch's own patch table first and fall through to
// the base only on a miss. It implements grid.Store so the uniqueness
// engine and propagation driver can run against it unmodified.
type Overlay struct {
	Base    grid.Store
	Width   int
	Height  int
	patches map[coord]tile.Tile
}

// NewOverlay returns an empty overlay over base.
func NewOverlay(base *grid.Grid) *Overlay {
	return &Overlay{Base: base, Width: base.Width, Height: base.Height, patches: make(map[coord]tile.Tile)}
}

// InBounds reports whether (x,y) lies within the overlay's dimensions.
func (o *Overlay) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < o.Width && y < o.Height
}

// At returns the branch's patched value for (x,y) if present,
// otherwise the base grid's value.
func (o *Overlay) At(x, y int) (tile.Tile, error) {
	if !o.InBounds(x, y) {
		return 0, grid.ErrOutOfBounds
	}
	if v, ok := o.patches[coord{x, y}]; ok {
		return v, nil
	}
	return o.Base.At(x, y)
}

// Set records a write in the branch's patch table without touching
// the shared base grid.
func (o *Overlay) Set(x, y int, v tile.Tile) error {
	if !o.InBounds(x, y) {
		return grid.ErrOutOfBounds
	}
	if !tile.Valid(v) {
		return fmt.Errorf("trial: Set(%d,%d,%d): %w", x, y, v, grid.ErrInvalidTile)
	}
	o.patches[coord{x, y}] = v
	return nil
}

// Clone returns an independent copy of the overlay's patch table,
// still backed by the same shared base grid.
func (o *Overlay) Clone() *Overlay {
	patches := make(map[coord]tile.Tile, len(o.patches))
	for k, v := range o.patches {
		patches[k] = v
	}
	return &Overlay{Base: o.Base, Width: o.Width, Height: o.Height, patches: patches}
}

// Apply writes every patched cell onto dst, a private scratch grid
// that the caller persists as a completed solution.
func (o *Overlay) Apply(dst *grid.Grid) error {
	for c, v := range o.patches {
		if err := dst.Set(c.x, c.y, v); err != nil {
			return fmt.Errorf("trial: apply (%d,%d): %w", c.x, c.y, err)
		}
	}
	return nil
}
