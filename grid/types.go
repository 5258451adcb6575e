// Package grid provides a fixed-dimension 2D tile grid with raw
// byte-dump serialization, and the Store interface that the rest of
// this module programs against instead of the concrete type.
//
// A Grid is a single contiguous []byte buffer indexed row-major
// (buffer[y*Width+x]), never a slice of slices: at the puzzle's full
// size (≈17,268×90,300 ≈ 1.56GB) per-row indirection would add one
// allocation per row for no benefit.
package grid

import (
	"errors"

	"github.com/vlaran/nurikabe/tile"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside [0,Width)x[0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrWrongLength indicates a raw file whose length does not equal Width*Height.
	ErrWrongLength = errors.New("grid: raw file length does not match width*height")
	// ErrInvalidTile indicates a byte outside the legal tile alphabet.
	ErrInvalidTile = errors.New("grid: tile value outside legal alphabet")
	// ErrUnsatisfiableClue indicates a clue that needs more ACTIVE
	// neighbors than it has UNPROCESSED neighbors left.
	ErrUnsatisfiableClue = errors.New("grid: clue cannot be satisfied by its remaining neighbors")
)

// Store is the minimal read/write surface the solver core programs
// against. *Grid implements it directly; trial.Overlay implements it
// as a copy-on-write layer over a shared *Grid, so the uniqueness
// engine and propagation driver work unmodified over either one.
type Store interface {
	// At returns the tile at (x,y), or ErrOutOfBounds.
	At(x, y int) (tile.Tile, error)
	// Set writes the tile at (x,y), or ErrOutOfBounds.
	Set(x, y int, v tile.Tile) error
	// InBounds reports whether (x,y) lies within the grid.
	InBounds(x, y int) bool
}

// Grid is a fixed-size, row-major byte buffer. The zero value is not
// usable; construct with New or Load.
type Grid struct {
	Width, Height int
	cells         []tile.Tile
}

// New allocates a Width*Height grid, all cells Background.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{Width: width, Height: height, cells: make([]tile.Tile, width*height)}, nil
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// At returns the tile at (x,y).
func (g *Grid) At(x, y int) (tile.Tile, error) {
	if !g.InBounds(x, y) {
		return 0, ErrOutOfBounds
	}
	return g.cells[g.index(x, y)], nil
}

// Set writes the tile at (x,y).
func (g *Grid) Set(x, y int, v tile.Tile) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.cells[g.index(x, y)] = v
	return nil
}

// Clone returns a deep copy, used to materialize a trial branch's
// overlay onto a private grid before persisting it as a solution.
func (g *Grid) Clone() *Grid {
	cells := make([]tile.Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}
