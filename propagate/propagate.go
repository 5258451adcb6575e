// Package propagate implements the propagation driver (C7): a LIFO
// work-queue loop that repeatedly resolves a cell's group, runs the
// local-uniqueness engine against it, commits any forced patches, and
// enqueues the neighborhoods that those patches may have unblocked.
package propagate

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/shape"
	"github.com/vlaran/nurikabe/tile"
	"github.com/vlaran/nurikabe/uniqueness"
)

var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// ErrClueUnderflow signals a broken invariant: a clue was about to be
// decremented to zero or below. This can only happen if an earlier
// uniqueness evaluation admitted an infeasible candidate, so it is
// always treated as fatal.
var ErrClueUnderflow = errors.New("propagate: clue decremented below 1")

// Driver runs straight-line propagation over a grid, mutating it (and
// the shape library / group cache reachable through engine) as the
// sole owner of all three for the duration of a Run.
type Driver struct {
	Grid   grid.Store
	Engine *uniqueness.Engine
	Log    zerolog.Logger

	queue []point
}

type point struct{ x, y int }

// New returns a Driver over the given grid and uniqueness engine. The
// engine's Grid must be the same store.
func New(g grid.Store, engine *uniqueness.Engine, log zerolog.Logger) *Driver {
	return &Driver{Grid: g, Engine: engine, Log: log}
}

// Enqueue schedules (x,y) for (re-)examination.
func (d *Driver) Enqueue(x, y int) {
	d.queue = append(d.queue, point{x, y})
}

// Run drains the work queue, seeded with the given starting points,
// until no cell remains to examine. It returns the number of cells
// committed (written to ACTIVE or NOT_ACTIVE).
func (d *Driver) Run(seeds ...[2]int) (int, error) {
	for _, s := range seeds {
		d.Enqueue(s[0], s[1])
	}
	committed := 0
	for len(d.queue) > 0 {
		n, err := d.step()
		if err != nil {
			return committed, err
		}
		committed += n
	}
	return committed, nil
}

// step pops one seed and processes it, per spec.md §4.6.
func (d *Driver) step() (int, error) {
	last := len(d.queue) - 1
	p := d.queue[last]
	d.queue = d.queue[:last]

	if !d.Grid.InBounds(p.x, p.y) {
		return 0, nil
	}
	v, err := d.Grid.At(p.x, p.y)
	if err != nil {
		return 0, fmt.Errorf("propagate: %w", err)
	}
	if v != tile.Unprocessed {
		return 0, nil
	}

	result, err := d.Engine.Evaluate(p.x, p.y)
	if errors.Is(err, shape.ErrUncurated) {
		d.Log.Debug().Int("x", p.x).Int("y", p.y).Msg("skipping uncurated shape")
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return d.CommitPatches(result.Patches)
}

// CommitPatches writes a uniqueness result's patches to the grid,
// running the clue-decrement cascade and neighbor re-enqueue for each
// cell actually changed. Exported so trial search can force a single
// candidate's patches through the same commit path that straight-line
// propagation uses, instead of duplicating the cascade logic.
func (d *Driver) CommitPatches(patches []uniqueness.Patch) (int, error) {
	committed := 0
	for _, patch := range patches {
		old, err := d.Grid.At(patch.X, patch.Y)
		if err != nil {
			return committed, fmt.Errorf("propagate: %w", err)
		}
		if old == patch.Value {
			continue
		}
		if err := d.Grid.Set(patch.X, patch.Y, patch.Value); err != nil {
			return committed, fmt.Errorf("propagate: %w", err)
		}
		committed++

		if err := d.onCommit(patch.X, patch.Y, patch.Value); err != nil {
			return committed, err
		}
	}
	return committed, nil
}

// onCommit applies the clue-decrement cascade and neighbor re-enqueue
// described in spec.md §4.6 for a single newly-written cell.
func (d *Driver) onCommit(x, y int, newValue tile.Tile) error {
	for _, off := range neighborOffsets {
		mx, my := x+off[0], y+off[1]
		if !d.Grid.InBounds(mx, my) {
			continue
		}
		mv, err := d.Grid.At(mx, my)
		if err != nil {
			return fmt.Errorf("propagate: %w", err)
		}
		if !tile.IsClue(mv) {
			continue
		}
		if newValue == tile.Active {
			if mv <= 1 {
				return fmt.Errorf("propagate: clue at (%d,%d)=%d: %w", mx, my, mv, ErrClueUnderflow)
			}
			if err := d.Grid.Set(mx, my, mv-1); err != nil {
				return fmt.Errorf("propagate: %w", err)
			}
		}
		d.enqueueNeighbors(mx, my)
	}
	return nil
}

func (d *Driver) enqueueNeighbors(x, y int) {
	for _, off := range neighborOffsets {
		d.Enqueue(x+off[0], y+off[1])
	}
}
