// Package group finds and canonicalizes groups: maximal 4-connected
// sets of UNPROCESSED cells. Its flood-fill is adapted from the
// neighbor-offset, iterative-queue technique this module's teacher
// library used for generic grid connected-components (gridgraph),
// retargeted from "cells sharing a value" to "cells holding the fixed
// UNPROCESSED tile", and narrowed to a single seeded component rather
// than every component in the grid.
package group

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/tile"
)

// ErrNotUnprocessed indicates FindGroup was seeded at a cell that does
// not currently hold the UNPROCESSED tile.
var ErrNotUnprocessed = errors.New("group: seed cell is not UNPROCESSED")

// neighborOffsets is 4-connectivity: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Coord is a grid coordinate. It marshals as a JSON [x, y] pair rather
// than an {"X":.., "Y":..} object, matching the shape library file
// format's `[x, y]` coordinate pairs.
type Coord struct {
	X, Y int
}

// MarshalJSON encodes c as a two-element [x, y] array.
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

// UnmarshalJSON decodes c from a two-element [x, y] array.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("group: decoding coordinate: %w", err)
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

// less orders coordinates lexicographically as (X, Y) pairs: primary
// key X ascending, ties broken by Y ascending. This is the canonical
// order spec.md requires of a normalized group.
func (c Coord) less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// FindGroup performs iterative 4-connected flood-fill from (x,y),
// collecting every UNPROCESSED cell reachable from the seed. The seed
// itself must be UNPROCESSED; the returned slice always includes it.
// Visitation order is unspecified — callers that need a canonical
// order should pass the result through Normalize.
func FindGroup(g grid.Store, x, y int) ([]Coord, error) {
	seed, err := g.At(x, y)
	if err != nil {
		return nil, fmt.Errorf("group: %w", err)
	}
	if seed != tile.Unprocessed {
		return nil, fmt.Errorf("group: (%d,%d)=%d: %w", x, y, seed, ErrNotUnprocessed)
	}

	visited := map[Coord]struct{}{{X: x, Y: y}: {}}
	stack := []Coord{{X: x, Y: y}}
	cells := make([]Coord, 0, 64)

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells = append(cells, c)

		for _, d := range neighborOffsets {
			n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
			if !g.InBounds(n.X, n.Y) {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			v, err := g.At(n.X, n.Y)
			if err != nil {
				return nil, fmt.Errorf("group: %w", err)
			}
			if v != tile.Unprocessed {
				continue
			}
			visited[n] = struct{}{}
			stack = append(stack, n)
		}
	}
	return cells, nil
}

// Normalize translates cells so their bounding-box minimum is (0,0)
// and returns them sorted lexicographically as (X, Y) pairs. This
// translated, sorted form is the canonical identity used to look up
// and register shapes; it is not invariant under rotation or
// reflection, by design — solutions are tied to specific cell
// positions within a shape's particular orientation.
func Normalize(cells []Coord) (originX, originY int, canon []Coord) {
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	canon = make([]Coord, len(cells))
	for i, c := range cells {
		canon[i] = Coord{X: c.X - minX, Y: c.Y - minY}
	}
	sort.Slice(canon, func(i, j int) bool { return canon[i].less(canon[j]) })
	return minX, minY, canon
}
