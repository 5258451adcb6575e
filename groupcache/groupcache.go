// Package groupcache implements the group cache (C5): a memoization
// table from (x,y) to (origin, shape id) so any cell inside a known
// group resolves in O(1) instead of re-running flood-fill. Keys pack
// (x,y) into a single uint64, as spec.md's resource-model notes
// recommend for a map expected to grow to one entry per UNPROCESSED
// cell.
package groupcache

import (
	"errors"
	"fmt"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/group"
	"github.com/vlaran/nurikabe/shape"
)

// ErrMissingShape indicates a group was flood-filled and normalized
// but no top-level shape is registered for its canonical form. This
// signals incomplete shape discovery and is always fatal.
var ErrMissingShape = errors.New("groupcache: no top-level shape registered for this group")

// Entry is a cached resolution: the group's origin and the id of the
// shape it currently maps to.
type Entry struct {
	OriginX, OriginY int
	ShapeID          int
}

// Cache maps (x,y) -> Entry.
type Cache struct {
	m map[uint64]Entry
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{m: make(map[uint64]Entry)}
}

func packKey(x, y int) uint64 {
	return uint64(uint32(x))<<32 | uint64(uint32(y))
}

func unpackKey(k uint64) (x, y int) {
	return int(int32(uint32(k >> 32))), int(int32(uint32(k)))
}

// Get returns the cached entry for (x,y), if any.
func (c *Cache) Get(x, y int) (Entry, bool) {
	e, ok := c.m[packKey(x, y)]
	return e, ok
}

// Len reports how many cells are currently cached.
func (c *Cache) Len() int {
	return len(c.m)
}

// Resolve returns the origin and shape id of the group containing
// (x,y): the cached entry if present, otherwise a fresh flood-fill,
// normalization, and top-level shape lookup, after which every cell
// of the group is cached.
func (c *Cache) Resolve(g grid.Store, shapes *shape.Library, x, y int) (originX, originY, shapeID int, err error) {
	if e, ok := c.Get(x, y); ok {
		return e.OriginX, e.OriginY, e.ShapeID, nil
	}

	cells, err := group.FindGroup(g, x, y)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("groupcache: %w", err)
	}
	ox, oy, canon := group.Normalize(cells)
	id, ok := shapes.Lookup(canon, shape.NoParent)
	if !ok {
		return 0, 0, 0, fmt.Errorf("groupcache: origin=(%d,%d) canon=%v: %w", ox, oy, canon, ErrMissingShape)
	}
	for _, cell := range cells {
		c.m[packKey(cell.X, cell.Y)] = Entry{OriginX: ox, OriginY: oy, ShapeID: id}
	}
	return ox, oy, id, nil
}

// Remap rebinds a set of origin-relative residual cells (as produced
// by a specialization's residual canonicalization) to a child shape
// id, leaving every other cached cell untouched. Cells already
// committed to ACTIVE/NOT_ACTIVE may remain stale in the cache — the
// propagation driver filters them out by their current tile value
// before ever consulting the cache.
func (c *Cache) Remap(originX, originY int, residual []group.Coord, childShapeID int) {
	for _, r := range residual {
		x, y := originX+r.X, originY+r.Y
		c.m[packKey(x, y)] = Entry{OriginX: originX, OriginY: originY, ShapeID: childShapeID}
	}
}

// Clone returns a deep copy, used to give a trial branch its own
// cache that can specialize independently of its siblings.
func (c *Cache) Clone() *Cache {
	m := make(map[uint64]Entry, len(c.m))
	for k, v := range c.m {
		m[k] = v
	}
	return &Cache{m: m}
}
