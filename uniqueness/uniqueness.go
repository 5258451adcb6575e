// Package uniqueness implements the local-uniqueness engine (C6): given
// a group's shape and its curated candidate solutions, it computes the
// intersection of "cells forced the same way in every still-feasible
// solution" against the current grid state.
package uniqueness

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/group"
	"github.com/vlaran/nurikabe/groupcache"
	"github.com/vlaran/nurikabe/shape"
	"github.com/vlaran/nurikabe/tile"
)

// ErrInconsistentGroup indicates that no candidate solution of a
// group's shape is feasible under the current grid state. Callers
// decide how fatal this is: the propagation driver treats it as a
// broken invariant, trial search treats it as a signal to abandon the
// branch silently.
var ErrInconsistentGroup = errors.New("uniqueness: no candidate solution is feasible")

var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Patch is one forced cell assignment, in absolute grid coordinates.
type Patch struct {
	X, Y  int
	Value tile.Tile
}

// Result is the outcome of evaluating a group.
type Result struct {
	// Patches is the set of cells forced by every feasible candidate,
	// empty if none are forced yet.
	Patches []Patch
	// UsedSolutions holds the indices, into the shape's Solutions
	// slice, of the candidates that remain feasible.
	UsedSolutions []int
	// Specialized reports whether a child shape was registered for
	// the group's unresolved residual cells.
	Specialized  bool
	ChildShapeID int
}

// Engine ties together a grid, the shape library, and the group cache
// that the local-uniqueness computation reads and (on specialization)
// mutates.
type Engine struct {
	Grid   grid.Store
	Shapes *shape.Library
	Cache  *groupcache.Cache
}

// New returns an Engine over the given grid, shape library, and group
// cache.
func New(g grid.Store, shapes *shape.Library, cache *groupcache.Cache) *Engine {
	return &Engine{Grid: g, Shapes: shapes, Cache: cache}
}

// Evaluate resolves the group containing (x,y) and runs the
// local-uniqueness computation against it. If the group's shape has no
// curated solutions yet, Evaluate returns (nil, shape.ErrUncurated) —
// not fatal, just nothing to do until curation catches up.
func (e *Engine) Evaluate(x, y int) (*Result, error) {
	originX, originY, shapeID, err := e.Cache.Resolve(e.Grid, e.Shapes, x, y)
	if err != nil {
		return nil, err
	}
	return e.evaluateGroup(originX, originY, shapeID)
}

// EvaluateForced behaves like Evaluate but restricts consideration to
// a single candidate solution, as spec'd for trial/split search: the
// shape is treated as if it had only this one solution, so it is
// forced entirely (barring infeasibility).
func (e *Engine) EvaluateForced(x, y int, solutionIndex int) (*Result, error) {
	originX, originY, shapeID, err := e.Cache.Resolve(e.Grid, e.Shapes, x, y)
	if err != nil {
		return nil, err
	}
	sh := e.Shapes.Get(shapeID)
	if sh == nil {
		return nil, fmt.Errorf("uniqueness: shape %d: %w", shapeID, shape.ErrNotFound)
	}
	if solutionIndex < 0 || solutionIndex >= len(sh.Solutions) {
		return nil, fmt.Errorf("uniqueness: shape %d has no solution index %d", shapeID, solutionIndex)
	}
	return e.evaluateCandidates(originX, originY, shapeID, sh, [][]group.Coord{sh.Solutions[solutionIndex]}, []int{solutionIndex})
}

func (e *Engine) evaluateGroup(originX, originY, shapeID int) (*Result, error) {
	sh := e.Shapes.Get(shapeID)
	if sh == nil {
		return nil, fmt.Errorf("uniqueness: shape %d: %w", shapeID, shape.ErrNotFound)
	}
	if !sh.Curated() {
		return nil, fmt.Errorf("uniqueness: shape %d: %w", shapeID, shape.ErrUncurated)
	}
	return e.evaluateCandidates(originX, originY, shapeID, sh, sh.Solutions, nil)
}

// evaluateCandidates runs the feasibility check over candidates
// (restricted to a single forced candidate when called from
// EvaluateForced, tracked via forcedIndices) and intersects the
// results.
func (e *Engine) evaluateCandidates(originX, originY, shapeID int, sh *shape.Shape, candidates [][]group.Coord, forcedIndices []int) (*Result, error) {
	us := make(map[group.Coord]struct{}, len(sh.Group))
	for _, c := range sh.Group {
		us[group.Coord{X: originX + c.X, Y: originY + c.Y}] = struct{}{}
	}

	var intersection map[group.Coord]tile.Tile
	var used []int
	for i, candidate := range candidates {
		patches, feasible, err := e.findSolutionValidAt(originX, originY, sh.Group, candidate, us)
		if err != nil {
			return nil, err
		}
		if !feasible {
			continue
		}
		idx := i
		if forcedIndices != nil {
			idx = forcedIndices[i]
		}
		used = append(used, idx)
		if intersection == nil {
			intersection = patches
			continue
		}
		for cell, v := range intersection {
			if patches[cell] != v {
				delete(intersection, cell)
			}
		}
	}

	if len(used) == 0 {
		return nil, ErrInconsistentGroup
	}
	if len(intersection) == 0 {
		return &Result{UsedSolutions: used}, nil
	}

	patches := make([]Patch, 0, len(intersection))
	for cell, v := range intersection {
		patches = append(patches, Patch{X: originX + cell.X, Y: originY + cell.Y, Value: v})
	}
	sort.Slice(patches, func(i, j int) bool {
		if patches[i].Y != patches[j].Y {
			return patches[i].Y < patches[j].Y
		}
		return patches[i].X < patches[j].X
	})

	result := &Result{Patches: patches, UsedSolutions: used}
	if len(intersection) == len(sh.Group) {
		return result, nil
	}

	residual := make([]group.Coord, 0, len(sh.Group)-len(intersection))
	for _, c := range sh.Group {
		if _, ok := intersection[c]; !ok {
			residual = append(residual, c)
		}
	}
	sort.Slice(residual, func(i, j int) bool {
		if residual[i].X != residual[j].X {
			return residual[i].X < residual[j].X
		}
		return residual[i].Y < residual[j].Y
	})

	childID, ok := e.Shapes.Lookup(residual, shapeID)
	if !ok {
		var err error
		childID, err = e.Shapes.Register(residual, shapeID, used)
		if err != nil {
			return nil, fmt.Errorf("uniqueness: registering specialization of shape %d: %w", shapeID, err)
		}
	}
	e.Cache.Remap(originX, originY, residual, childID)
	result.Specialized = true
	result.ChildShapeID = childID
	return result, nil
}

// findSolutionValidAt runs the per-candidate feasibility check from
// spec.md §4.5: whether committing `candidate` as this group's active
// set keeps every neighboring clue's remaining budget satisfiable. It
// returns the tentative patch list (keyed by shape-relative coord,
// matching shape.Group's coordinate space) and whether the candidate
// is feasible.
func (e *Engine) findSolutionValidAt(originX, originY int, shapeGroup, candidate []group.Coord, us map[group.Coord]struct{}) (map[group.Coord]tile.Tile, bool, error) {
	active := make(map[group.Coord]struct{}, len(candidate))
	for _, c := range candidate {
		active[c] = struct{}{}
	}

	patches := make(map[group.Coord]tile.Tile, len(shapeGroup))
	neighborDelta := make(map[group.Coord]int)
	for _, c := range shapeGroup {
		gx, gy := originX+c.X, originY+c.Y
		_, isActive := active[c]
		if isActive {
			patches[c] = tile.Active
		} else {
			patches[c] = tile.NotActive
		}
		if !isActive {
			continue
		}
		for _, off := range neighborOffsets {
			nx, ny := gx+off[0], gy+off[1]
			if !e.Grid.InBounds(nx, ny) {
				continue
			}
			v, err := e.Grid.At(nx, ny)
			if err != nil {
				return nil, false, fmt.Errorf("uniqueness: %w", err)
			}
			if tile.IsClue(v) {
				neighborDelta[group.Coord{X: nx, Y: ny}]++
			}
		}
	}

	for clue, change := range neighborDelta {
		v, err := e.Grid.At(clue.X, clue.Y)
		if err != nil {
			return nil, false, fmt.Errorf("uniqueness: %w", err)
		}
		current := int(v)
		if current-change < 1 {
			return nil, false, nil
		}
		otherNeeded := current - 1 - change
		otherAvailable := 0
		for _, off := range neighborOffsets {
			nx, ny := clue.X+off[0], clue.Y+off[1]
			if !e.Grid.InBounds(nx, ny) {
				continue
			}
			if _, inGroup := us[group.Coord{X: nx, Y: ny}]; inGroup {
				continue
			}
			nv, err := e.Grid.At(nx, ny)
			if err != nil {
				return nil, false, fmt.Errorf("uniqueness: %w", err)
			}
			if nv == tile.Unprocessed {
				otherAvailable++
			}
		}
		if otherAvailable < otherNeeded {
			return nil, false, nil
		}
	}

	return patches, true, nil
}
