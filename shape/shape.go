// Package shape implements the shape library and shape index (C3,
// C4): the catalog of canonicalized group polyominoes, their curated
// candidate solutions, and the specialization DAG linking a partially
// forced shape to the child shape representing its undetermined
// residue.
package shape

import (
	"errors"

	"github.com/vlaran/nurikabe/group"
)

// NoParent marks a top-level shape with no specialization parent.
const NoParent = -1

// Sentinel errors for shape library operations.
var (
	// ErrNotFound indicates a lookup found no matching shape.
	ErrNotFound = errors.New("shape: not found")
	// ErrUncurated indicates an operation required Solutions but the
	// shape has none yet.
	ErrUncurated = errors.New("shape: shape has no curated solutions")
	// ErrDuplicateSolution indicates a seeded solution already exists
	// for this shape.
	ErrDuplicateSolution = errors.New("shape: duplicate solution")
	// ErrBadParent indicates a parent id that does not refer to an
	// existing, earlier shape.
	ErrBadParent = errors.New("shape: parent id invalid")
)

// Shape is a canonicalized group polyomino together with its curated
// candidate solutions (if any), and its place in the specialization
// DAG.
//
// Group is the canonical, origin-translated, sorted coordinate list —
// the shape's identity. Solutions is nil for an uncurated shape;
// otherwise each entry is the subset of Group cells an operator has
// declared ACTIVE for that candidate (the complement is NOT_ACTIVE).
// Parent is NoParent for a top-level shape, or the id of the shape
// this one specializes. UsedSolutions records which of the parent's
// solution indices survived into this child.
type Shape struct {
	Group         []group.Coord
	Solutions     [][]group.Coord
	Parent        int
	UsedSolutions []int
}

// Curated reports whether the shape has a candidate solution list to
// drive propagation with (Solutions is non-nil). A non-nil empty list
// counts as curated.
func (s *Shape) Curated() bool {
	return s.Solutions != nil
}
