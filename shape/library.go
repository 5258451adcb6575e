// File: shape/library.go
// The shape library (C3) and its index (C4): an append-only arena of
// shapes plus a (canonical coords, parent) -> id lookup.
package shape

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/vlaran/nurikabe/group"
)

// Library is an append-only catalog of shapes, safe for concurrent
// reads and inserts. Shape ids are stable indices into the arena:
// once assigned, a shape is never renumbered or removed.
//
// The mutex matters only during the parallel shape-discovery scan
// (discover package); straight-line solving is single-threaded per
// spec, so the lock is never contended there.
type Library struct {
	mu     sync.RWMutex
	shapes []*Shape
	index  map[string]int
}

// New returns an empty Library.
func New() *Library {
	return &Library{index: make(map[string]int)}
}

func canonKey(canon []group.Coord, parent int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(parent))
	b.WriteByte('|')
	for _, c := range canon {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte(';')
	}
	return b.String()
}

// Lookup returns the id of the shape with this canonical coordinate
// list and parent (NoParent for a top-level shape), or false if none
// is registered yet.
func (l *Library) Lookup(canon []group.Coord, parent int) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	id, ok := l.index[canonKey(canon, parent)]
	return id, ok
}

// Register appends a new, uncurated shape and indexes it. parent must
// be NoParent or a previously assigned id (id < len(l.shapes) at the
// time of the call), preserving the "parent < self.id" invariant.
func (l *Library) Register(canon []group.Coord, parent int, used []int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if parent != NoParent && (parent < 0 || parent >= len(l.shapes)) {
		return 0, fmt.Errorf("shape: Register: parent=%d: %w", parent, ErrBadParent)
	}

	id := len(l.shapes)
	l.shapes = append(l.shapes, &Shape{
		Group:         canon,
		Parent:        parent,
		UsedSolutions: used,
	})
	l.index[canonKey(canon, parent)] = id
	return id, nil
}

// Get returns the shape with the given id, or nil if out of range.
func (l *Library) Get(id int) *Shape {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if id < 0 || id >= len(l.shapes) {
		return nil
	}
	return l.shapes[id]
}

// Len reports the number of shapes in the library.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.shapes)
}

// SetSolutions installs the curated candidate solution list for a
// shape, replacing any existing list without checking for duplicates.
// Neither the loader nor AddSolution goes through it; operator curation
// appends via AddSolution, which rejects duplicate solutions.
func (l *Library) SetSolutions(id int, solutions [][]group.Coord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id < 0 || id >= len(l.shapes) {
		return fmt.Errorf("shape: SetSolutions: id=%d: %w", id, ErrNotFound)
	}
	l.shapes[id].Solutions = solutions
	return nil
}

// AddSolution appends one curated candidate solution to a shape,
// rejecting it if an identical active-cell set is already present.
func (l *Library) AddSolution(id int, solution []group.Coord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id < 0 || id >= len(l.shapes) {
		return fmt.Errorf("shape: AddSolution: id=%d: %w", id, ErrNotFound)
	}
	s := l.shapes[id]
	sig := solutionSignature(solution)
	for _, existing := range s.Solutions {
		if solutionSignature(existing) == sig {
			return fmt.Errorf("shape: AddSolution: id=%d: %w", id, ErrDuplicateSolution)
		}
	}
	s.Solutions = append(s.Solutions, solution)
	return nil
}

func solutionSignature(cells []group.Coord) string {
	sorted := make([]group.Coord, len(cells))
	copy(sorted, cells)
	// Signature only needs a stable order, independent of caller order.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && less(sorted[j], sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	var b strings.Builder
	for _, c := range sorted {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte(';')
	}
	return b.String()
}

func less(a, b group.Coord) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// ValidateDAG checks invariants 4 and 5 over the whole library: shape
// ids are contiguous from 0, every parent id is strictly less than
// its child's id, and every child's Group is a proper subset of its
// parent's Group (both already expressed in the same origin-relative
// coordinates, since a child's canonical form is computed as a
// residual of the parent shape it specializes).
func (l *Library) ValidateDAG() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for id, s := range l.shapes {
		if s.Parent == NoParent {
			continue
		}
		if s.Parent < 0 || s.Parent >= id {
			return fmt.Errorf("shape: shape %d has parent %d, want 0<=parent<%d", id, s.Parent, id)
		}
		parent := l.shapes[s.Parent]
		parentSet := make(map[group.Coord]struct{}, len(parent.Group))
		for _, c := range parent.Group {
			parentSet[c] = struct{}{}
		}
		if len(s.Group) >= len(parent.Group) {
			return fmt.Errorf("shape: shape %d (%d cells) is not a proper subset of parent %d (%d cells)", id, len(s.Group), s.Parent, len(parent.Group))
		}
		for _, c := range s.Group {
			if _, ok := parentSet[c]; !ok {
				return fmt.Errorf("shape: shape %d cell %v is not in parent %d's group", id, c, s.Parent)
			}
		}
	}
	return nil
}
