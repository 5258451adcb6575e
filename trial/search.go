// File: trial/search.go
package trial

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/groupcache"
	"github.com/vlaran/nurikabe/propagate"
	"github.com/vlaran/nurikabe/shape"
	"github.com/vlaran/nurikabe/uniqueness"
)

// Solution is one viable completed branch: the fully-specialized
// overlay, ready to be applied onto a scratch grid and persisted.
type Solution struct {
	ID      string
	Overlay *Overlay
}

// branch is one node of the breadth-first search frontier: an overlay
// and group cache independent of its siblings, plus the split points
// still to be explored for it.
type branch struct {
	overlay *Overlay
	cache   *groupcache.Cache
	pending [][2]int
}

// Search explores the Cartesian product of candidate solutions over
// splitPoints, per spec.md §4.7. For every split point it forks one
// branch per candidate solution of that point's group, forcing the
// candidate entirely and re-running propagation; branches that signal
// inconsistency are dropped silently. Every branch that survives all
// split points is returned as a Solution.
func Search(base *grid.Grid, lib *shape.Library, baseCache *groupcache.Cache, splitPoints [][2]int, log zerolog.Logger) ([]Solution, error) {
	if len(splitPoints) == 0 {
		return nil, nil
	}

	root := branch{
		overlay: NewOverlay(base),
		cache:   baseCache.Clone(),
		pending: splitPoints,
	}
	frontier := []branch{root}
	var solutions []Solution

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		if len(cur.pending) == 0 {
			solutions = append(solutions, Solution{ID: uuid.NewString(), Overlay: cur.overlay})
			continue
		}

		x, y := cur.pending[0][0], cur.pending[0][1]
		rest := cur.pending[1:]

		_, _, shapeID, err := cur.cache.Resolve(cur.overlay, lib, x, y)
		if err != nil {
			return nil, fmt.Errorf("trial: resolving split point (%d,%d): %w", x, y, err)
		}
		sh := lib.Get(shapeID)
		if sh == nil {
			return nil, fmt.Errorf("trial: shape %d: %w", shapeID, shape.ErrNotFound)
		}
		if !sh.Curated() {
			log.Debug().Int("x", x).Int("y", y).Msg("split point has no curated solutions, skipping")
			continue
		}

		for idx := range sh.Solutions {
			child := branch{overlay: cur.overlay.Clone(), cache: cur.cache.Clone(), pending: rest}
			childEngine := uniqueness.New(child.overlay, lib, child.cache)

			result, err := childEngine.EvaluateForced(x, y, idx)
			if errors.Is(err, uniqueness.ErrInconsistentGroup) {
				log.Debug().Int("x", x).Int("y", y).Int("candidate", idx).Msg("branch abandoned: inconsistent")
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("trial: forcing candidate %d at (%d,%d): %w", idx, x, y, err)
			}

			driver := propagate.New(child.overlay, childEngine, log)
			if _, err := driver.CommitPatches(result.Patches); err != nil {
				return nil, fmt.Errorf("trial: committing forced candidate %d at (%d,%d): %w", idx, x, y, err)
			}
			if _, err := driver.Run(); err != nil {
				if errors.Is(err, uniqueness.ErrInconsistentGroup) {
					log.Debug().Int("x", x).Int("y", y).Int("candidate", idx).Msg("branch abandoned during cascade")
					continue
				}
				return nil, fmt.Errorf("trial: propagating from candidate %d at (%d,%d): %w", idx, x, y, err)
			}

			frontier = append(frontier, child)
		}
	}

	return solutions, nil
}

// Materialize applies a solution's overlay onto a fresh copy of base
// and returns the resulting grid, ready for persistence.
func Materialize(base *grid.Grid, sol Solution) (*grid.Grid, error) {
	scratch := base.Clone()
	if err := sol.Overlay.Apply(scratch); err != nil {
		return nil, err
	}
	return scratch, nil
}
