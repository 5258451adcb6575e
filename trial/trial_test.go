package trial

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/group"
	"github.com/vlaran/nurikabe/groupcache"
	"github.com/vlaran/nurikabe/shape"
	"github.com/vlaran/nurikabe/tile"
)

func TestOverlayReadThroughAndIsolation(t *testing.T) {
	base, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, base.Set(0, 0, tile.Unprocessed))

	o := NewOverlay(base)
	v, err := o.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, tile.Unprocessed, v, "read-through before any write")

	require.NoError(t, o.Set(0, 0, tile.Active))
	v, _ = o.At(0, 0)
	require.Equal(t, tile.Active, v)

	baseVal, _ := base.At(0, 0)
	require.Equal(t, tile.Unprocessed, baseVal, "overlay write must not reach the shared base")
}

func TestOverlayCloneIndependence(t *testing.T) {
	base, err := grid.New(1, 1)
	require.NoError(t, err)
	o := NewOverlay(base)
	require.NoError(t, o.Set(0, 0, tile.Active))

	clone := o.Clone()
	require.NoError(t, clone.Set(0, 0, tile.NotActive))

	v, _ := o.At(0, 0)
	require.Equal(t, tile.Active, v, "cloning leaked a write back into the parent overlay")
}

func TestSearchForksOneBranchPerCandidate(t *testing.T) {
	base, err := grid.New(2, 1)
	require.NoError(t, err)
	require.NoError(t, base.Set(0, 0, tile.Unprocessed))
	require.NoError(t, base.Set(1, 0, tile.Unprocessed))

	lib := shape.New()
	domino := []group.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}
	id, err := lib.Register(domino, shape.NoParent, nil)
	require.NoError(t, err)
	require.NoError(t, lib.SetSolutions(id, [][]group.Coord{
		{{X: 0, Y: 0}},
		{{X: 1, Y: 0}},
	}))

	solutions, err := Search(base, lib, groupcache.New(), [][2]int{{0, 0}}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, solutions, 2)

	for _, sol := range solutions {
		require.NotEmpty(t, sol.ID)
		result, err := Materialize(base, sol)
		require.NoError(t, err)
		v0, _ := result.At(0, 0)
		v1, _ := result.At(1, 0)
		require.NotEqual(t, v0, v1, "each branch commits exactly one ACTIVE cell")
	}
}

func TestSearchDropsInconsistentBranches(t *testing.T) {
	base, err := grid.New(2, 1)
	require.NoError(t, err)
	require.NoError(t, base.Set(0, 0, tile.Clue1))
	require.NoError(t, base.Set(1, 0, tile.Unprocessed))

	lib := shape.New()
	single := []group.Coord{{X: 0, Y: 0}}
	id, err := lib.Register(single, shape.NoParent, nil)
	require.NoError(t, err)
	// This cell being ACTIVE would decrement the clue below 1: always
	// inconsistent, so every branch should be silently dropped.
	require.NoError(t, lib.SetSolutions(id, [][]group.Coord{{{X: 0, Y: 0}}}))

	solutions, err := Search(base, lib, groupcache.New(), [][2]int{{1, 0}}, zerolog.Nop())
	require.NoError(t, err)
	require.Empty(t, solutions, "every branch is inconsistent")
}

// TestMaterializeMatchesDirectWrites checks the replay law: a branch
// committed via the overlay, then materialized, equals the grid
// produced by making the same writes directly.
func TestMaterializeMatchesDirectWrites(t *testing.T) {
	base, err := grid.New(2, 1)
	require.NoError(t, err)
	require.NoError(t, base.Set(0, 0, tile.Unprocessed))
	require.NoError(t, base.Set(1, 0, tile.Unprocessed))

	o := NewOverlay(base)
	require.NoError(t, o.Set(0, 0, tile.Active))
	require.NoError(t, o.Set(1, 0, tile.NotActive))

	materialized, err := Materialize(base, Solution{ID: "x", Overlay: o})
	require.NoError(t, err)

	direct := base.Clone()
	require.NoError(t, direct.Set(0, 0, tile.Active))
	require.NoError(t, direct.Set(1, 0, tile.NotActive))

	for x := 0; x < 2; x++ {
		wv, _ := direct.At(x, 0)
		gv, _ := materialized.At(x, 0)
		require.Equal(t, wv, gv, "cell (%d,0)", x)
	}
}
