package propagate

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/group"
	"github.com/vlaran/nurikabe/groupcache"
	"github.com/vlaran/nurikabe/shape"
	"github.com/vlaran/nurikabe/tile"
	"github.com/vlaran/nurikabe/uniqueness"
)

// TestClueDecrementCascade reproduces spec scenario 5: forcing one
// cell ACTIVE next to a clue of 2 decrements it to 1 and enqueues the
// clue's four neighbors (the just-committed cell is then skipped).
func TestClueDecrementCascade(t *testing.T) {
	g, _ := grid.New(3, 3)
	mustSet(t, g, 1, 1, tile.Clue2)
	mustSet(t, g, 1, 0, tile.Unprocessed)

	lib := shape.New()
	cache := groupcache.New()
	single := []group.Coord{{X: 0, Y: 0}}
	id, err := lib.Register(single, shape.NoParent, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := lib.SetSolutions(id, [][]group.Coord{{{X: 0, Y: 0}}}); err != nil {
		t.Fatalf("SetSolutions: %v", err)
	}

	engine := uniqueness.New(g, lib, cache)
	d := New(g, engine, zerolog.Nop())

	committed, err := d.Run([2]int{1, 0})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if committed != 1 {
		t.Fatalf("committed = %d; want 1", committed)
	}

	v, err := g.At(1, 0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if v != tile.Active {
		t.Fatalf("cell = %d; want ACTIVE", v)
	}
	clue, err := g.At(1, 1)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if clue != tile.Clue2-1 {
		t.Fatalf("clue = %d; want %d", clue, tile.Clue2-1)
	}
}

func TestSkipsNonUnprocessedSeed(t *testing.T) {
	g, _ := grid.New(1, 1)
	mustSet(t, g, 0, 0, tile.Background)
	lib := shape.New()
	engine := uniqueness.New(g, lib, groupcache.New())
	d := New(g, engine, zerolog.Nop())
	committed, err := d.Run([2]int{0, 0})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if committed != 0 {
		t.Fatalf("committed = %d; want 0", committed)
	}
}

func TestSkipsUncuratedShapeWithoutError(t *testing.T) {
	g, _ := grid.New(1, 1)
	mustSet(t, g, 0, 0, tile.Unprocessed)
	lib := shape.New()
	if _, err := lib.Register([]group.Coord{{X: 0, Y: 0}}, shape.NoParent, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
	engine := uniqueness.New(g, lib, groupcache.New())
	d := New(g, engine, zerolog.Nop())
	if _, err := d.Run([2]int{0, 0}); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestInconsistentGroupPropagatesAsFatal(t *testing.T) {
	g, _ := grid.New(2, 1)
	mustSet(t, g, 0, 0, tile.Clue1)
	mustSet(t, g, 1, 0, tile.Unprocessed)

	lib := shape.New()
	id, _ := lib.Register([]group.Coord{{X: 0, Y: 0}}, shape.NoParent, nil)
	if err := lib.SetSolutions(id, [][]group.Coord{{{X: 0, Y: 0}}}); err != nil {
		t.Fatalf("SetSolutions: %v", err)
	}
	engine := uniqueness.New(g, lib, groupcache.New())
	d := New(g, engine, zerolog.Nop())
	if _, err := d.Run([2]int{1, 0}); !errors.Is(err, uniqueness.ErrInconsistentGroup) {
		t.Fatalf("err = %v; want ErrInconsistentGroup", err)
	}
}

func mustSet(t *testing.T, g *grid.Grid, x, y int, v tile.Tile) {
	t.Helper()
	if err := g.Set(x, y, v); err != nil {
		t.Fatalf("Set(%d,%d,%d): %v", x, y, v, err)
	}
}
