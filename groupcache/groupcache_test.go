package groupcache

import (
	"path/filepath"
	"testing"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/group"
	"github.com/vlaran/nurikabe/shape"
	"github.com/vlaran/nurikabe/tile"
)

func buildGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, _ := grid.New(3, 1)
	for x := 0; x < 3; x++ {
		if err := g.Set(x, 0, tile.Unprocessed); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	return g
}

func TestPackUnpackKeyRoundTrip(t *testing.T) {
	cases := [][2]int{{0, 0}, {5, 9}, {-1, 2}, {17267, 90299}}
	for _, c := range cases {
		k := packKey(c[0], c[1])
		gx, gy := unpackKey(k)
		if gx != c[0] || gy != c[1] {
			t.Fatalf("roundtrip(%v) = (%d,%d)", c, gx, gy)
		}
	}
}

func TestResolveCachesWholeGroup(t *testing.T) {
	g := buildGrid(t)
	lib := shape.New()
	tromino := []group.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if _, err := lib.Register(tromino, shape.NoParent, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}

	c := New()
	ox, oy, id, err := c.Resolve(g, lib, 1, 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ox != 0 || oy != 0 || id != 0 {
		t.Fatalf("Resolve = (%d,%d,%d); want (0,0,0)", ox, oy, id)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d; want 3 (whole group cached)", c.Len())
	}

	ox2, oy2, id2, err := c.Resolve(g, lib, 2, 0)
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if ox2 != ox || oy2 != oy || id2 != id {
		t.Fatalf("cached resolution mismatch")
	}
}

func TestResolveMissingShape(t *testing.T) {
	g := buildGrid(t)
	lib := shape.New()
	c := New()
	if _, _, _, err := c.Resolve(g, lib, 0, 0); err == nil {
		t.Fatalf("expected ErrMissingShape when no shape is registered")
	}
}

func TestRemapRebindsResidual(t *testing.T) {
	c := New()
	c.m[packKey(1, 0)] = Entry{OriginX: 0, OriginY: 0, ShapeID: 0}
	c.Remap(0, 0, []group.Coord{{X: 1, Y: 0}}, 7)
	e, ok := c.Get(1, 0)
	if !ok || e.ShapeID != 7 {
		t.Fatalf("Remap did not rebind: %+v, %v", e, ok)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	c.m[packKey(0, 0)] = Entry{OriginX: 0, OriginY: 0, ShapeID: 1}
	clone := c.Clone()
	clone.m[packKey(0, 0)] = Entry{OriginX: 0, OriginY: 0, ShapeID: 2}
	if c.m[packKey(0, 0)].ShapeID != 1 {
		t.Fatalf("mutating clone affected original")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := New()
	c.m[packKey(3, 4)] = Entry{OriginX: 1, OriginY: 2, ShapeID: 9}
	path := filepath.Join(t.TempDir(), "cached_groups.bin")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	e, ok := loaded.Get(3, 4)
	if !ok || e.OriginX != 1 || e.OriginY != 2 || e.ShapeID != 9 {
		t.Fatalf("loaded entry = %+v, %v", e, ok)
	}
}
