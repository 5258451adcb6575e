package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/tile"
)

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	_ = g.Set(0, 0, tile.Clue2)
	_ = g.Set(1, 0, tile.Unprocessed)
	_ = g.Set(2, 0, tile.Active)
	_ = g.Set(3, 0, tile.NotActive)
	_ = g.Set(0, 1, tile.Orange)
	_ = g.Set(1, 1, tile.Pink)
	return g
}

func TestPNGWritesDecodableImage(t *testing.T) {
	g := testGrid(t)
	path := filepath.Join(t.TempDir(), "window.png")

	if err := PNG(g, 0, 0, 4, 4, 3, path); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 12 || bounds.Dy() != 12 {
		t.Fatalf("image is %dx%d; want 12x12", bounds.Dx(), bounds.Dy())
	}

	// (0,0) holds Clue2 -> yellow.
	r, gr, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 0xFF || gr>>8 != 0xFF || b>>8 != 0x00 {
		t.Fatalf("clue-2 pixel = (%d,%d,%d); want yellow", r>>8, gr>>8, b>>8)
	}
	// (0,1) holds the orange landmark.
	r, gr, b, _ = img.At(1, 4).RGBA()
	if r>>8 != 0xE7 || gr>>8 != 0x8D || b>>8 != 0x0E {
		t.Fatalf("orange pixel = (%#x,%#x,%#x); want (0xE7,0x8D,0x0E)", r>>8, gr>>8, b>>8)
	}
}

func TestPNGRejectsOutOfBoundsWindow(t *testing.T) {
	g := testGrid(t)
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := PNG(g, 2, 2, 4, 4, 1, path); err == nil {
		t.Fatalf("expected out-of-bounds error")
	}
}

func TestANSIWindow(t *testing.T) {
	g := testGrid(t)
	var buf bytes.Buffer
	if err := ANSI(&buf, g, 1, 0, 1); err != nil {
		t.Fatalf("ANSI: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "window around (1,0)") {
		t.Fatalf("missing header in %q", out)
	}
	// Row above the center is outside the grid.
	if !strings.Contains(out, "~ ~ ~") {
		t.Fatalf("missing edge markers in %q", out)
	}
	// The window's middle row shows clue-2, unprocessed, active.
	if !strings.Contains(out, "2 ") || !strings.Contains(out, "# ") {
		t.Fatalf("missing tile glyphs in %q", out)
	}
}

func TestANSIRejectsOutOfBoundsCenter(t *testing.T) {
	g := testGrid(t)
	var buf bytes.Buffer
	if err := ANSI(&buf, g, 9, 9, 1); err == nil {
		t.Fatalf("expected out-of-bounds error")
	}
}
