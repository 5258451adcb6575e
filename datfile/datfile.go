// Package datfile unpacks the original packed ".dat" grid format into
// an in-memory grid.Grid: an 8-byte little-endian (width, height)
// header followed by one nibble per tile, two tiles per byte.
package datfile

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/tile"
)

// Width and Height are the known dimensions of the puzzle this module
// targets. Unpack does not require them — it trusts the file header —
// but the CLI uses them as defaults and as a sanity check.
const (
	Width  = 17268
	Height = 90300
)

// Unpack reads a packed .dat file and returns the equivalent grid.Grid.
// The high nibble of body byte i is the tile at linear index 2i; the
// low nibble is the tile at linear index 2i+1.
func Unpack(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datfile: read %s: %w", path, err)
	}
	if len(data) < 8 {
		return nil, fmt.Errorf("datfile: %s shorter than an 8-byte header", path)
	}
	width := int(binary.LittleEndian.Uint32(data[0:4]))
	height := int(binary.LittleEndian.Uint32(data[4:8]))

	body := data[8:]
	wantBodyLen := (width * height) / 2
	if len(body) != wantBodyLen {
		return nil, fmt.Errorf("datfile: %s body is %d bytes, want %d for %dx%d", path, len(body), wantBodyLen, width, height)
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("datfile: %w", err)
	}

	total := width * height
	for i := 0; i < total; i++ {
		byteIdx := i / 2
		var v tile.Tile
		if i%2 == 0 {
			v = body[byteIdx] >> 4
		} else {
			v = body[byteIdx] & 0x0F
		}
		if !tile.Valid(v) {
			x, y := i%width, i/width
			return nil, fmt.Errorf("datfile: %s cell %d at (%d,%d) decodes to illegal tile %d", path, i, x, y, v)
		}
		x, y := i%width, i/width
		if err := g.Set(x, y, v); err != nil {
			return nil, fmt.Errorf("datfile: %w", err)
		}
	}
	return g, nil
}
