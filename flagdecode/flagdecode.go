// Package flagdecode implements the post-processor that recovers the
// embedded flag from a solved grid: row 5, sampled at a fixed column
// stride, each column's ACTIVE/NOT_ACTIVE value read as one bit.
package flagdecode

import (
	"fmt"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/tile"
)

const (
	row        = 5
	colStart   = 8427
	colEnd     = 17236
	colStep    = 24
	bitsPerByt = 8
)

// ErrUnclassifiedTile indicates a sampled column held neither ACTIVE
// nor NOT_ACTIVE, meaning the grid isn't fully solved at that cell.
var ErrUnclassifiedTile = fmt.Errorf("flagdecode: sampled column is neither ACTIVE nor NOT_ACTIVE")

// Decode reads row 5 of g at columns colStart..colEnd (step colStep,
// in descending order), classifies each as a bit, packs them into
// bytes (within a byte, the first-sampled column is the low bit), and
// reverses the byte order before formatting as CTF{...}.
func Decode(g *grid.Grid) (string, error) {
	var xs []int
	for x := colStart; x < colEnd; x += colStep {
		xs = append(xs, x)
	}
	// Reverse to sample in descending column order, per spec.
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}

	bits := make([]byte, 0, len(xs))
	for _, x := range xs {
		v, err := g.At(x, row)
		if err != nil {
			return "", fmt.Errorf("flagdecode: %w", err)
		}
		switch v {
		case tile.Active:
			bits = append(bits, 1)
		case tile.NotActive:
			bits = append(bits, 0)
		default:
			return "", fmt.Errorf("flagdecode: column %d: %w", x, ErrUnclassifiedTile)
		}
	}

	if len(bits)%bitsPerByt != 0 {
		return "", fmt.Errorf("flagdecode: %d sampled bits is not a whole number of bytes", len(bits))
	}
	raw := make([]byte, len(bits)/bitsPerByt)
	for i := range raw {
		var b byte
		for j := 0; j < bitsPerByt; j++ {
			b |= bits[i*bitsPerByt+j] << j
		}
		raw[i] = b
	}
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}

	return fmt.Sprintf("CTF{%s}", string(raw)), nil
}
