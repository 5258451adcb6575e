// File: shape/seed.go
// The human curation interface: assigning letter codes to a shape's
// cells, and parsing an operator's typed active-cell letters into a
// candidate solution before handing it to Library.AddSolution.
package shape

import (
	"fmt"
	"sort"

	"github.com/vlaran/nurikabe/group"
)

// Alphabet is the ordered set of letter codes assignable to a shape's
// cells, per spec.md §6.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrAlphabetExhausted indicates a shape has more cells than Alphabet
// has letters.
var ErrAlphabetExhausted = fmt.Errorf("shape: group has more cells than the %d-letter alphabet", len(Alphabet))

// ErrUnknownLetter indicates a seed string referenced a letter not in
// Alphabet, or not assigned to this shape.
var ErrUnknownLetter = fmt.Errorf("shape: unknown letter code")

// ErrRepeatedLetter indicates a seed string named the same cell twice.
var ErrRepeatedLetter = fmt.Errorf("shape: repeated letter code")

// LetterMap assigns each cell of a shape's Group a letter code, in
// row-major traversal (Y ascending, then X ascending) of the group's
// bounding box, skipping cells outside the group.
func LetterMap(groupCells []group.Coord) (letterOf map[group.Coord]byte, cellOf map[byte]group.Coord, err error) {
	if len(groupCells) > len(Alphabet) {
		return nil, nil, ErrAlphabetExhausted
	}
	in := make(map[group.Coord]struct{}, len(groupCells))
	maxX, maxY := 0, 0
	minX, minY := groupCells[0].X, groupCells[0].Y
	for _, c := range groupCells {
		in[c] = struct{}{}
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}

	letterOf = make(map[group.Coord]byte, len(groupCells))
	cellOf = make(map[byte]group.Coord, len(groupCells))
	next := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := group.Coord{X: x, Y: y}
			if _, ok := in[c]; !ok {
				continue
			}
			letter := Alphabet[next]
			letterOf[c] = letter
			cellOf[letter] = c
			next++
		}
	}
	return letterOf, cellOf, nil
}

// ParseSolution decodes a string of letter codes (the active cells of
// one candidate solution) against a shape's letter map. It rejects
// duplicate letters and letters not assigned to this shape, before
// the caller ever writes anything to the library.
func ParseSolution(cellOf map[byte]group.Coord, letters string) ([]group.Coord, error) {
	seen := make(map[byte]struct{}, len(letters))
	active := make([]group.Coord, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		l := letters[i]
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("shape: letter %q at position %d: %w", l, i, ErrRepeatedLetter)
		}
		seen[l] = struct{}{}
		c, ok := cellOf[l]
		if !ok {
			return nil, fmt.Errorf("shape: letter %q at position %d: %w", l, i, ErrUnknownLetter)
		}
		active = append(active, c)
	}
	sort.Slice(active, func(i, j int) bool { return less(active[i], active[j]) })
	return active, nil
}
