// Package tile defines the fixed tile alphabet shared by every package in
// this module: the grid store, the flood-fill normalizer, the uniqueness
// engine, the propagation driver, and the rendering tools all agree on
// these byte values rather than redefining them locally.
package tile

// Tile is a single grid cell's byte-valued state.
type Tile = byte

// The legal tile alphabet. Values outside this set make a grid invalid.
const (
	Background  Tile = 0
	Clue1       Tile = 1
	Clue2       Tile = 2
	Clue3       Tile = 3
	Unprocessed Tile = 5
	NotActive   Tile = 6
	Active      Tile = 7
	Orange      Tile = 8
	Pink        Tile = 10
)

// IsClue reports whether v is a clue tile (remaining-active-neighbor count).
func IsClue(v Tile) bool {
	return v == Clue1 || v == Clue2 || v == Clue3
}

// Valid reports whether v belongs to the legal tile alphabet.
func Valid(v Tile) bool {
	switch v {
	case Background, Clue1, Clue2, Clue3, Unprocessed, NotActive, Active, Orange, Pink:
		return true
	default:
		return false
	}
}
