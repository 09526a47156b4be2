package identicon

import (
	"crypto/md5"
	"fmt"
)

const (
	gridSize = 5

	// GridCells is the number of logical cells in the identicon grid.
	GridCells = gridSize * gridSize
)

// Cell pairs one grid value with its fixed row-major position (0-24).
//
// The index is assigned once during grid construction and never reused or
// reordered; after filtering it is the only field the pipeline still reads.
type Cell struct {
	Value uint8 `json:"value"`
	Index int   `json:"index"`
}

// BuildGrid expands the digest into the 25-cell mirrored grid.
//
// The last digest byte is dropped so the remaining fifteen split evenly into
// five rows of three. Each row [a b c] is mirrored about its center to
// [a b c b a], making every row palindromic, and the rows are flattened in
// order with each value paired to its position in the flat sequence.
func BuildGrid(digest [md5.Size]byte) []Cell {
	cells := make([]Cell, 0, GridCells)
	for row := 0; row < gridSize; row++ {
		mirrored := mirrorRow(digest[row*3 : row*3+3])
		for col := 0; col < gridSize; col++ {
			cells = append(cells, Cell{
				Value: mirrored[col],
				Index: row*gridSize + col,
			})
		}
	}
	return cells
}

// mirrorRow reflects a three-byte chunk about its center: [a b c] -> [a b c b a].
// Any other chunk length is an internal invariant violation.
func mirrorRow(chunk []byte) [gridSize]uint8 {
	if len(chunk) != 3 {
		panic(fmt.Sprintf("identicon: grid row must be 3 bytes, got %d", len(chunk)))
	}
	return [gridSize]uint8{chunk[0], chunk[1], chunk[2], chunk[1], chunk[0]}
}

// FilterEven keeps the cells whose value is even, preserving order.
//
// These are the cells that get painted. An empty result is legal and produces
// a blank identicon.
func FilterEven(cells []Cell) []Cell {
	kept := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if c.Value%2 == 0 {
			kept = append(kept, c)
		}
	}
	return kept
}
