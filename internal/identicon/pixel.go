package identicon

import (
	"fmt"
	"image"
)

const (
	// CellSize is the edge length of one grid cell in pixels.
	CellSize = 50

	// CanvasSize is the edge length of the rendered canvas in pixels.
	CanvasSize = gridSize * CellSize
)

// CellRect maps a grid index to its pixel rectangle on the canvas.
//
// The rectangle follows the standard Go image convention: Min is inclusive,
// Max is exclusive, so the bottom-right coordinate itself is not painted and
// the 25 cells tile the canvas exactly. An index outside 0-24 is an internal
// invariant violation.
func CellRect(index int) image.Rectangle {
	if index < 0 || index >= GridCells {
		panic(fmt.Sprintf("identicon: cell index %d outside grid", index))
	}
	x := (index % gridSize) * CellSize
	y := (index / gridSize) * CellSize
	return image.Rect(x, y, x+CellSize, y+CellSize)
}

// MapPixels converts surviving cells into their pixel rectangles, one per
// cell, in input order.
func MapPixels(cells []Cell) []image.Rectangle {
	rects := make([]image.Rectangle, 0, len(cells))
	for _, c := range cells {
		rects = append(rects, CellRect(c.Index))
	}
	return rects
}
