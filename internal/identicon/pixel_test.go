package identicon

import (
	"image"
	"testing"
)

func TestCellRect_KnownPositions(t *testing.T) {
	tests := []struct {
		index int
		want  image.Rectangle
	}{
		{0, image.Rect(0, 0, 50, 50)},
		{4, image.Rect(200, 0, 250, 50)},
		{5, image.Rect(0, 50, 50, 100)},
		{12, image.Rect(100, 100, 150, 150)},
		{24, image.Rect(200, 200, 250, 250)},
	}

	for _, tt := range tests {
		got := CellRect(tt.index)
		if got != tt.want {
			t.Errorf("CellRect(%d): got %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestCellRect_Bounds(t *testing.T) {
	canvas := image.Rect(0, 0, CanvasSize, CanvasSize)
	for i := 0; i < GridCells; i++ {
		r := CellRect(i)
		if r.Min.X < 0 || r.Min.X > 200 || r.Min.Y < 0 || r.Min.Y > 200 {
			t.Errorf("CellRect(%d): top-left %v out of range", i, r.Min)
		}
		if r.Max != r.Min.Add(image.Pt(CellSize, CellSize)) {
			t.Errorf("CellRect(%d): %v is not a %dx%d square", i, r, CellSize, CellSize)
		}
		if !r.In(canvas) {
			t.Errorf("CellRect(%d): %v outside canvas %v", i, r, canvas)
		}
	}
}

func TestCellRect_TilesCanvas(t *testing.T) {
	// Every canvas pixel belongs to exactly one cell rectangle.
	covered := make([]int, CanvasSize*CanvasSize)
	for i := 0; i < GridCells; i++ {
		r := CellRect(i)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				covered[y*CanvasSize+x]++
			}
		}
	}
	for p, n := range covered {
		if n != 1 {
			t.Fatalf("pixel (%d,%d) covered %d times", p%CanvasSize, p/CanvasSize, n)
		}
	}
}

func TestMapPixels(t *testing.T) {
	cells := []Cell{{Value: 2, Index: 0}, {Value: 4, Index: 7}, {Value: 0, Index: 24}}
	rects := MapPixels(cells)

	if len(rects) != len(cells) {
		t.Fatalf("rect count: got %d, want %d", len(rects), len(cells))
	}
	for i, c := range cells {
		if rects[i] != CellRect(c.Index) {
			t.Errorf("rect %d: got %v, want %v", i, rects[i], CellRect(c.Index))
		}
	}
}

func TestMapPixels_Empty(t *testing.T) {
	rects := MapPixels(nil)
	if len(rects) != 0 {
		t.Fatalf("expected no rectangles, got %d", len(rects))
	}
}
