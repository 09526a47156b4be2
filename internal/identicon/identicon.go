package identicon

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// Generate runs the full pipeline for one input string and returns the
// identicon as PNG bytes at the native 250x250 size.
//
// The call is pure: the same input always returns byte-identical output, and
// concurrent calls for different inputs share no state.
func Generate(input string) ([]byte, error) {
	return GenerateSized(input, CanvasSize)
}

// GenerateSized renders the identicon and scales it to size x size pixels.
//
// Scaling uses nearest-neighbor resampling so cell edges stay hard; any
// interpolating filter would blur the block pattern. A non-positive size is
// rejected.
func GenerateSized(input string, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid identicon size %d", size)
	}

	digest := HashInput(input)
	fill := PickColor(digest)
	rects := MapPixels(FilterEven(BuildGrid(digest)))

	var img image.Image = renderImage(rects, fill)
	if size != CanvasSize {
		img = transform.Resize(img, size, size, transform.NearestNeighbor)
	}
	return encodePNG(img)
}

// Summary reports what an identicon contains without rendering it.
type Summary struct {
	Input string    `json:"input"` // The original input string
	Color ColorInfo `json:"color"` // Derived fill color in multiple formats
	Cells []int     `json:"cells"` // Surviving grid indices, row-major order
}

// Summarize computes the derived color and the surviving cell indices for an
// input string. It runs the same hash, grid and filter stages as Generate but
// skips rasterization.
func Summarize(input string) *Summary {
	digest := HashInput(input)
	kept := FilterEven(BuildGrid(digest))

	indices := make([]int, 0, len(kept))
	for _, c := range kept {
		indices = append(indices, c.Index)
	}

	return &Summary{
		Input: input,
		Color: DescribeColor(PickColor(digest)),
		Cells: indices,
	}
}
