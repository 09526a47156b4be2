package identicon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
)

// Background is the canvas fill behind unpainted cells. Opaque white keeps a
// fully blank identicon visible against common page backgrounds.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Render paints the given rectangles in the fill color onto a fresh 250x250
// canvas and returns the result encoded as PNG.
//
// All rectangles share the one color; an empty rectangle list yields a plain
// background-colored image. Encoding failure is the only error path and is
// propagated unchanged.
func Render(rects []image.Rectangle, fill color.NRGBA) ([]byte, error) {
	return encodePNG(renderImage(rects, fill))
}

// renderImage allocates the background canvas and fills each cell rectangle.
func renderImage(rects []image.Rectangle, fill color.NRGBA) *image.NRGBA {
	canvas := imaging.New(CanvasSize, CanvasSize, Background)
	src := image.NewUniform(fill)
	for _, r := range rects {
		draw.Draw(canvas, r, src, image.Point{}, draw.Src)
	}
	return canvas
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode identicon: %w", err)
	}
	return buf.Bytes(), nil
}
