package identicon

import (
	"crypto/md5"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HashInput returns the 16-byte MD5 digest of the input string.
//
// The digest is a deterministic content fingerprint: identical input always
// yields identical bytes. The fixed-size return type carries the length
// invariant through the rest of the pipeline.
func HashInput(input string) [md5.Size]byte {
	return md5.Sum([]byte(input))
}

// PickColor derives the identicon fill color from the first three digest
// bytes, used as R, G and B unchanged. Alpha is always fully opaque.
func PickColor(digest [md5.Size]byte) color.NRGBA {
	return color.NRGBA{R: digest[0], G: digest[1], B: digest[2], A: 255}
}

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorInfo contains the derived fill color in multiple representations.
//
// The painted pixels always use the raw RGB values; Hex and HSL are reporting
// conveniences for CLI output and callers that want a readable form.
type ColorInfo struct {
	Hex string   `json:"hex"` // Hex format "#rrggbb"
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// DescribeColor converts a fill color into its multi-format summary.
func DescribeColor(c color.NRGBA) ColorInfo {
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	h, s, l := cf.Hsl()

	return ColorInfo{
		Hex: cf.Hex(),
		RGB: RGBColor{R: c.R, G: c.G, B: c.B},
		HSL: HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}
