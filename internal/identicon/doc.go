// Package identicon generates deterministic 5x5 identicon images from input
// strings, in the style of default avatar generators.
//
// The pipeline is a fixed linear transformation: the input is hashed with MD5
// to a 16-byte digest; the first three digest bytes become the fill color; the
// first fifteen bytes are mirrored into a 25-cell grid; cells with even values
// are painted as 50x50 pixel squares on a 250x250 white canvas; the canvas is
// encoded as PNG. The same input always produces byte-identical output.
//
// # Coordinate System
//
// Grid cells are numbered 0-24 in row-major order. Cell geometry follows the
// standard Go image convention: a cell's rectangle is inclusive of its top-left
// corner and exclusive of its bottom-right corner, so the 25 cells tile the
// canvas exactly with no overlap.
//
// # Thread Safety
//
// All functions are pure and allocate fresh state per call; concurrent
// generation for different inputs needs no coordination.
//
// # Error Handling
//
// The pipeline is total over well-formed input. The only runtime error path is
// PNG encoding, which is propagated unchanged. Internal invariants (digest
// length, grid row width) are enforced by types or asserted with panics; they
// cannot fire given the fixed algorithm.
//
// MD5 is used as a content fingerprint only. It is not a security primitive
// here; determinism and byte distribution are the only requirements.
package identicon
