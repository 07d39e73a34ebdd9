// Package hqx magnifies pixel art by 2×, 3× or 4× with the hqx family of
// edge-preserving filters.
//
// # Overview
//
// Every source pixel becomes an N×N block. The block is chosen by looking
// at the pixel's eight neighbours: each one is classified as alike or
// different from the centre by comparing luma and chroma against
// thresholds, and the resulting 8-bit pattern selects a blend recipe for
// every pixel of the block. Edges between distinct colours stay sharp and
// diagonals come out smooth, where plain scaling would produce staircases.
//
// # Quick Start
//
//	import "github.com/greenshot/hqx"
//
//	src := hqx.FromImage(sprite)
//	dst, err := hqx.Magnify(src, 4)
//	if err != nil {
//		return err
//	}
//	out, _ := dst.ToNRGBA()
//
// Callers already holding an image.Image can use MagnifyImage instead.
//
// # Options
//
// Thresholds, edge handling and parallelism are set with functional
// options:
//
//	dst, err := hqx.Magnify(src, 3,
//		hqx.WithWrap(true, true),      // tile seamlessly
//		hqx.WithThresholds(hqx.Thresholds{Y: 32, U: 7, V: 6}),
//		hqx.WithWorkers(4),
//	)
//
// # Colour table
//
// Classification uses a 64 MiB lookup table from RGB to YUV, built on the
// first call and shared by all later ones. UnloadTable releases it.
// Tests and one-off conversions can avoid it with WithTable(DirectConverter).
//
// # Concurrency
//
// Magnify is safe for concurrent use. Large images are split into bands of
// rows that are magnified in parallel; images shorter than 64 rows are
// processed on the calling goroutine.
package hqx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
