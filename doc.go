// Package blit provides the pixel-level compositing core of a software
// blit engine.
//
// # Overview
//
// blit is a Pure Go CPU compositing library in the GoGPU family. It
// defines a packed ARGB1555 pixel format with a compile-time-validated
// layout, alpha-tested row compositing over pixel buffers, and the
// integer Point/Rect geometry used to compute clip regions for blits.
//
// # Quick Start
//
//	import "github.com/gogpu/blit"
//
//	dst := blit.NewImage(image.Rect(0, 0, 320, 240))
//	dst.Fill(dst.Bounds(), blit.FromARGB8(0xFF, 0x10, 0x20, 0x30))
//
//	// Composite a sprite; pixels with a clear alpha bit are skipped.
//	dst.DrawOver(sprite.Bounds().Add(image.Pt(40, 16)), sprite, sprite.Bounds().Min)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pixel, CompositeRow, MaskRGBRow, Point, Rect, Image
//   - Internal: wide (SIMD-friendly lane type for the batch row paths)
//   - cmd/blitdemo: a small compositing demo command
//
// # Pixel Format
//
// Pixels are 16-bit words: 1 alpha bit (bit 15), then 5 bits each of
// red (bits 10-14), green (bits 5-9) and blue (bits 0-4). The layout
// constants are validated at compile time; there is no runtime check.
// Alpha is a binary visibility flag, not a blend factor.
//
// # Performance
//
// Row operations process eight pixels per step through fixed-size
// arrays the compiler can auto-vectorize, with a scalar loop for the
// remainder. Both paths are bitwise identical; the blit_nobatch build
// tag forces the scalar path everywhere.
//
// All operations are synchronous pure functions over caller-owned
// buffers. Callers compositing concurrently must keep destination
// ranges disjoint.
package blit

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
