package blit

import "github.com/gogpu/blit/internal/wide"

// batchLanes is the vector group size: eight 16-bit pixels fill one
// 128-bit register.
const batchLanes = wide.Lanes

// CompositeRow composites src over dst for n pixels using the alpha
// bit as a binary visibility flag: dst[i] is replaced by src[i] where
// src[i] has its alpha bit set and left untouched where it does not.
// There is no blending.
//
// Pixels are processed in groups of [batchLanes] with a scalar loop
// for the remainder; both paths are bitwise identical. Building with
// the blit_nobatch tag removes the batch loop entirely.
//
// dst and src must each hold at least n pixels; bounding n against the
// real extents of both buffers is the caller's responsibility, as is
// serializing concurrent writes to overlapping dst ranges.
func CompositeRow(dst, src []Pixel, n int) {
	if n <= 0 {
		return
	}

	x := 0
	if batchRows {
		alpha := wide.Splat8(AlphaMask)
		for ; x+batchLanes <= n; x += batchLanes {
			s := wide.Load8(src[x:])
			d := wide.Load8(dst[x:])
			noAlpha := s.And(alpha).MaskZero()
			noAlpha.Select(d, s).Store(dst[x:])
		}
	}

	// Remaining pixels below one full group.
	compositeRowScalar(dst[x:], src[x:], n-x)
}

// compositeRowScalar is the per-element reference path. The batch loop
// in CompositeRow must match it bit for bit.
func compositeRowScalar(dst, src []Pixel, n int) {
	for i := 0; i < n; i++ {
		if src[i]&AlphaMask != 0 {
			dst[i] = src[i]
		}
	}
}

// MaskRGBRow clears the alpha and padding bits of the first n pixels
// of buf in place, leaving only the color channels. Applying it to an
// already-masked buffer is a no-op.
//
// Same batch/scalar structure and caller contract as [CompositeRow].
func MaskRGBRow(buf []Pixel, n int) {
	if n <= 0 {
		return
	}

	x := 0
	if batchRows {
		rgb := wide.Splat8(RGBMask)
		for ; x+batchLanes <= n; x += batchLanes {
			wide.Load8(buf[x:]).And(rgb).Store(buf[x:])
		}
	}

	maskRGBRowScalar(buf[x:], n-x)
}

// maskRGBRowScalar is the per-element reference path for MaskRGBRow.
func maskRGBRowScalar(buf []Pixel, n int) {
	for i := 0; i < n; i++ {
		buf[i] &= RGBMask
	}
}
