package wide

// U16x8 represents 8 16-bit lanes for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays:
// eight 16-bit lanes fill one 128-bit vector register (SSE2, NEON).
// The element type is generic so packed pixel types defined over uint16
// can be processed without per-lane conversions.
type U16x8[E ~uint16] [8]E

// Lanes is the number of elements in a U16x8.
const Lanes = 8

// Splat8 creates a U16x8 with all lanes set to v.
// This is useful for broadcasting a mask or constant.
func Splat8[E ~uint16](v E) U16x8[E] {
	var result U16x8[E]
	for i := range result {
		result[i] = v
	}
	return result
}

// Load8 loads the first 8 elements of s into a U16x8.
// s must have at least 8 elements.
func Load8[E ~uint16](s []E) U16x8[E] {
	var result U16x8[E]
	copy(result[:], s[:Lanes])
	return result
}

// Store writes the 8 lanes to the first 8 elements of s.
// s must have at least 8 elements.
func (v U16x8[E]) Store(s []E) {
	copy(s[:Lanes], v[:])
}

// And performs a lane-wise bitwise AND.
func (v U16x8[E]) And(other U16x8[E]) U16x8[E] {
	var result U16x8[E]
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// Or performs a lane-wise bitwise OR.
func (v U16x8[E]) Or(other U16x8[E]) U16x8[E] {
	var result U16x8[E]
	for i := range v {
		result[i] = v[i] | other[i]
	}
	return result
}

// MaskZero computes a lane-wise zero predicate: each lane becomes
// all-ones (0xFFFF) if it was zero and all-zeros otherwise.
// This mirrors a vector compare-equal against a zeroed register.
func (v U16x8[E]) MaskZero() U16x8[E] {
	var result U16x8[E]
	for i := range v {
		if v[i] == 0 {
			result[i] = ^E(0)
		}
	}
	return result
}

// Select blends t and f using v as a lane mask:
// lanes where v is all-ones take t, lanes where v is all-zeros take f.
// Equivalent to (v AND t) OR (v ANDNOT f) in vector terms.
// Lanes with mixed bits select bit-wise; callers normally pass masks
// produced by MaskZero.
func (v U16x8[E]) Select(t, f U16x8[E]) U16x8[E] {
	var result U16x8[E]
	for i := range v {
		result[i] = (v[i] & t[i]) | (^v[i] & f[i])
	}
	return result
}
