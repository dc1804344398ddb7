// Package wide provides a SIMD-friendly lane type for batch pixel processing.
//
// The package implements U16x8, eight 16-bit lanes held in a fixed-size
// array. By using fixed-size arrays and simple loops, the type allows the
// compiler to generate SIMD instructions on supported architectures
// (SSE2, NEON): eight 16-bit lanes are exactly one 128-bit vector.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Provide benchmarks to verify SIMD performance gains
//
// # Usage Example
//
//	// Replace dst lanes with src lanes where src has its alpha bit set.
//	alpha := wide.Splat8(alphaMask)
//	s := wide.Load8(src)
//	d := wide.Load8(dst)
//	noAlpha := s.And(alpha).MaskZero()
//	noAlpha.Select(d, s).Store(dst)
package wide
