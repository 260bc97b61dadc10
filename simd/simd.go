// Package simd provides the 4-wide vector values the rasterizer is written
// against: unsigned 32-bit lanes for packed BGRA pixels and float32 lanes
// for channel arithmetic.
//
// The types are fixed-size arrays and the operations are small value
// methods, so the compiler keeps them in registers and lowers the lane
// bodies to 128-bit vector instructions where the target has them. Two
// backends exist: an unrolled one for amd64 (SSE2) and arm64 (NEON), and a
// plain-loop fallback for everything else. No unsafe, no assembly.
//
// The op set is deliberately minimal. It is the entire surface the
// rasterizer needs: broadcast, bitwise and/or, shifts by immediate,
// u32<->f32 conversion, float add/sub/mul, and unaligned load/store.
package simd

// U32x4 represents 4 packed 32-bit pixels or masks.
type U32x4 [4]uint32

// F32x4 represents 4 float32 channel values.
type F32x4 [4]float32

// SplatU32 creates a U32x4 with all lanes set to n.
func SplatU32(n uint32) U32x4 {
	return U32x4{n, n, n, n}
}

// SplatF32 creates an F32x4 with all lanes set to n.
func SplatF32(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// LoadU32x4 reads 4 lanes from s starting at offset. No alignment is
// required; s must have at least offset+4 elements.
func LoadU32x4(s []uint32, offset int) U32x4 {
	_ = s[offset+3]
	return U32x4{s[offset], s[offset+1], s[offset+2], s[offset+3]}
}

// StoreU32x4 writes the 4 lanes of v into s starting at offset. No
// alignment is required; s must have at least offset+4 elements.
func StoreU32x4(s []uint32, offset int, v U32x4) {
	_ = s[offset+3]
	s[offset] = v[0]
	s[offset+1] = v[1]
	s[offset+2] = v[2]
	s[offset+3] = v[3]
}
