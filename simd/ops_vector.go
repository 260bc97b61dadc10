//go:build amd64 || arm64

package simd

// Unrolled lane bodies. On amd64 the compiler lowers these to SSE2 and on
// arm64 to NEON; the fixed four-statement shape is what keeps the lowering
// reliable across both.

// And performs a bitwise AND of each lane.
func (v U32x4) And(other U32x4) U32x4 {
	return U32x4{v[0] & other[0], v[1] & other[1], v[2] & other[2], v[3] & other[3]}
}

// Or performs a bitwise OR of each lane.
func (v U32x4) Or(other U32x4) U32x4 {
	return U32x4{v[0] | other[0], v[1] | other[1], v[2] | other[2], v[3] | other[3]}
}

// Shl shifts each lane left by the immediate k.
func (v U32x4) Shl(k uint) U32x4 {
	return U32x4{v[0] << k, v[1] << k, v[2] << k, v[3] << k}
}

// Shr shifts each lane right by the immediate k.
func (v U32x4) Shr(k uint) U32x4 {
	return U32x4{v[0] >> k, v[1] >> k, v[2] >> k, v[3] >> k}
}

// ToF32x4 converts each unsigned lane to float32.
func (v U32x4) ToF32x4() F32x4 {
	return F32x4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// ToU32x4 converts each lane to uint32, truncating toward zero. Callers
// that want round-half-up add 0.5 first, matching scalar pixel packing.
func (v F32x4) ToU32x4() U32x4 {
	return U32x4{uint32(v[0]), uint32(v[1]), uint32(v[2]), uint32(v[3])}
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	return F32x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	return F32x4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	return F32x4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}
