//go:build !amd64 && !arm64

package simd

// Portable fallback bodies for targets without a 128-bit vector unit.

// And performs a bitwise AND of each lane.
func (v U32x4) And(other U32x4) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// Or performs a bitwise OR of each lane.
func (v U32x4) Or(other U32x4) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] | other[i]
	}
	return result
}

// Shl shifts each lane left by the immediate k.
func (v U32x4) Shl(k uint) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] << k
	}
	return result
}

// Shr shifts each lane right by the immediate k.
func (v U32x4) Shr(k uint) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] >> k
	}
	return result
}

// ToF32x4 converts each unsigned lane to float32.
func (v U32x4) ToF32x4() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(v[i])
	}
	return result
}

// ToU32x4 converts each lane to uint32, truncating toward zero.
func (v F32x4) ToU32x4() U32x4 {
	var result U32x4
	for i := range v {
		result[i] = uint32(v[i])
	}
	return result
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}
