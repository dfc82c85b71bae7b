// Package common contains small shared helpers used throughout the
// visualization engine. They are plain functions and value types, not
// interface-wrapped components.
package common

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Clamp constrains v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to constrain
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float64: v clamped to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t in [0, 1].
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor
//
// Returns:
//   - float64: the interpolated value
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// IsFinite reports whether every component of v is a finite number.
// Sampling and bond geometry use this to keep NaN/Inf out of the
// render buffers.
//
// Parameters:
//   - v: the vector to check
//
// Returns:
//   - bool: true if all three components are finite
func IsFinite(v mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		f := float64(v[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// StablePerpendicular returns a unit vector perpendicular to axis.
// The world up vector (0,1,0) is used as the reference; when axis is
// near-parallel to it the reference switches to (1,0,0) so the cross
// product never degenerates.
//
// Parameters:
//   - axis: the direction to find a perpendicular for (need not be unit length)
//
// Returns:
//   - mgl32.Vec3: a unit vector with dot(result, axis) ≈ 0
func StablePerpendicular(axis mgl32.Vec3) mgl32.Vec3 {
	n := axis
	if l := n.Len(); l > 1e-8 {
		n = n.Mul(1 / l)
	} else {
		return mgl32.Vec3{1, 0, 0}
	}
	up := mgl32.Vec3{0, 1, 0}
	if math.Abs(float64(n.Dot(up))) > 0.9 {
		up = mgl32.Vec3{1, 0, 0}
	}
	return n.Cross(up).Normalize()
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}
