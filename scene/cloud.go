package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/atomvis-go/common"
)

// OrbitalCloud is one renderable point cloud for a single occupied
// (n, l, m) orbital, or for a bond cloud (tagged n=0, l=0).
//
// Points is the per-frame mutable buffer the renderer uploads; the
// animator rewrites it every tick from an immutable base snapshot, so
// perturbations never accumulate across frames.
type OrbitalCloud struct {
	// N, L, M are the quantum numbers of the orbital. Bond clouds use
	// zeros.
	N, L, M int

	// Electrons is the number of electrons assigned to this orbital.
	Electrons int

	// Label is the owning subshell label, e.g. "2p", or "bond".
	Label string

	// Points is the mutable render buffer.
	Points []mgl32.Vec3

	// Colors holds one tint per point.
	Colors []common.Color

	// Alpha is the current whole-cloud opacity, written by the
	// animator.
	Alpha float32

	// Center is the point the breathing scale expands around: the
	// owning nucleus position, or the bond midpoint.
	Center mgl32.Vec3

	// base is the immutable rest-state snapshot of Points.
	base []mgl32.Vec3
}

var _ Releaser = &OrbitalCloud{}

// newCloud builds a cloud and snapshots the base positions.
func newCloud(n, l, m, electrons int, label string, center mgl32.Vec3, points []mgl32.Vec3, colors []common.Color) *OrbitalCloud {
	base := make([]mgl32.Vec3, len(points))
	copy(base, points)
	return &OrbitalCloud{
		N:         n,
		L:         l,
		M:         m,
		Electrons: electrons,
		Label:     label,
		Points:    points,
		Colors:    colors,
		Alpha:     1,
		Center:    center,
		base:      base,
	}
}

// Base returns the rest-state position of point i.
//
// Parameters:
//   - i: the point index
//
// Returns:
//   - mgl32.Vec3: the base position
func (c *OrbitalCloud) Base(i int) mgl32.Vec3 {
	return c.base[i]
}

// Len returns the number of points in the cloud.
//
// Returns:
//   - int: the point count, 0 after release
func (c *OrbitalCloud) Len() int {
	return len(c.Points)
}

// Release drops the cloud's buffers. Safe to call repeatedly.
func (c *OrbitalCloud) Release() {
	c.Points = nil
	c.Colors = nil
	c.base = nil
}
