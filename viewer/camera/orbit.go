// Package camera provides the orbit camera for the viewer: spherical
// coordinates around a target point with clamped elevation and radius,
// driven by mouse drag and scroll input.
package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits a target point. Drag rotates, scroll zooms, and
// Frame snaps to a deterministic eye/target pair computed by the scene
// assembler.
type OrbitCamera interface {
	// Frame moves the camera to look at target from eye, deriving the
	// spherical coordinates from the offset between them.
	//
	// Parameters:
	//   - eye: the camera position
	//   - target: the look-at point
	Frame(eye, target mgl32.Vec3)

	// Drag applies a mouse drag in pixels: horizontal motion changes
	// azimuth, vertical motion changes elevation.
	//
	// Parameters:
	//   - dx: horizontal pixel delta
	//   - dy: vertical pixel delta
	Drag(dx, dy float32)

	// Zoom moves the camera along the view ray. Positive delta zooms
	// in.
	//
	// Parameters:
	//   - delta: scroll wheel delta
	Zoom(delta float32)

	// Position returns the current camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// Target returns the current look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: the target
	Target() mgl32.Vec3

	// ViewProjection returns the combined view-projection matrix for
	// the given aspect ratio.
	//
	// Parameters:
	//   - aspect: viewport width over height
	//
	// Returns:
	//   - mgl32.Mat4: projection * view
	ViewProjection(aspect float32) mgl32.Mat4

	// Axes returns the camera's right and up vectors, used for point
	// sprite billboarding.
	//
	// Returns:
	//   - mgl32.Vec3: the right vector
	//   - mgl32.Vec3: the up vector
	Axes() (right, up mgl32.Vec3)
}

type orbitCamera struct {
	mu *sync.Mutex

	target    mgl32.Vec3
	radius    float32
	azimuth   float32
	elevation float32

	minRadius    float32
	maxRadius    float32
	maxElevation float32

	sensitivity float32
	zoomSpeed   float32

	fovY float32
	near float32
	far  float32
}

var _ OrbitCamera = &orbitCamera{}

// NewOrbitCamera creates an orbit camera with defaults sized for atom
// and molecule scenes.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - OrbitCamera: the newly created camera
func NewOrbitCamera(options ...OrbitCameraBuilderOption) OrbitCamera {
	c := &orbitCamera{
		mu:        &sync.Mutex{},
		radius:    30,
		elevation: float32(math.Pi / 8),

		minRadius:    2,
		maxRadius:    400,
		maxElevation: float32(math.Pi/2 - 0.05),

		sensitivity: 0.008,
		zoomSpeed:   1.8,

		fovY: float32(math.Pi / 4),
		near: 0.1,
		far:  1000,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *orbitCamera) Frame(eye, target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.target = target
	offset := eye.Sub(target)
	radius := offset.Len()
	if radius < c.minRadius {
		radius = c.minRadius
	}
	if radius > c.maxRadius {
		radius = c.maxRadius
	}
	c.radius = radius

	// Spherical decomposition matching position(): x = r·cosE·sinA,
	// y = r·sinE, z = r·cosE·cosA.
	c.elevation = clampElevation(float32(math.Asin(float64(offset.Y()/radius))), c.maxElevation)
	c.azimuth = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
}

func (c *orbitCamera) Drag(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.azimuth -= dx * c.sensitivity
	c.elevation = clampElevation(c.elevation+dy*c.sensitivity, c.maxElevation)
}

func (c *orbitCamera) Zoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.radius -= delta * c.zoomSpeed
	if c.radius < c.minRadius {
		c.radius = c.minRadius
	}
	if c.radius > c.maxRadius {
		c.radius = c.maxRadius
	}
}

func (c *orbitCamera) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.positionLocked()
}

func (c *orbitCamera) Target() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *orbitCamera) ViewProjection(aspect float32) mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := mgl32.LookAtV(c.positionLocked(), c.target, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(c.fovY, aspect, c.near, c.far)
	return proj.Mul4(view)
}

func (c *orbitCamera) Axes() (right, up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()

	backward := c.positionLocked().Sub(c.target).Normalize()
	right = mgl32.Vec3{0, 1, 0}.Cross(backward)
	if right.Len() < 1e-6 {
		right = mgl32.Vec3{1, 0, 0}
	} else {
		right = right.Normalize()
	}
	up = backward.Cross(right)
	return right, up
}

// positionLocked computes the eye from the spherical coordinates.
// Caller must hold the mutex.
func (c *orbitCamera) positionLocked() mgl32.Vec3 {
	cosE := float32(math.Cos(float64(c.elevation)))
	sinE := float32(math.Sin(float64(c.elevation)))
	cosA := float32(math.Cos(float64(c.azimuth)))
	sinA := float32(math.Sin(float64(c.azimuth)))
	return c.target.Add(mgl32.Vec3{
		c.radius * cosE * sinA,
		c.radius * sinE,
		c.radius * cosE * cosA,
	})
}

// clampElevation keeps the camera off the poles so the up vector never
// degenerates.
func clampElevation(e, limit float32) float32 {
	if e > limit {
		return limit
	}
	if e < -limit {
		return -limit
	}
	return e
}
