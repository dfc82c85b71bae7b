package camera

// OrbitCameraBuilderOption configures an orbit camera during
// construction.
type OrbitCameraBuilderOption func(*orbitCamera)

// WithRadiusLimits sets the zoom clamps. Ignored unless
// 0 < min < max.
//
// Parameters:
//   - min: the closest orbit radius
//   - max: the farthest orbit radius
//
// Returns:
//   - OrbitCameraBuilderOption: the option
func WithRadiusLimits(min, max float32) OrbitCameraBuilderOption {
	return func(c *orbitCamera) {
		if min > 0 && max > min {
			c.minRadius = min
			c.maxRadius = max
		}
	}
}

// WithSensitivity sets the drag-to-radians factor.
//
// Parameters:
//   - s: radians per pixel of drag
//
// Returns:
//   - OrbitCameraBuilderOption: the option
func WithSensitivity(s float32) OrbitCameraBuilderOption {
	return func(c *orbitCamera) {
		if s > 0 {
			c.sensitivity = s
		}
	}
}

// WithZoomSpeed sets the scroll-to-distance factor.
//
// Parameters:
//   - s: world units per scroll step
//
// Returns:
//   - OrbitCameraBuilderOption: the option
func WithZoomSpeed(s float32) OrbitCameraBuilderOption {
	return func(c *orbitCamera) {
		if s > 0 {
			c.zoomSpeed = s
		}
	}
}

// WithClipPlanes sets the projection near and far planes. Ignored
// unless 0 < near < far.
//
// Parameters:
//   - near: the near clip distance
//   - far: the far clip distance
//
// Returns:
//   - OrbitCameraBuilderOption: the option
func WithClipPlanes(near, far float32) OrbitCameraBuilderOption {
	return func(c *orbitCamera) {
		if near > 0 && far > near {
			c.near = near
			c.far = far
		}
	}
}
