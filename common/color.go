package common

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Lerp linearly interpolates between c and o by t in [0, 1].
//
// Parameters:
//   - o: the end color
//   - t: interpolation factor
//
// Returns:
//   - Color: the interpolated color
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
	}
}

// Vec4 returns the color as an RGBA array with the given alpha,
// in the layout GPU vertex data expects.
//
// Parameters:
//   - alpha: the alpha component
//
// Returns:
//   - [4]float32: {R, G, B, alpha}
func (c Color) Vec4(alpha float32) [4]float32 {
	return [4]float32{c.R, c.G, c.B, alpha}
}

// Luminance returns the perceptual brightness of the color using the
// Rec. 709 weights.
//
// Returns:
//   - float32: weighted brightness in [0, 1]
func (c Color) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}
