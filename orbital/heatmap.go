package orbital

import "github.com/Carmen-Shannon/atomvis-go/common"

// Heatmap ramp stops: deep purple → magenta → orange → yellow → white,
// with knots at 0.25, 0.5, and 0.75. A perceptual brightness ramp for
// density shading; brightness is monotonic across all four segments.
var heatmapStops = [5]common.Color{
	{R: 0.16, G: 0.01, B: 0.26}, // deep purple
	{R: 0.85, G: 0.10, B: 0.60}, // magenta
	{R: 1.00, G: 0.55, B: 0.10}, // orange
	{R: 1.00, G: 0.95, B: 0.25}, // yellow
	{R: 1.00, G: 1.00, B: 1.00}, // white
}

// DensityToColor maps a normalized density to the 4-segment heatmap
// ramp. Input is clamped to [0, 1] before mapping. Pure and stateless.
//
// Parameters:
//   - t: normalized density
//
// Returns:
//   - common.Color: the ramp color at t
func DensityToColor(t float64) common.Color {
	t = common.Clamp(t, 0, 1)
	if t >= 1 {
		return heatmapStops[4]
	}
	scaled := t * 4
	seg := int(scaled)
	frac := float32(scaled - float64(seg))
	return heatmapStops[seg].Lerp(heatmapStops[seg+1], frac)
}
