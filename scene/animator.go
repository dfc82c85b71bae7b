package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/atomvis-go/common"
)

// Animation tuning. All perturbations are pure functions of elapsed
// time and point index, computed from the immutable base positions, so
// repeated frames at the same timestamp produce identical buffers and
// nothing ever drifts.
const (
	phaseTimeScale = 0.8
	phaseNScale    = 1.3
	phaseLScale    = 0.7

	breathAmplitude = 0.04
	jitterAmplitude = 0.03

	opacityHighlighted = 0.7
	opacityDimmed      = 0.12
	opacityWave        = 0.08

	// Per-axis jitter frequencies and index strides, chosen mutually
	// irrational-ish so the three axes never lock step.
	jitterFreqX, jitterStrideX = 1.7, 0.91
	jitterFreqY, jitterStrideY = 2.3, 1.53
	jitterFreqZ, jitterStrideZ = 1.3, 2.17
)

// Animate advances every live cloud of the assembly to the given
// elapsed time: breathing scale around the base positions, per-point
// jitter, and opacity oscillation around the highlight-dependent base.
// Called once per render tick by the frame loop; a nil assembly is a
// no-op.
//
// Parameters:
//   - asm: the live assembly, may be nil
//   - elapsed: seconds since the scene was first shown
//   - state: the current visualization state
func Animate(asm *Assembly, elapsed float64, state VisualizationState) {
	if asm == nil {
		return
	}
	speed := state.AnimationSpeedFactor
	for _, c := range asm.Clouds {
		animateCloud(c, elapsed, speed, state.HighlightedSubshell)
	}
}

func animateCloud(c *OrbitalCloud, elapsed, speed float64, highlighted string) {
	if c == nil || c.Len() == 0 {
		return
	}

	phase := elapsed*speed*phaseTimeScale + float64(c.N)*phaseNScale + float64(c.L)*phaseLScale
	scale := float32(1 + breathAmplitude*math.Sin(phase))
	amp := jitterAmplitude * speed

	for i := range c.Points {
		rel := c.Base(i).Sub(c.Center)
		fi := float64(i)
		c.Points[i] = c.Center.Add(mgl32.Vec3{
			rel.X()*scale + float32(amp*math.Sin(elapsed*jitterFreqX+fi*jitterStrideX)),
			rel.Y()*scale + float32(amp*math.Sin(elapsed*jitterFreqY+fi*jitterStrideY)),
			rel.Z()*scale + float32(amp*math.Sin(elapsed*jitterFreqZ+fi*jitterStrideZ)),
		})
	}

	base := opacityDimmed
	if highlighted == HighlightAll || highlighted == c.Label {
		base = opacityHighlighted
	}
	c.Alpha = float32(common.Clamp(base+opacityWave*math.Sin(phase*0.5), 0, 1))
}
