package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/atomvis-go/common"
)

func testCloud(n, l int, label string, center mgl32.Vec3) *OrbitalCloud {
	points := []mgl32.Vec3{
		center.Add(mgl32.Vec3{1, 0, 0}),
		center.Add(mgl32.Vec3{0, 2, 0}),
		center.Add(mgl32.Vec3{0, 0, -3}),
	}
	colors := make([]common.Color, len(points))
	return newCloud(n, l, 0, 2, label, center, points, colors)
}

func TestAnimateIsDriftFree(t *testing.T) {
	asm := &Assembly{Clouds: []*OrbitalCloud{testCloud(2, 1, "2p", mgl32.Vec3{})}}
	state := DefaultState()

	Animate(asm, 3.7, state)
	first := append([]mgl32.Vec3(nil), asm.Clouds[0].Points...)

	// Visiting other timestamps in between must not leave residue.
	Animate(asm, 9.2, state)
	Animate(asm, 0.4, state)
	Animate(asm, 3.7, state)

	for i, p := range asm.Clouds[0].Points {
		if p != first[i] {
			t.Errorf("point %d drifted: %v vs %v", i, p, first[i])
		}
	}
}

func TestAnimatePerturbsAroundBase(t *testing.T) {
	c := testCloud(1, 0, "1s", mgl32.Vec3{})
	asm := &Assembly{Clouds: []*OrbitalCloud{c}}

	Animate(asm, 5.3, DefaultState())
	for i, p := range c.Points {
		d := p.Sub(c.Base(i)).Len()
		if d == 0 {
			t.Errorf("point %d unchanged at a non-zero timestamp", i)
		}
		// Breathing moves at most 4% of the radius, jitter at most
		// 0.03 per axis.
		limit := c.Base(i).Sub(c.Center).Len()*0.04 + 3*0.03
		if d > limit+1e-4 {
			t.Errorf("point %d moved %v, beyond perturbation budget %v", i, d, limit)
		}
	}
}

func TestAnimateScalesAroundCloudCenter(t *testing.T) {
	center := mgl32.Vec3{10, 0, 0}
	c := testCloud(1, 0, "1s", center)
	asm := &Assembly{Clouds: []*OrbitalCloud{c}}

	state := DefaultState()
	Animate(asm, 2.1, state)
	for i, p := range c.Points {
		want := c.Base(i).Sub(center).Len()
		got := p.Sub(center).Len()
		// Offset clouds breathe in place rather than swinging around
		// the world origin.
		if diff := got - want; diff > want*0.04+0.06 || diff < -(want*0.04 + 0.06) {
			t.Errorf("point %d at distance %v from center, rest distance %v", i, got, want)
		}
	}
}

func TestAnimateOpacityHighlighting(t *testing.T) {
	p2 := testCloud(2, 1, "2p", mgl32.Vec3{})
	s1 := testCloud(1, 0, "1s", mgl32.Vec3{})
	asm := &Assembly{Clouds: []*OrbitalCloud{s1, p2}}

	state := DefaultState()
	state.HighlightedSubshell = "2p"
	Animate(asm, 1.0, state)

	if p2.Alpha < 0.7-0.08-1e-4 || p2.Alpha > 0.7+0.08+1e-4 {
		t.Errorf("highlighted cloud alpha %v outside 0.7±0.08", p2.Alpha)
	}
	if s1.Alpha < 0.12-0.08-1e-4 || s1.Alpha > 0.12+0.08+1e-4 {
		t.Errorf("dimmed cloud alpha %v outside 0.12±0.08", s1.Alpha)
	}

	state.HighlightedSubshell = HighlightAll
	Animate(asm, 1.0, state)
	if s1.Alpha < 0.7-0.08-1e-4 {
		t.Errorf("highlight-all left cloud at alpha %v", s1.Alpha)
	}
}

func TestAnimateZeroTimeKeepsBase(t *testing.T) {
	c := testCloud(0, 0, "bond", mgl32.Vec3{})
	asm := &Assembly{Clouds: []*OrbitalCloud{c}}

	// At t=0 with n=l=0 the phase is zero, so breathing is identity
	// and jitter is zero only where sin of the index stride is zero.
	Animate(asm, 0, DefaultState())
	p := c.Points[0]
	if p != c.Base(0) {
		t.Errorf("index 0 at t=0 moved: %v vs %v", p, c.Base(0))
	}
}

func TestAnimateNilAndReleased(t *testing.T) {
	Animate(nil, 1, DefaultState())

	c := testCloud(1, 0, "1s", mgl32.Vec3{})
	c.Release()
	Animate(&Assembly{Clouds: []*OrbitalCloud{c}}, 1, DefaultState())
}
