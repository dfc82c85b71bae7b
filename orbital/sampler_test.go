package orbital

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/atomvis-go/common"
)

func TestSampleOrbitalCount(t *testing.T) {
	s := NewSampler(WithSource(NewSeededSource(42)))
	for _, count := range []int{1, 17, 500} {
		for l := 0; l <= 3; l++ {
			n := l + 1
			samples := s.SampleOrbital(n, l, 0, count)
			if len(samples) != count {
				t.Fatalf("(n=%d,l=%d): got %d samples, want %d", n, l, len(samples), count)
			}
		}
	}
	if got := s.SampleOrbital(2, 1, 0, 0); got != nil {
		t.Errorf("count=0 returned %d samples, want nil", len(got))
	}
	if got := s.SampleOrbital(2, 1, 0, -5); got != nil {
		t.Errorf("negative count returned %d samples", len(got))
	}
}

func TestSampleOrbitalFinitePositions(t *testing.T) {
	s := NewSampler(WithSource(NewSeededSource(9)))
	for n := 1; n <= 5; n++ {
		for l := 0; l < n && l <= 3; l++ {
			for m := -l; m <= l; m++ {
				for _, smp := range s.SampleOrbital(n, l, m, 200) {
					if !common.IsFinite(smp.Position) {
						t.Fatalf("(n=%d,l=%d,m=%d): non-finite position %v", n, l, m, smp.Position)
					}
					if smp.Density < 0 || smp.Density > 1 {
						t.Fatalf("(n=%d,l=%d,m=%d): density %f outside [0,1]", n, l, m, smp.Density)
					}
				}
			}
		}
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSampler(WithSource(NewSeededSource(1234)))
	b := NewSampler(WithSource(NewSeededSource(1234)))
	sa := a.SampleOrbital(3, 2, 1, 50)
	sb := b.SampleOrbital(3, 2, 1, 50)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("sample %d diverged: %v vs %v", i, sa[i], sb[i])
		}
	}
}

func TestPOrbitalLobeConcentration(t *testing.T) {
	// A pₓ cloud (l=1, m=+1) must put the bulk of its samples in regions
	// where |x| dominates; statistical shape only, no exact coordinates.
	s := NewSampler(WithSource(NewSeededSource(77)))
	samples := s.SampleOrbital(2, 1, 1, 3000)
	aligned := 0
	for _, smp := range samples {
		p := smp.Position
		r := p.Len()
		if r == 0 {
			continue
		}
		if math.Abs(float64(p[0]))/float64(r) > 0.5 {
			aligned++
		}
	}
	if frac := float64(aligned) / float64(len(samples)); frac < 0.75 {
		t.Errorf("pₓ lobe alignment fraction = %f, want > 0.75", frac)
	}
}

func TestSOrbitalShellRadius(t *testing.T) {
	// 1s samples should cluster near the shell scale, not at the
	// truncation boundary.
	s := NewSampler(WithSource(NewSeededSource(5)))
	samples := s.SampleOrbital(1, 0, 0, 2000)
	var mean float64
	for _, smp := range samples {
		mean += float64(smp.Position.Len())
	}
	mean /= float64(len(samples))
	scale := RadialScale(1)
	if mean < 0.2*scale || mean > 2.5*scale {
		t.Errorf("1s mean radius = %f, want near shell scale %f", mean, scale)
	}
}
