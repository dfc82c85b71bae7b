package scene

import "testing"

type countingResource struct {
	releases int
}

func (r *countingResource) Release() { r.releases++ }

func TestArenaReleasesTrackedResources(t *testing.T) {
	a := NewArena()
	res := make([]*countingResource, 5)
	for i := range res {
		res[i] = &countingResource{}
		a.Track(res[i])
	}
	if a.Len() != 5 {
		t.Fatalf("tracked %d resources, want 5", a.Len())
	}

	a.Release()
	for i, r := range res {
		if r.releases != 1 {
			t.Errorf("resource %d released %d times, want 1", i, r.releases)
		}
	}
	if !a.Released() {
		t.Error("arena should report released")
	}
	if a.Len() != 0 {
		t.Errorf("released arena still holds %d resources", a.Len())
	}
}

func TestArenaDoubleReleaseIsSafe(t *testing.T) {
	a := NewArena()
	r := &countingResource{}
	a.Track(r)

	a.Release()
	a.Release()
	if r.releases != 1 {
		t.Errorf("resource released %d times after double arena release, want 1", r.releases)
	}
}

func TestArenaTrackAfterRelease(t *testing.T) {
	a := NewArena()
	a.Release()

	r := &countingResource{}
	a.Track(r)
	if r.releases != 1 {
		t.Error("tracking into a released arena should free immediately")
	}
	if a.Len() != 0 {
		t.Error("released arena should not retain late resources")
	}
}

func TestArenaTracksNilSafely(t *testing.T) {
	a := NewArena()
	a.Track(nil)
	if a.Len() != 0 {
		t.Error("nil resource should not be tracked")
	}
	a.Release()
}
