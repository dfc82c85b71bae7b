package scene

import "sync"

// Releaser frees a resource. Release must tolerate being called more
// than once.
type Releaser interface {
	Release()
}

// Arena owns every transient resource created during one rebuild and
// frees them as a single unit. A rebuild creates a fresh arena and
// releases the previous one, which is what keeps peak memory bounded
// and makes "no leaks across rebuilds" checkable.
type Arena struct {
	mu        *sync.Mutex
	resources []Releaser
	released  bool
}

// NewArena creates an empty arena.
//
// Returns:
//   - *Arena: the arena
func NewArena() *Arena {
	return &Arena{mu: &sync.Mutex{}}
}

// Track registers a resource for release. Tracking after release frees
// the resource immediately rather than leaking it.
//
// Parameters:
//   - r: the resource to own
func (a *Arena) Track(r Releaser) {
	if r == nil {
		return
	}
	a.mu.Lock()
	if a.released {
		a.mu.Unlock()
		r.Release()
		return
	}
	a.resources = append(a.resources, r)
	a.mu.Unlock()
}

// Release frees every tracked resource. Calling it again is a no-op.
func (a *Arena) Release() {
	a.mu.Lock()
	if a.released {
		a.mu.Unlock()
		return
	}
	a.released = true
	resources := a.resources
	a.resources = nil
	a.mu.Unlock()

	for _, r := range resources {
		r.Release()
	}
}

// Released reports whether the arena has been freed.
//
// Returns:
//   - bool: true once Release has run
func (a *Arena) Released() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.released
}

// Len returns the number of live tracked resources.
//
// Returns:
//   - int: the resource count, 0 after release
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.resources)
}
