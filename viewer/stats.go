package viewer

import (
	"log"
	"runtime"
	"time"
)

// frameStats tracks frame rate, live point count, and heap usage, and
// logs a summary line at a fixed interval.
type frameStats struct {
	frameCount int
	lastTime   time.Time
	interval   time.Duration
	memStats   runtime.MemStats
}

func newFrameStats(interval time.Duration) *frameStats {
	return &frameStats{
		lastTime: time.Now(),
		interval: interval,
	}
}

// Tick records one frame and logs when the interval has elapsed.
//
// Parameters:
//   - points: the number of cloud points drawn this frame
//
// Returns:
//   - bool: true if stats were logged this tick
func (s *frameStats) Tick(points int) bool {
	s.frameCount++
	now := time.Now()
	elapsed := now.Sub(s.lastTime)
	if elapsed < s.interval {
		return false
	}

	fps := float64(s.frameCount) / elapsed.Seconds()
	runtime.ReadMemStats(&s.memStats)
	heapMB := float64(s.memStats.Alloc) / 1024 / 1024

	log.Printf("[viewer] FPS: %.1f | points: %d | heap: %.1f MB", fps, points, heapMB)

	s.frameCount = 0
	s.lastTime = now
	return true
}
