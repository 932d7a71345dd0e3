package core

import "time"

// DefaultFrameWindow is the interval over which frames are averaged.
const DefaultFrameWindow = time.Second

// FrameClock measures a smoothed frame rate by counting frames over a
// wall-clock window instead of using the instantaneous frame delta.
type FrameClock struct {
	window    time.Duration
	lastTime  time.Time
	numFrames int
	fps       int
	frameTime float32 // milliseconds
}

// NewFrameClock starts a clock at start. seedMs is the per-frame duration
// reported until the first window completes.
func NewFrameClock(start time.Time, window time.Duration, seedMs float32) *FrameClock {
	if window <= 0 {
		window = DefaultFrameWindow
	}
	fps := 0
	if seedMs > 0 {
		fps = int(1000 / seedMs)
	}
	return &FrameClock{
		window:    window,
		lastTime:  start,
		fps:       fps,
		frameTime: seedMs,
	}
}

// Tick records one presented frame at now. It returns true when a window
// has closed and FPS/FrameTime were recomputed.
func (c *FrameClock) Tick(now time.Time) bool {
	c.numFrames++
	elapsed := now.Sub(c.lastTime)
	if elapsed < c.window {
		return false
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	c.fps = int(1000 * float64(c.numFrames) / ms)
	c.frameTime = float32(ms / float64(c.numFrames))
	c.lastTime = now
	c.numFrames = 0
	return true
}

// FPS returns the frame rate measured over the last complete window.
func (c *FrameClock) FPS() int { return c.fps }

// FrameTime returns the average frame duration in milliseconds.
func (c *FrameClock) FrameTime() float32 { return c.frameTime }
