package loop

import "time"

// FPSCounter measures executed frames per second over one-second windows.
type FPSCounter struct {
	window time.Duration
	start  time.Time
	frames int
	rate   float64
}

// NewFPSCounter starts counting at now.
func NewFPSCounter(now time.Time) *FPSCounter {
	return &FPSCounter{window: time.Second, start: now}
}

// Frame records one executed frame. Once per window it returns the measured
// rate and true, then starts a new window.
func (c *FPSCounter) Frame(now time.Time) (float64, bool) {
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < c.window {
		return 0, false
	}
	c.rate = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return c.rate, true
}

// Rate returns the last measured rate, zero before the first window closes.
func (c *FPSCounter) Rate() float64 {
	return c.rate
}
