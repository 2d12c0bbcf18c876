package loop

import "time"

// DefaultFPS is the frame rate the scene was tuned for. Movement and orbit
// speeds are per frame, so running faster makes the game faster.
const DefaultFPS = 60

// Throttle gates frames to a fixed interval. Ticks that arrive early are
// dropped; there is no catch-up.
type Throttle struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// NewThrottle creates a throttle for fps frames per second.
// A non-positive fps lets every tick through. The interval is rounded up
// to the next nanosecond so frames never run faster than fps.
func NewThrottle(fps int) *Throttle {
	var interval time.Duration
	if fps > 0 {
		n := time.Duration(fps)
		interval = (time.Second + n - 1) / n
	}
	return &Throttle{interval: interval}
}

// Interval returns the minimum time between frames.
func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Ready reports whether a frame may run at now, and if so records now as
// the time of the last frame. The first call always succeeds.
func (t *Throttle) Ready(now time.Time) bool {
	if t.started && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	t.started = true
	return true
}
