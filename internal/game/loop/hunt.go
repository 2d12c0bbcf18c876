// Package loop drives the egg hunt scene frame by frame without touching a
// window, GPU or audio device.
package loop

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/egghunt/internal/logger"
	"github.com/Faultbox/egghunt/internal/scene"
)

// Sounds plays the game's sound cues.
type Sounds interface {
	PlayCollect() error
	PlayWin() error
}

// Hunt runs the scene: throttling, update, render, FPS measurement and
// event reporting.
type Hunt struct {
	state    *scene.State
	throttle *Throttle
	fps      *FPSCounter
	sounds   Sounds
	start    time.Time
}

// NewHunt starts a hunt over s at now. seed is only logged.
func NewHunt(s *scene.State, seed uint64, fpsLimit int, sounds Sounds, now time.Time) *Hunt {
	h := &Hunt{
		state:    s,
		throttle: NewThrottle(fpsLimit),
		fps:      NewFPSCounter(now),
		sounds:   sounds,
		start:    now,
	}

	for i, e := range s.Eggs {
		logger.Debug("egg hidden", zap.Int("index", i), zap.Float32("x", e.Center.X()), zap.Float32("z", e.Center.Z()))
	}
	logger.Info("eggs hidden",
		zap.Int("eggs", len(s.Eggs)),
		zap.Uint64("seed", seed),
		zap.Duration("frame_interval", h.throttle.Interval()),
	)
	return h
}

// State returns the scene being hunted.
func (h *Hunt) State() *scene.State {
	return h.state
}

// FPS returns the last measured frame rate.
func (h *Hunt) FPS() float64 {
	return h.fps.Rate()
}

// Frame describes one tick of the loop.
type Frame struct {
	Ran      bool
	Result   scene.Result
	FPS      float64
	Measured bool // FPS holds a fresh measurement
}

// StatusChanged reports whether the title needs refreshing.
func (f Frame) StatusChanged() bool {
	return f.Measured || f.Result.Collected > 0 || f.Result.Won
}

// Tick runs one frame if the throttle allows it.
func (h *Hunt) Tick(in scene.Input, now time.Time, d scene.Drawer) Frame {
	if !h.throttle.Ready(now) {
		return Frame{}
	}

	f := Frame{Ran: true}
	f.Result = h.state.Update(in, now.Sub(h.start))
	h.report(f.Result, now)
	h.state.Render(d)

	f.FPS, f.Measured = h.fps.Frame(now)
	return f
}

func (h *Hunt) report(res scene.Result, now time.Time) {
	if res.Collected > 0 {
		p := h.state.Player.Center
		logger.Info("egg collected",
			zap.Int("collected", res.Collected),
			zap.Int("remaining", res.Remaining),
			zap.Float32("x", p.X()),
			zap.Float32("z", p.Z()),
		)
		h.play(h.sounds.PlayCollect)
	}
	if res.Won {
		logger.Info("all eggs found", zap.Duration("elapsed", now.Sub(h.start).Round(time.Millisecond)))
		h.play(h.sounds.PlayWin)
	}
}

func (h *Hunt) play(cue func() error) {
	if err := cue(); err != nil {
		logger.Debug("sound not played", zap.Error(err))
	}
}

// Title renders the window title from the scene status.
func Title(base string, remaining int, won bool, fps float64, showFPS bool) string {
	status := fmt.Sprintf("%d eggs left", remaining)
	switch {
	case won:
		status = "all eggs found!"
	case remaining == 1:
		status = "1 egg left"
	}

	t := base + " - " + status
	if showFPS {
		t += fmt.Sprintf(" - %.0f FPS", fps)
	}
	return t
}
