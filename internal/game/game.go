// Package game implements the main game loop around the egg hunt scene.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/egghunt/internal/config"
	"github.com/Faultbox/egghunt/internal/engine/audio"
	"github.com/Faultbox/egghunt/internal/engine/debug"
	"github.com/Faultbox/egghunt/internal/engine/input"
	"github.com/Faultbox/egghunt/internal/engine/lighting"
	"github.com/Faultbox/egghunt/internal/engine/renderer"
	"github.com/Faultbox/egghunt/internal/engine/window"
	"github.com/Faultbox/egghunt/internal/game/loop"
	"github.com/Faultbox/egghunt/internal/logger"
	"github.com/Faultbox/egghunt/internal/scene"
)

// Title is the base window title.
const Title = "Egg Hunt"

// idleSleep is how long the loop yields when the throttle drops a tick.
const idleSleep = time.Millisecond

// Game is the main game instance.
type Game struct {
	config   *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager
	shots    *debug.ScreenshotCapture
	hunt     *loop.Hunt
}

// New creates the scene, window, renderer, input and audio.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("fps_limit", cfg.Graphics.FPSLimit),
	)

	g := &Game{config: cfg}

	bindings, err := input.ParseBindings(controls(cfg.Controls))
	if err != nil {
		return nil, fmt.Errorf("controls: %w", err)
	}
	shotKey, err := input.ParseKey(cfg.Controls.Screenshot)
	if err != nil {
		return nil, fmt.Errorf("controls: screenshot: %w", err)
	}
	g.shots, err = debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "egghunt", cfg.Graphics.ScreenshotFormat)
	if err != nil {
		return nil, err
	}

	// Build the scene before any window exists so bad meshes fail fast.
	state, seed, err := newScene(cfg)
	if err != nil {
		return nil, err
	}

	g.window, err = window.New(window.Config{
		Title:  Title,
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the OpenGL context must exist.
	fbw, fbh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: fbw, Height: fbh}, lighting.DefaultRig())
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New(bindings, shotKey)
	g.audio = newAudio(cfg.Audio)
	g.hunt = loop.NewHunt(state, seed, cfg.Graphics.FPSLimit, g.audio, time.Now())

	g.window.SetTitle(loop.Title(Title, len(state.Eggs), false, 0, false))
	logger.Info("game initialized successfully")
	return g, nil
}

// newAudio sets up sound effects. A missing audio device leaves the manager
// uninitialized, which makes every cue a no-op.
func newAudio(cfg config.AudioConfig) *audio.Manager {
	m := audio.New()
	m.SetSFXVolume(float64(cfg.SFXVolume))
	m.SetMuted(cfg.Muted)

	if cfg.CollectSound != "" {
		if err := m.LoadCollectSound(cfg.CollectSound); err != nil {
			logger.Warn("using built-in collect sound", zap.Error(err))
		}
	}
	if err := m.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}
	logger.Info("audio configured",
		zap.Bool("enabled", m.IsInitialized()),
		zap.Float64("sfx_volume", m.GetSFXVolume()),
		zap.Bool("muted", m.Muted()),
	)
	return m
}

func controls(c config.ControlsConfig) map[scene.Key]string {
	return map[scene.Key]string{
		scene.KeyForward:    c.Forward,
		scene.KeyTurnLeft:   c.TurnLeft,
		scene.KeyTurnRight:  c.TurnRight,
		scene.KeyOrbitUp:    c.OrbitUp,
		scene.KeyOrbitLeft:  c.OrbitLeft,
		scene.KeyOrbitDown:  c.OrbitDown,
		scene.KeyOrbitRight: c.OrbitRight,
	}
}

// Run starts the main game loop. It returns when the window is closed or
// Escape is pressed.
func (g *Game) Run() error {
	logger.Info("starting game loop")

	frames := 0
	for {
		if g.input.Update() {
			logger.Info("quit requested", zap.Int("frames", frames))
			return nil
		}

		f := g.hunt.Tick(g.input.State(), time.Now(), g.renderer)
		if !f.Ran {
			time.Sleep(idleSleep)
			continue
		}
		if g.input.TakeScreenshot() {
			g.screenshot()
		}
		g.window.SwapBuffers()
		frames++

		if f.Measured {
			logger.Debug("fps",
				zap.Float64("fps", f.FPS),
				zap.Int("gpu_meshes", g.renderer.Meshes()),
			)
		}
		if f.StatusChanged() {
			g.updateTitle()
		}
	}
}

// screenshot saves the frame just drawn. Failures are not fatal.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (g *Game) updateTitle() {
	s := g.hunt.State()
	g.window.SetTitle(loop.Title(Title, len(s.Eggs), s.Won(), g.hunt.FPS(), g.config.Game.ShowFPS))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
