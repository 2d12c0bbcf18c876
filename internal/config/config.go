// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Game     GameConfig     `yaml:"game"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	VSync    bool `yaml:"vsync"`
	FPSLimit int  `yaml:"fps_limit"` // 0 disables the frame throttle

	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	EggCount int    `yaml:"egg_count"`
	Seed     uint64 `yaml:"seed"` // 0 picks a time-based seed
	ShowFPS  bool   `yaml:"show_fps"`
}

// AssetsConfig holds optional mesh file paths (.obj, .gltf or .glb).
// Empty paths use the built-in procedural meshes.
type AssetsConfig struct {
	PlayerMesh string `yaml:"player_mesh"`
	EggMesh    string `yaml:"egg_mesh"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
	CollectSound string  `yaml:"collect_sound"` // optional WAV replacing the chime
}

// ControlsConfig holds SDL key names for each action.
type ControlsConfig struct {
	Forward    string `yaml:"forward"`
	TurnLeft   string `yaml:"turn_left"`
	TurnRight  string `yaml:"turn_right"`
	OrbitUp    string `yaml:"orbit_up"`
	OrbitLeft  string `yaml:"orbit_left"`
	OrbitDown  string `yaml:"orbit_down"`
	OrbitRight string `yaml:"orbit_right"`
	Screenshot string `yaml:"screenshot"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    640,
			Height:   480,
			VSync:    true,
			FPSLimit: 60,

			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Game: GameConfig{
			EggCount: 7,
			Seed:     0,
			ShowFPS:  true,
		},
		Audio: AudioConfig{
			SFXVolume: 0.8,
			Muted:     false,
		},
		Controls: ControlsConfig{
			Forward:    "W",
			TurnLeft:   "A",
			TurnRight:  "D",
			OrbitUp:    "I",
			OrbitLeft:  "J",
			OrbitDown:  "K",
			OrbitRight: "L",
			Screenshot: "F12",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks ranges that the rest of the program relies on.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Graphics.FPSLimit < 0:
		return fmt.Errorf("%w: fps_limit %d", ErrInvalid, c.Graphics.FPSLimit)
	case c.Game.EggCount < 0:
		return fmt.Errorf("%w: egg_count %d", ErrInvalid, c.Game.EggCount)
	case c.Graphics.ScreenshotFormat != "png" && c.Graphics.ScreenshotFormat != "bmp":
		return fmt.Errorf("%w: screenshot_format %q", ErrInvalid, c.Graphics.ScreenshotFormat)
	case c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1:
		return fmt.Errorf("%w: sfx_volume %.2f outside [0, 1]", ErrInvalid, c.Audio.SFXVolume)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
