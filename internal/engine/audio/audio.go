// Package audio provides sound effects for egg pickups and the win.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playing before Init succeeded.
var ErrNotInitialized = errors.New("audio not initialized")

// Note is one step of a synthesized cue.
type Note struct {
	Freq     float64 // Hz; zero is a rest
	Duration time.Duration
}

// Built-in cues.
var (
	CollectCue = []Note{
		{Freq: 1318.51, Duration: 60 * time.Millisecond},  // E6
		{Freq: 1975.53, Duration: 140 * time.Millisecond}, // B6
	}
	WinCue = []Note{
		{Freq: 523.25, Duration: 120 * time.Millisecond}, // C5
		{Freq: 659.25, Duration: 120 * time.Millisecond}, // E5
		{Freq: 783.99, Duration: 120 * time.Millisecond}, // G5
		{Freq: 0, Duration: 40 * time.Millisecond},
		{Freq: 1046.50, Duration: 400 * time.Millisecond}, // C6
	}
)

// Manager plays sound effects through a shared mixer.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	sfxVolLevel float64 // 0.0 to 1.0
	muted       bool

	// collect overrides CollectCue when a WAV was loaded.
	collect *beep.Buffer

	sfxMixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate:  DefaultSampleRate,
		sfxVolLevel: 0.8,
		sfxMixer:    &beep.Mixer{},
	}
}

// Init opens the default output device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// GetSFXVolume returns the SFX volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// SetMuted silences or restores playback.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports whether playback is silenced.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// LoadCollectSound replaces the pickup chime with a WAV file.
// The file is decoded fully so it can be replayed for every egg.
func (m *Manager) LoadCollectSound(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open collect sound: %w", err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode wav %s: %w", path, err)
	}
	defer streamer.Close()

	m.mu.Lock()
	defer m.mu.Unlock()

	var src beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		src = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: m.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("read wav %s: %w", path, err)
	}
	m.collect = buf
	return nil
}

// PlayCollect plays the pickup sound.
func (m *Manager) PlayCollect() error {
	m.mu.RLock()
	collect := m.collect
	m.mu.RUnlock()

	if collect != nil {
		return m.play(collect.Streamer(0, collect.Len()))
	}
	s, err := Synthesize(m.sampleRate, CollectCue)
	if err != nil {
		return err
	}
	return m.play(s)
}

// PlayWin plays the fanfare.
func (m *Manager) PlayWin() error {
	s, err := Synthesize(m.sampleRate, WinCue)
	if err != nil {
		return err
	}
	return m.play(s)
}

func (m *Manager) play(s beep.Streamer) error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.sfxVolLevel
	muted := m.muted
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if muted || vol <= 0 {
		return nil
	}

	volStreamer := &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeToExponent(vol),
	}

	// The mixer is read on the speaker goroutine.
	speaker.Lock()
	m.sfxMixer.Add(volStreamer)
	speaker.Unlock()
	return nil
}

// Synthesize renders a cue as a sequence of enveloped sine tones.
func Synthesize(sr beep.SampleRate, notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.Duration)
		if n.Freq == 0 {
			parts = append(parts, generators.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2f Hz: %w", n.Freq, err)
		}
		parts = append(parts, &envelope{
			Streamer: beep.Take(samples, tone),
			attack:   sr.N(5 * time.Millisecond),
			total:    samples,
		})
	}
	return beep.Seq(parts...), nil
}

// envelope applies a short linear attack and a linear decay to silence,
// which keeps note boundaries from clicking.
type envelope struct {
	beep.Streamer
	attack int
	total  int
	pos    int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.Streamer.Stream(samples)
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) gain(pos int) float64 {
	if e.total <= 0 {
		return 0
	}
	if pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	return clamp(1-float64(pos)/float64(e.total), 0, 1)
}

// volumeToExponent converts a 0-1 amplitude to the exponent of an
// effects.Volume with Base 2: 1 -> 0, 0.5 -> -1 (about -6dB), 0.25 -> -2.
func volumeToExponent(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return math.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
