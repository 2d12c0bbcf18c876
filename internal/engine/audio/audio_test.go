package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/wav"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -0.01, 0.01},
		{0.5, -1.01, -0.99},
		{0.25, -2.01, -1.99},
		{0.0, -200, -90},
	}

	for _, tt := range tests {
		e := volumeToExponent(tt.vol)
		if e < tt.min || e > tt.max {
			t.Errorf("volumeToExponent(%f) = %f, want between %f and %f", tt.vol, e, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New() returned nil")
	}
	if m.GetSFXVolume() != 0.8 {
		t.Errorf("default SFX volume = %f, want 0.8", m.GetSFXVolume())
	}
	if m.Muted() {
		t.Error("new manager is muted")
	}
	if m.IsInitialized() {
		t.Error("new manager reports initialized")
	}
}

func TestSetVolume(t *testing.T) {
	m := New()

	m.SetSFXVolume(0.5)
	if m.GetSFXVolume() != 0.5 {
		t.Errorf("sfx volume = %f, want 0.5", m.GetSFXVolume())
	}

	m.SetSFXVolume(2.0)
	if m.GetSFXVolume() != 1.0 {
		t.Errorf("sfx volume = %f, want 1.0 (clamped)", m.GetSFXVolume())
	}

	m.SetSFXVolume(-1.0)
	if m.GetSFXVolume() != 0.0 {
		t.Errorf("sfx volume = %f, want 0.0 (clamped)", m.GetSFXVolume())
	}
}

func TestPlayWithoutInit(t *testing.T) {
	m := New()
	if err := m.PlayCollect(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("PlayCollect() error = %v, want ErrNotInitialized", err)
	}
	if err := m.PlayWin(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("PlayWin() error = %v, want ErrNotInitialized", err)
	}
}

func TestSynthesizeLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	notes := []Note{
		{Freq: 440, Duration: 100 * time.Millisecond},
		{Freq: 0, Duration: 50 * time.Millisecond},
		{Freq: 880, Duration: 100 * time.Millisecond},
	}

	s, err := Synthesize(sr, notes)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	want := sr.N(100*time.Millisecond)*2 + sr.N(50*time.Millisecond)
	if got := drain(s); got != want {
		t.Errorf("cue length = %d samples, want %d", got, want)
	}
}

func TestSynthesizeRejectsAliasedTone(t *testing.T) {
	sr := beep.SampleRate(8000)
	if _, err := Synthesize(sr, []Note{{Freq: 5000, Duration: time.Millisecond}}); err == nil {
		t.Error("Synthesize() accepted a tone above Nyquist")
	}
}

func TestEnvelope(t *testing.T) {
	e := &envelope{attack: 10, total: 100}

	tests := []struct {
		pos  int
		want float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 0.9},
		{50, 0.5},
		{100, 0},
		{150, 0},
	}
	for _, tt := range tests {
		if got := e.gain(tt.pos); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("gain(%d) = %f, want %f", tt.pos, got, tt.want)
		}
	}
}

func TestEnvelopeFadesOut(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := Synthesize(sr, []Note{{Freq: 440, Duration: 50 * time.Millisecond}})
	if err != nil {
		t.Fatal(err)
	}

	buf := make([][2]float64, sr.N(50*time.Millisecond))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 (attack starts silent)", buf[0][0])
	}
	last := buf[n-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("last sample = %f, want near silence", last)
	}
}

func TestLoadCollectSound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pickup.wav")
	writeTone(t, path, beep.SampleRate(22050), 100*time.Millisecond)

	m := New()
	if err := m.LoadCollectSound(path); err != nil {
		t.Fatalf("LoadCollectSound() error = %v", err)
	}
	if m.collect == nil {
		t.Fatal("collect buffer not set")
	}

	// Resampled to the manager's rate.
	want := DefaultSampleRate.N(100 * time.Millisecond)
	if got := m.collect.Len(); got < want-64 || got > want+64 {
		t.Errorf("buffer length = %d, want ~%d", got, want)
	}
}

func TestLoadCollectSoundErrors(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not a wav file"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.wav")},
		{"garbage", garbage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			if err := m.LoadCollectSound(tt.path); err == nil {
				t.Error("LoadCollectSound() expected error")
			}
			if m.collect != nil {
				t.Error("collect buffer set after failure")
			}
		})
	}
}

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func writeTone(t *testing.T, path string, sr beep.SampleRate, d time.Duration) {
	t.Helper()
	tone, err := generators.SineTone(sr, 440)
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(sr.N(d), tone), format); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
}
