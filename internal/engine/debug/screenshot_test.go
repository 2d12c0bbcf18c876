package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

// twoRows returns a 2x2 bottom-up buffer: bottom row red, top row blue.
func twoRows() []byte {
	return []byte{
		255, 0, 0, 255, 255, 0, 0, 255, // bottom
		0, 0, 255, 255, 0, 0, 255, 255, // top
	}
}

func TestFlipRGBA(t *testing.T) {
	img, err := FlipRGBA(twoRows(), 2, 2)
	if err != nil {
		t.Fatalf("FlipRGBA() error = %v", err)
	}

	blue := color.RGBA{0, 0, 255, 255}
	red := color.RGBA{255, 0, 0, 255}
	if got := img.RGBAAt(0, 0); got != blue {
		t.Errorf("top-left = %v, want blue", got)
	}
	if got := img.RGBAAt(1, 1); got != red {
		t.Errorf("bottom-right = %v, want red", got)
	}
}

func TestFlipRGBAErrors(t *testing.T) {
	tests := []struct {
		name   string
		pixels []byte
		w, h   int
	}{
		{"short buffer", make([]byte, 15), 2, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FlipRGBA(tt.pixels, tt.w, tt.h); err == nil {
				t.Error("FlipRGBA() expected error")
			}
		})
	}
}

func TestNewScreenshotCaptureFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{"", FormatPNG, false},
		{"png", FormatPNG, false},
		{"BMP", FormatBMP, false},
		{"jpg", "", true},
	}
	for _, tt := range tests {
		sc, err := NewScreenshotCapture("", "egghunt", tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewScreenshotCapture(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			continue
		}
		if err == nil && sc.format != tt.want {
			t.Errorf("format %q resolved to %q, want %q", tt.format, sc.format, tt.want)
		}
	}
}

func TestGenerateFilename(t *testing.T) {
	sc, err := NewScreenshotCapture("shots", "egghunt", "png")
	if err != nil {
		t.Fatal(err)
	}
	sc.now = func() time.Time { return time.Date(2024, 3, 31, 9, 5, 7, 250e6, time.UTC) }

	want := filepath.Join("shots", "egghunt_2024-03-31_09-05-07.250.png")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename() = %q, want %q", got, want)
	}
}

func TestCaptureFromPixels(t *testing.T) {
	for _, format := range []string{FormatPNG, FormatBMP} {
		t.Run(format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "nested")
			sc, err := NewScreenshotCapture(dir, "egghunt", format)
			if err != nil {
				t.Fatal(err)
			}

			path, err := sc.CaptureFromPixels(twoRows(), 2, 2)
			if err != nil {
				t.Fatalf("CaptureFromPixels() error = %v", err)
			}
			if !strings.HasSuffix(path, "."+format) {
				t.Errorf("path %q lacks .%s extension", path, format)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			var img image.Image
			if format == FormatBMP {
				img, err = bmp.Decode(f)
			} else {
				img, err = png.Decode(f)
			}
			if err != nil {
				t.Fatalf("decode %s: %v", format, err)
			}

			r, g, b, _ := img.At(0, 0).RGBA()
			if r != 0 || g != 0 || b != 0xffff {
				t.Errorf("top-left = (%d, %d, %d), want blue", r, g, b)
			}
		})
	}
}

func TestCaptureFromImageEncodeFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	sc, err := NewScreenshotCapture(dir, "egghunt", FormatPNG)
	if err != nil {
		t.Fatal(err)
	}

	// PNG cannot encode an empty image.
	if _, err := sc.CaptureFromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Fatal("CaptureFromImage() expected error for empty image")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("left %d files behind, want none", len(entries))
	}
}
