package loader

import (
	"testing"

	"github.com/Faultbox/egghunt/internal/engine/geometry"
)

func TestLoadFallback(t *testing.T) {
	called := false
	d, err := Load("", func() geometry.Data {
		called = true
		return geometry.Sphere(4, 3)
	})
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if !called || len(d.Positions) == 0 {
		t.Error("expected fallback geometry")
	}
}

func TestLoadUnsupported(t *testing.T) {
	if _, err := Load("bunny.ply", geometry.Bunny); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
