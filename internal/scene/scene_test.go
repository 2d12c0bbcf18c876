package scene

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/egghunt/internal/engine/geometry"
)

// newTestState builds a seeded scene with small sphere geometry.
func newTestState(t *testing.T) *State {
	t.Helper()
	ball := geometry.Sphere(8, 6)
	s, err := New(Options{
		PlayerGeometry: ball,
		EggGeometry:    ball,
		Rand:           rand.New(rand.NewPCG(1, 2)),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

// placeEggs moves the first len(positions) eggs and their shadows and drops the rest.
func placeEggs(s *State, positions ...mgl32.Vec3) {
	s.Eggs = s.Eggs[:len(positions)]
	s.Shadows = s.Shadows[:len(positions)]
	for i, p := range positions {
		s.Eggs[i].Center = p
		s.Shadows[i].Center = mgl32.Vec3{p[0], ShadowHeight, p[2]}
	}
}

func near(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
