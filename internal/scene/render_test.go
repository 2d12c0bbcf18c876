package scene

import (
	gomath "math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

type drawCall struct {
	mesh       *Mesh
	projection mgl32.Mat4
	view       mgl32.Mat4
	model      mgl32.Mat4
}

type recordingDrawer struct {
	began, ended int
	calls        []drawCall
}

func (d *recordingDrawer) BeginFrame() { d.began++ }
func (d *recordingDrawer) EndFrame() { d.ended++ }

func (d *recordingDrawer) Draw(m *Mesh, projection, view, model mgl32.Mat4) {
	d.calls = append(d.calls, drawCall{mesh: m, projection: projection, view: view, model: model})
}

func TestRenderOrder(t *testing.T) {
	s := newTestState(t)
	placeEggs(s, mgl32.Vec3{4, EggHeight, 4}, mgl32.Vec3{-4, EggHeight, -4})

	d := &recordingDrawer{}
	s.Render(d)

	if d.began != 1 || d.ended != 1 {
		t.Errorf("BeginFrame/EndFrame = %d/%d, want 1/1", d.began, d.ended)
	}
	want := []*Mesh{s.Ground, s.Player, s.Eggs[0], s.Eggs[1], s.Shadows[0], s.Shadows[1]}
	if len(d.calls) != len(want) {
		t.Fatalf("draw calls = %d, want %d", len(d.calls), len(want))
	}
	for i, c := range d.calls {
		if c.mesh != want[i] {
			t.Errorf("draw %d = %s, want %s", i, c.mesh.Name, want[i].Name)
		}
		if c.model != want[i].ModelTransform() {
			t.Errorf("draw %d model transform not recomputed from current state", i)
		}
	}
}

func TestRenderSkipsCollected(t *testing.T) {
	s := newTestState(t)
	placeEggs(s, mgl32.Vec3{0, EggHeight, 0.2}, mgl32.Vec3{6, EggHeight, 6})
	s.Update(Input{}, 0)

	d := &recordingDrawer{}
	s.Render(d)

	if len(d.calls) != 4 {
		t.Fatalf("draw calls = %d, want ground, player, one egg, one shadow", len(d.calls))
	}
	if d.calls[2].mesh != s.Eggs[0] || d.calls[3].mesh != s.Shadows[0] {
		t.Error("remaining egg or shadow missing from the draw list")
	}
}

func TestRenderCamera(t *testing.T) {
	s := newTestState(t)
	placeEggs(s, mgl32.Vec3{8, EggHeight, 8})
	s.Player.Center = mgl32.Vec3{2, PlayerHeight, -3}

	d := &recordingDrawer{}
	s.Render(d)

	wantProj := mgl32.Perspective(gomath.Pi/2, 1, 0.1, 1000)
	r := float64(2)
	lat, lon := gomath.Pi/4, gomath.Pi/4
	eye := mgl32.Vec3{
		2 + float32(r*gomath.Sin(lat)*gomath.Cos(lon)),
		PlayerHeight + float32(r*gomath.Cos(lat)),
		-3 + float32(r*gomath.Sin(lat)*gomath.Sin(lon)),
	}
	wantView := mgl32.LookAtV(eye, s.Player.Center, mgl32.Vec3{0, 1, 0})

	for i, c := range d.calls {
		if c.projection != wantProj {
			t.Errorf("draw %d projection = %v, want %v", i, c.projection, wantProj)
		}
		for k := 0; k < 16; k++ {
			if !near(c.view[k], wantView[k], 1e-5) {
				t.Fatalf("draw %d view = %v, want %v", i, c.view, wantView)
			}
		}
	}
}

func TestRenderUsesBobHeight(t *testing.T) {
	s := newTestState(t)
	placeEggs(s, mgl32.Vec3{5, EggHeight, 5})
	s.Update(Input{}, 100*time.Millisecond)

	d := &recordingDrawer{}
	s.Render(d)

	model := d.calls[2].model
	want := float32(0.5 + 0.1*gomath.Sin(0.5))
	if !near(model[13], want, 1e-6) {
		t.Errorf("egg model y = %f, want %f", model[13], want)
	}
}
