package scene

import "github.com/go-gl/mathgl/mgl32"

// Drawer is the graphics backend the scene submits to.
type Drawer interface {
	// BeginFrame clears the target.
	BeginFrame()
	// Draw issues one draw call for m with the three transforms.
	Draw(m *Mesh, projection, view, model mgl32.Mat4)
	// EndFrame is called after the last Draw of a frame.
	EndFrame()
}

// Render submits the scene to d: ground, player, eggs, then shadows.
// The camera orbits the player's current center.
func (s *State) Render(d Drawer) {
	projection := s.Lens.Matrix()
	view := s.Orbit.ViewMatrix(s.Player.Center)

	d.BeginFrame()
	for _, m := range s.Meshes() {
		d.Draw(m, projection, view, m.ModelTransform())
	}
	d.EndFrame()
}
