// Package scene holds the egg hunt simulation: the meshes, the per-tick update
// and the draw submission order. It issues no graphics calls itself.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/egghunt/internal/engine/geometry"
)

// ErrGeometry is returned when mesh arrays are not whole, matching triangles.
var ErrGeometry = errors.New("invalid mesh geometry")

// Mesh is a drawable triangle list with a yaw-only transform.
// It carries no GPU handles; a Drawer keys its buffers by the *Mesh.
type Mesh struct {
	Name     string
	Center   mgl32.Vec3
	Rotation float32 // yaw about +Y, radians
	Scale    mgl32.Vec3

	positions []float32
	colors    []float32
	normals   []float32
	revision  uint64
}

// NewMesh builds a mesh from geometry and per-vertex colors.
func NewMesh(name string, g geometry.Data, colors []float32, scale mgl32.Vec3) (*Mesh, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrGeometry, name, err)
	}
	if len(colors) != len(g.Positions) {
		return nil, fmt.Errorf("%w: %s: %d color floats for %d positions", ErrGeometry, name, len(colors), len(g.Positions))
	}
	return &Mesh{
		Name:      name,
		Scale:     scale,
		positions: g.Positions,
		colors:    colors,
		normals:   g.Normals,
	}, nil
}

// ModelTransform returns Translate(Center) * RotateY(Rotation) * Scale(Scale).
func (m *Mesh) ModelTransform() mgl32.Mat4 {
	return mgl32.Translate3D(m.Center[0], m.Center[1], m.Center[2]).
		Mul4(mgl32.HomogRotate3DY(m.Rotation)).
		Mul4(mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2]))
}

// Positions returns the vertex positions. Callers must not modify the slice.
func (m *Mesh) Positions() []float32 { return m.positions }

// Colors returns the per-vertex colors. Callers must not modify the slice.
func (m *Mesh) Colors() []float32 { return m.colors }

// Normals returns the per-vertex normals. Callers must not modify the slice.
func (m *Mesh) Normals() []float32 { return m.normals }

// VertexCount returns the number of vertices to draw.
func (m *Mesh) VertexCount() int { return len(m.positions) / 3 }

// Revision changes whenever the color data is replaced.
func (m *Mesh) Revision() uint64 { return m.revision }

// ReplaceColors swaps in new per-vertex colors.
func (m *Mesh) ReplaceColors(colors []float32) error {
	if len(colors) != len(m.positions) {
		return fmt.Errorf("%w: %s: %d color floats for %d positions", ErrGeometry, m.Name, len(colors), len(m.positions))
	}
	m.colors = colors
	m.revision++
	return nil
}

// Recolor fills the mesh with a single color.
func (m *Mesh) Recolor(rgb mgl32.Vec3) {
	// Length always matches, so the error is impossible.
	_ = m.ReplaceColors(geometry.Solid(m.VertexCount(), rgb))
}
