// Package geometry supplies triangle-list geometry for scene meshes.
//
// Every generator, and every loader in the loader subpackage, returns de-indexed triangles: three floats per
// vertex, three vertices per triangle, with one normal per vertex.
package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalid is returned when a triangle list is malformed.
var ErrInvalid = errors.New("invalid triangle list")

// Data is a flat, non-indexed triangle list.
type Data struct {
	Positions []float32
	Normals   []float32
}

// Validate checks that the arrays describe whole triangles and line up.
func (d Data) Validate() error {
	if len(d.Positions) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalid)
	}
	if len(d.Positions)%9 != 0 {
		return fmt.Errorf("%w: %d position floats is not a whole number of triangles", ErrInvalid, len(d.Positions))
	}
	if len(d.Normals) != len(d.Positions) {
		return fmt.Errorf("%w: %d normal floats for %d position floats", ErrInvalid, len(d.Normals), len(d.Positions))
	}
	return nil
}

// VertexCount returns the number of vertices.
func (d Data) VertexCount() int {
	return len(d.Positions) / 3
}

// Solid returns a per-vertex color array filled with rgb.
func Solid(vertexCount int, rgb mgl32.Vec3) []float32 {
	colors := make([]float32, 0, vertexCount*3)
	for i := 0; i < vertexCount; i++ {
		colors = append(colors, rgb[0], rgb[1], rgb[2])
	}
	return colors
}

// FlatNormals computes one face normal per triangle and repeats it for the
// triangle's three vertices. Winding is counter-clockwise.
func FlatNormals(positions []float32) []float32 {
	normals := make([]float32, 0, len(positions))
	for i := 0; i+9 <= len(positions); i += 9 {
		n := faceNormal(
			mgl32.Vec3{positions[i], positions[i+1], positions[i+2]},
			mgl32.Vec3{positions[i+3], positions[i+4], positions[i+5]},
			mgl32.Vec3{positions[i+6], positions[i+7], positions[i+8]},
		)
		for v := 0; v < 3; v++ {
			normals = append(normals, n[0], n[1], n[2])
		}
	}
	return normals
}

func faceNormal(v1, v2, v3 mgl32.Vec3) mgl32.Vec3 {
	n := v2.Sub(v1).Cross(v3.Sub(v1))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// Transform returns a copy of d with positions multiplied by m and normals by
// m's normal matrix, renormalized.
func (d Data) Transform(m mgl32.Mat4) Data {
	normalMat := m.Mat3().Inv().Transpose()

	out := Data{
		Positions: make([]float32, len(d.Positions)),
		Normals:   make([]float32, len(d.Normals)),
	}
	for i := 0; i+3 <= len(d.Positions); i += 3 {
		p := m.Mul4x1(mgl32.Vec4{d.Positions[i], d.Positions[i+1], d.Positions[i+2], 1})
		copy(out.Positions[i:i+3], p[:3])
	}
	for i := 0; i+3 <= len(d.Normals); i += 3 {
		n := normalMat.Mul3x1(mgl32.Vec3{d.Normals[i], d.Normals[i+1], d.Normals[i+2]})
		if n.Len() > 0 {
			n = n.Normalize()
		}
		copy(out.Normals[i:i+3], n[:])
	}
	return out
}

// Merge concatenates triangle lists.
func Merge(parts ...Data) Data {
	var out Data
	for _, p := range parts {
		out.Positions = append(out.Positions, p.Positions...)
		out.Normals = append(out.Normals, p.Normals...)
	}
	return out
}
