package geometry

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// GroundHalfExtent is half the side of the ground square.
const GroundHalfExtent = 10

// Ground returns a square on the XZ plane spanning [-half, half] on both axes,
// made of two upward-facing triangles.
func Ground(half float32) Data {
	positions := []float32{
		-half, 0, -half,
		-half, 0, half,
		half, 0, half,

		half, 0, -half,
		-half, 0, -half,
		half, 0, half,
	}
	return Data{
		Positions: positions,
		Normals:   FlatNormals(positions),
	}
}

// Sphere generates a unit UV-sphere with smooth normals.
func Sphere(segments, rings int) Data {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	point := func(ring, seg int) mgl32.Vec3 {
		phi := float64(ring) * gomath.Pi / float64(rings)
		theta := float64(seg) * 2.0 * gomath.Pi / float64(segments)
		return mgl32.Vec3{
			float32(gomath.Sin(phi) * gomath.Cos(theta)),
			float32(gomath.Cos(phi)),
			float32(gomath.Sin(phi) * gomath.Sin(theta)),
		}
	}

	var d Data
	emit := func(vs ...mgl32.Vec3) {
		for _, v := range vs {
			// On a unit sphere the position is its own normal.
			d.Positions = append(d.Positions, v[0], v[1], v[2])
			d.Normals = append(d.Normals, v[0], v[1], v[2])
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := point(ring, seg)
			b := point(ring+1, seg)
			c := point(ring, seg+1)
			e := point(ring+1, seg+1)

			if ring > 0 {
				emit(a, c, b)
			}
			if ring < rings-1 {
				emit(c, e, b)
			}
		}
	}
	return d
}

// Bunny builds a stand-in player shape out of stretched spheres, facing +Z.
// It is used when no player mesh file is configured.
func Bunny() Data {
	ball := Sphere(20, 14)
	part := func(pos, scale mgl32.Vec3) Data {
		m := mgl32.Translate3D(pos[0], pos[1], pos[2]).
			Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
		return ball.Transform(m)
	}

	body := part(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0.3, 0.25, 0.35})
	head := part(mgl32.Vec3{0, 0.22, 0.3}, mgl32.Vec3{0.18, 0.17, 0.18})
	leftEar := part(mgl32.Vec3{-0.07, 0.45, 0.28}, mgl32.Vec3{0.04, 0.15, 0.03})
	rightEar := part(mgl32.Vec3{0.07, 0.45, 0.28}, mgl32.Vec3{0.04, 0.15, 0.03})
	tail := part(mgl32.Vec3{0, 0.05, -0.36}, mgl32.Vec3{0.07, 0.07, 0.07})

	return Merge(body, head, leftEar, rightEar, tail)
}
