// Package lighting holds the fixed point-light rig the scene shader uses
// and a CPU reference of the same shading equation.
package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// LightCount is the number of point lights the scene shader declares.
const LightCount = 3

// Shading constants shared with scene.frag.
const (
	Ambient = 0.2
	Diffuse = 0.4
)

// PointLight is an unattenuated point light.
type PointLight struct {
	Position mgl32.Vec3
}

// Rig is the complete light setup for a frame.
type Rig struct {
	Lights  [LightCount]PointLight
	Ambient float32
	Diffuse float32
}

// DefaultRig returns the three lights at head height around the play field.
func DefaultRig() Rig {
	return Rig{
		Lights: [LightCount]PointLight{
			{Position: mgl32.Vec3{5, 1.5, 5}},
			{Position: mgl32.Vec3{-5, 1.5, 5}},
			{Position: mgl32.Vec3{5, 1.5, -5}},
		},
		Ambient: Ambient,
		Diffuse: Diffuse,
	}
}

// Positions returns light positions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (r Rig) Positions() []float32 {
	result := make([]float32, LightCount*3)
	for i, light := range r.Lights {
		result[i*3+0] = light.Position[0]
		result[i*3+1] = light.Position[1]
		result[i*3+2] = light.Position[2]
	}
	return result
}

// Shade evaluates the scene lighting for a surface point.
// normal is the model-transformed normal and need not be unit length.
// The result matches scene.frag: (sum of clamped cosines * Diffuse + Ambient) * color.
func (r Rig) Shade(color, normal, point mgl32.Vec3) mgl32.Vec3 {
	var m float32
	for _, light := range r.Lights {
		m += r.lambert(light.Position.Sub(point), normal)
	}
	return color.Mul(m + r.Ambient)
}

func (r Rig) lambert(toLight, normal mgl32.Vec3) float32 {
	denom := normal.Len() * toLight.Len()
	if denom == 0 {
		return 0
	}
	cos := normal.Dot(toLight) / denom
	return float32(gomath.Max(0, float64(cos*r.Diffuse)))
}
