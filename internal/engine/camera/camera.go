// Package camera provides the orbit camera and projection used to view the scene.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit defaults.
const (
	DefaultRadius = 2.0
	OrbitSpeed    = 0.025

	// MinLatitude and MaxLatitude keep the eye off the pole and above the ground.
	MinLatitude = 0.001
	MaxLatitude = gomath.Pi/2 - 0.001
)

// Orbit places the eye on a sphere around a focus point.
// Latitude is measured from +Y, longitude around +Y from +X.
type Orbit struct {
	Latitude  float32
	Longitude float32
	Radius    float32

	MinLatitude float32
	MaxLatitude float32
}

// NewOrbit creates an orbit looking down at 45 degrees from the +X/+Z quadrant.
func NewOrbit() *Orbit {
	return &Orbit{
		Latitude:    gomath.Pi / 4,
		Longitude:   gomath.Pi / 4,
		Radius:      DefaultRadius,
		MinLatitude: MinLatitude,
		MaxLatitude: MaxLatitude,
	}
}

// Rotate adds the given deltas and clamps latitude.
func (o *Orbit) Rotate(deltaLatitude, deltaLongitude float32) {
	o.Latitude += deltaLatitude
	o.Longitude += deltaLongitude
	o.Clamp()
}

// Clamp restricts latitude to [MinLatitude, MaxLatitude].
// Longitude is left to wrap through the trig functions.
func (o *Orbit) Clamp() {
	if o.Latitude < o.MinLatitude {
		o.Latitude = o.MinLatitude
	}
	if o.Latitude > o.MaxLatitude {
		o.Latitude = o.MaxLatitude
	}
}

// Offset returns the eye position relative to the focus point.
func (o *Orbit) Offset() mgl32.Vec3 {
	sinLat := gomath.Sin(float64(o.Latitude))
	cosLat := gomath.Cos(float64(o.Latitude))
	sinLon := gomath.Sin(float64(o.Longitude))
	cosLon := gomath.Cos(float64(o.Longitude))

	return mgl32.Vec3{
		o.Radius * float32(sinLat*cosLon),
		o.Radius * float32(cosLat),
		o.Radius * float32(sinLat*sinLon),
	}
}

// Eye returns the world-space eye position for the given focus.
func (o *Orbit) Eye(focus mgl32.Vec3) mgl32.Vec3 {
	return o.Offset().Add(focus)
}

// ViewMatrix returns a look-at view matrix from the eye to the focus, +Y up.
func (o *Orbit) ViewMatrix(focus mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(o.Eye(focus), focus, mgl32.Vec3{0, 1, 0})
}

// Lens describes a perspective projection.
type Lens struct {
	FovY   float32 // radians
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultLens is a 90 degree square frustum from 0.1 to 1000.
// The aspect stays at 1 regardless of the window size.
func DefaultLens() Lens {
	return Lens{
		FovY:   gomath.Pi / 2,
		Aspect: 1,
		Near:   0.1,
		Far:    1000,
	}
}

// Matrix returns the projection matrix.
func (l Lens) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(l.FovY, l.Aspect, l.Near, l.Far)
}
