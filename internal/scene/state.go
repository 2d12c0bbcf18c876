package scene

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/egghunt/internal/engine/camera"
	"github.com/Faultbox/egghunt/internal/engine/geometry"
)

// Tuning constants. Speeds are per tick, not per second.
const (
	DefaultEggCount = 7

	MoveSpeed    = 0.25
	TurnSpeed    = 0.25
	PickupRadius = 0.75

	// BoundaryHalfExtent bounds the player's x and z.
	BoundaryHalfExtent = geometry.GroundHalfExtent

	PlayerHeight = 0.5
	EggHeight    = 0.5
	ShadowHeight = 0.01
	BobAmplitude = 0.1
	BobRate      = 0.005 // radians per millisecond
)

// Colors and fixed scales.
var (
	GroundColor     = mgl32.Vec3{0, 1, 0}
	PlayerColor     = mgl32.Vec3{1, 0, 0.5}
	EggColor        = mgl32.Vec3{0.5, 0, 1}
	ShadowColor     = mgl32.Vec3{0, 0, 0}
	CompletionColor = mgl32.Vec3{0.5, 0, 0.5}

	UnitScale   = mgl32.Vec3{1, 1, 1}
	EggScale    = mgl32.Vec3{0.15, 0.3, 0.2}
	ShadowScale = mgl32.Vec3{0.25, 0.02, 0.25}
)

// Options configures scene construction.
type Options struct {
	PlayerGeometry geometry.Data
	EggGeometry    geometry.Data

	// EggCount defaults to DefaultEggCount when zero.
	EggCount int

	// Rand places the eggs. A time-seeded source is used when nil.
	Rand *rand.Rand
}

// State is the whole simulation: meshes, camera orbit and win flag.
// Eggs[i] and Shadows[i] always belong together.
type State struct {
	Ground  *Mesh
	Player  *Mesh
	Eggs    []*Mesh
	Shadows []*Mesh

	Orbit *camera.Orbit
	Lens  camera.Lens

	// FollowOffset accumulates player movement. The view is rebuilt from the
	// player center every frame, so nothing reads it for rendering.
	FollowOffset mgl32.Vec3

	won bool
}

// New builds the scene: ground at the origin, the player at rest height, and
// eggs with their shadows on random integer coordinates within the boundary.
func New(opts Options) (*State, error) {
	if opts.EggCount == 0 {
		opts.EggCount = DefaultEggCount
	}
	if opts.EggCount < 0 {
		return nil, fmt.Errorf("egg count %d is negative", opts.EggCount)
	}
	rng := opts.Rand
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}

	ground := geometry.Ground(geometry.GroundHalfExtent)
	s := &State{
		Orbit:   camera.NewOrbit(),
		Lens:    camera.DefaultLens(),
		Eggs:    make([]*Mesh, 0, opts.EggCount),
		Shadows: make([]*Mesh, 0, opts.EggCount),
	}

	var err error
	s.Ground, err = NewMesh("ground", ground, geometry.Solid(ground.VertexCount(), GroundColor), UnitScale)
	if err != nil {
		return nil, err
	}

	player := opts.PlayerGeometry
	s.Player, err = NewMesh("player", player, geometry.Solid(player.VertexCount(), PlayerColor), UnitScale)
	if err != nil {
		return nil, err
	}
	s.Player.Center = mgl32.Vec3{0, PlayerHeight, 0}

	egg := opts.EggGeometry
	span := 2*BoundaryHalfExtent + 1
	for i := 0; i < opts.EggCount; i++ {
		x := float32(rng.IntN(span) - BoundaryHalfExtent)
		z := float32(rng.IntN(span) - BoundaryHalfExtent)

		e, err := NewMesh(fmt.Sprintf("egg-%d", i), egg, geometry.Solid(egg.VertexCount(), EggColor), EggScale)
		if err != nil {
			return nil, err
		}
		e.Center = mgl32.Vec3{x, EggHeight, z}

		sh, err := NewMesh(fmt.Sprintf("shadow-%d", i), egg, geometry.Solid(egg.VertexCount(), ShadowColor), ShadowScale)
		if err != nil {
			return nil, err
		}
		sh.Center = mgl32.Vec3{x, ShadowHeight, z}

		s.Eggs = append(s.Eggs, e)
		s.Shadows = append(s.Shadows, sh)
	}

	return s, nil
}

// Won reports whether every egg has been collected.
func (s *State) Won() bool {
	return s.won
}

// Meshes returns every mesh in draw order: ground, player, eggs, shadows.
func (s *State) Meshes() []*Mesh {
	out := make([]*Mesh, 0, 2+len(s.Eggs)+len(s.Shadows))
	out = append(out, s.Ground, s.Player)
	out = append(out, s.Eggs...)
	out = append(out, s.Shadows...)
	return out
}
